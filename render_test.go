// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numformat

import "testing"

// End-to-end scenarios 1-11.
var numericalToStringTests = []struct {
	v      NumericValue
	format string
	want   string
}{
	{NumericFromFloat64(1.2), "9.99", " 1.20"},
	{NumericFromFloat64(1.2), "9D99", " 1.20"},
	{NumericFromFloat64(1.2), "9V99", " 120"},
	{NumericFromInt64(1234), "9,999", " 1,234"},
	{NumericFromInt64(12345), "9,999", " #,###"},
	{NumericFromInt64(-3), "9", "-3"},
	{NumericFromInt64(3), "S9", "+3"},
	{NumericFromInt64(-3), "S9", "-3"},
	{NumericFromInt64(3), "9MI", "3 "},
	{NumericFromInt64(-3), "9MI", "3-"},
	{NumericFromInt64(-3), "9PR", "<3>"},
	{NumericFromInt64(3), "9PR", " 3 "},
	{NumericFromFloat64(0.5), "9.9", "  .5"},
	{NumericFromFloat64(0.5), "0.9", " 0.5"},
}

func TestNumericalToStringWithFormat(t *testing.T) {
	for i, test := range numericalToStringTests {
		got, err := NumericalToStringWithFormat(test.v, test.format, ProductInternal, nil)
		if err != nil {
			t.Errorf("#%d: NumericalToStringWithFormat(%v, %q) failed: %v", i, test.v, test.format, err)
			continue
		}
		if got != test.want {
			t.Errorf("#%d: NumericalToStringWithFormat(%v, %q) = %q, want %q", i, test.v, test.format, got, test.want)
		}
	}
}

// P5: sign symmetry for a format with no explicit sign.
func TestRenderSignSymmetry(t *testing.T) {
	// "99" exactly matches 42's digit width, so there is no extra left
	// padding beyond the sign slot for either render to differ in.
	pos, err := NumericalToStringWithFormat(NumericFromInt64(42), "99", ProductInternal, nil)
	if err != nil {
		t.Fatalf("positive: %v", err)
	}
	neg, err := NumericalToStringWithFormat(NumericFromInt64(-42), "99", ProductInternal, nil)
	if err != nil {
		t.Fatalf("negative: %v", err)
	}
	if len(pos) != len(neg) {
		t.Fatalf("render(42)=%q render(-42)=%q differ in length", pos, neg)
	}
	if pos[0] != ' ' || neg[0] != '-' || pos[1:] != neg[1:] {
		t.Fatalf("render(42)=%q render(-42)=%q should differ only in the leading character", pos, neg)
	}
}

// P6: single digit placeholder.
func TestRenderSingleDigit(t *testing.T) {
	for v := int64(0); v <= 9; v++ {
		got, err := NumericalToStringWithFormat(NumericFromInt64(v), "9", ProductInternal, nil)
		if err != nil {
			t.Fatalf("NumericalToStringWithFormat(%d, \"9\"): %v", v, err)
		}
		want := string([]byte{' ', byte('0' + v)})
		if got != want {
			t.Errorf("NumericalToStringWithFormat(%d, \"9\") = %q, want %q", v, got, want)
		}
	}
	got, err := NumericalToStringWithFormat(NumericFromInt64(-3), "9", ProductInternal, nil)
	if err != nil || got != "-3" {
		t.Fatalf("NumericalToStringWithFormat(-3, \"9\") = %q, %v, want \"-3\"", got, err)
	}
}

// P4: overflow emits one '#' per digit placeholder, group separators survive.
func TestRenderOverflow(t *testing.T) {
	got, err := NumericalToStringWithFormat(NumericFromInt64(12345), "9,999", ProductInternal, nil)
	if err != nil {
		t.Fatalf("NumericalToStringWithFormat: %v", err)
	}
	if got != " #,###" {
		t.Fatalf("got %q, want \" #,###\"", got)
	}
}

func TestRenderCurrency(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"$9", " $3"},
		{"L9", " $3"},
		{"c9", " usd3"},
		{"C9", " USD3"},
	}
	for _, test := range tests {
		got, err := NumericalToStringWithFormat(NumericFromInt64(3), test.format, ProductInternal, nil)
		if err != nil {
			t.Fatalf("%q: %v", test.format, err)
		}
		if got != test.want {
			t.Errorf("%q: got %q, want %q", test.format, got, test.want)
		}
	}
}

func TestRenderUnimplemented(t *testing.T) {
	for _, test := range []struct {
		v      NumericValue
		format string
	}{
		{NumericFromInt64(1), "TM"},
		{NumericFromInt64(1), "RN"},
		{NumericFromInt64(1), "XXXX"},
		{NumericFromInt64(1), "FM999"},
		{NumericFromInt64(1), "999B"},
	} {
		_, err := NumericalToStringWithFormat(test.v, test.format, ProductInternal, nil)
		fe, ok := err.(*FormatError)
		if !ok {
			t.Errorf("%q: err = %v, want *FormatError", test.format, err)
			continue
		}
		if fe.Kind != ErrUnimplemented {
			t.Errorf("%q: Kind = %v, want ErrUnimplemented", test.format, fe.Kind)
		}
	}
}

func TestRenderInfinityAndNaN(t *testing.T) {
	inf, err := NumericalToStringWithFormat(NumericFromFloat64(posInf()), "9.99", ProductInternal, nil)
	if err == nil {
		t.Fatalf("+Inf: got %q, want Unimplemented error", inf)
	}
	nan, err := NumericalToStringWithFormat(NumericFromFloat64(nan()), "9.99", ProductInternal, nil)
	if err == nil {
		t.Fatalf("NaN: got %q, want Unimplemented error", nan)
	}
}

func posInf() float64 { x := 1e308; return x * 10 }
func nan() float64    { x := 0.0; return x / x }
