// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numformat

import "testing"

var validateFormatTests = []struct {
	format string
	kind   ErrorKind
	errMsg string // "" means ValidateFormat must succeed
}{
	// B1
	{"", ErrEmptyDigits, "Format string must contain at least one of 'X','0','9'"},
	// B2
	{"XXXXXXXXXXXXXXXXX", ErrHexTooLong, "Max number of 'X' is 16"},
	// B3
	{"9X", ErrInvalidFormatCombination, "'X' cannot appear together with '9'"},
	// B4
	{"9,9EEEE", ErrInvalidFormatCombination, "',' or 'G' cannot appear together with 'EEEE'"},
	// B5
	{".9", 0, ""},
	{"V9", 0, ""},
	// B6
	{"TM9", 0, ""},
	// B7
	{"9.9.9", ErrInvalidFormatCombination, "There can be at most one of '.','D','V'"},
	// B8
	{"9MI9", ErrInvalidFormatCombination, "'MI' can only appear after all digits and 'EEEE'"},
	// misc valid formats
	{"9.99", 0, ""},
	{"9,999", 0, ""},
	{"S9", 0, ""},
	{"9S", 0, ""},
	{"9MI", 0, ""},
	{"9PR", 0, ""},
	{"$9.99", 0, ""},
	{"RN", 0, ""},
	{"FMRN", 0, ""},
	{"999.99EEEE", 0, ""},
}

func TestValidateFormat(t *testing.T) {
	for i, test := range validateFormatTests {
		err := ValidateFormat(test.format, nil)
		if test.errMsg == "" {
			if err != nil {
				t.Errorf("#%d: ValidateFormat(%q) = %v, want nil", i, test.format, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("#%d: ValidateFormat(%q) succeeded, want error %q", i, test.format, test.errMsg)
			continue
		}
		fe, ok := err.(*FormatError)
		if !ok {
			t.Errorf("#%d: ValidateFormat(%q) returned %T, want *FormatError", i, test.format, err)
			continue
		}
		if fe.Kind != test.kind {
			t.Errorf("#%d: ValidateFormat(%q) kind = %v, want %v", i, test.format, fe.Kind, test.kind)
		}
		if fe.Message != test.errMsg {
			t.Errorf("#%d: ValidateFormat(%q) message = %q, want %q", i, test.format, fe.Message, test.errMsg)
		}
	}
}

// P1: ValidateFormat(f).is_ok <=> Parse(f).is_ok.
func TestValidateFormatAgreesWithParse(t *testing.T) {
	for i, test := range validateFormatTests {
		_, parseErr := ParseForTest(test.format, nil)
		validateErr := ValidateFormat(test.format, nil)
		if (parseErr == nil) != (validateErr == nil) {
			t.Errorf("#%d: ValidateFormat/Parse disagree for %q: %v vs %v", i, test.format, validateErr, parseErr)
		}
	}
}

// P7: ValidateFormat is pure.
func TestValidateFormatIdempotent(t *testing.T) {
	for _, f := range []string{"9.99", "9X", "", "999.99EEEE"} {
		e1 := ValidateFormat(f, nil)
		e2 := ValidateFormat(f, nil)
		if (e1 == nil) != (e2 == nil) {
			t.Errorf("ValidateFormat(%q) not idempotent: %v then %v", f, e1, e2)
			continue
		}
		if e1 != nil && e1.(*FormatError).Message != e2.(*FormatError).Message {
			t.Errorf("ValidateFormat(%q) not idempotent: %q then %q", f, e1, e2)
		}
	}
}

// P2: num_integer_digit + scale == count of digit placeholders in the format
// string, for Decimal. The EEEE rewrite drops leading placeholders from
// Elements afterwards, so the count is taken over the tokenized format.
func TestParsedFormatDigitCount(t *testing.T) {
	for _, f := range []string{"9.99", "9,999", "999", "0.00", "9.9EEEE", "999.99EEEE"} {
		pf, err := ParseForTest(f, nil)
		if err != nil {
			t.Fatalf("ParseForTest(%q): %v", f, err)
		}
		if pf.OutputType != OutputDecimal {
			continue
		}
		toks, err := tokenize(f)
		if err != nil {
			t.Fatalf("tokenize(%q): %v", f, err)
		}
		digitCount := 0
		for _, el := range toks {
			if el.Kind == KindDigit0 || el.Kind == KindDigit9 || el.Kind == KindDigitX {
				digitCount++
			}
		}
		if pf.NumIntegerDigit+pf.Scale != digitCount {
			t.Errorf("%q: NumIntegerDigit(%d)+Scale(%d) != digit count %d", f, pf.NumIntegerDigit, pf.Scale, digitCount)
		}
	}
}

// P3 and the §9 exponent-rewrite example: "999.99EEEE" becomes "9.99EEEE".
func TestParsedFormatExponentRewrite(t *testing.T) {
	pf, err := ParseForTest("999.99EEEE", nil)
	if err != nil {
		t.Fatalf("ParseForTest: %v", err)
	}
	if !pf.HasExponent {
		t.Fatal("HasExponent = false, want true")
	}
	if pf.DecimalPointIndex > 2 {
		t.Fatalf("DecimalPointIndex = %d, want <= 2", pf.DecimalPointIndex)
	}
	if k := pf.Elements[pf.DecimalPointIndex-1].Kind; k != KindDigit9 {
		t.Fatalf("Elements[DecimalPointIndex-1].Kind = %v, want KindDigit9", k)
	}
	want := []ElemKind{KindDigit9, KindPointDot, KindDigit9, KindDigit9, KindExponentEEEE}
	if len(pf.Elements) != len(want) {
		t.Fatalf("Elements = %v, want %d elements matching %v", pf.Elements, len(want), want)
	}
	for i, el := range pf.Elements {
		if el.Kind != want[i] {
			t.Errorf("Elements[%d].Kind = %v, want %v", i, el.Kind, want[i])
		}
	}
}

func TestParsedFormatNoDotExponent(t *testing.T) {
	// No explicit decimal point: decimal_point_index must land on EEEE.
	pf, err := ParseForTest("999EEEE", nil)
	if err != nil {
		t.Fatalf("ParseForTest: %v", err)
	}
	if pf.Elements[pf.DecimalPointIndex].Kind != KindExponentEEEE {
		t.Fatalf("Elements[DecimalPointIndex] = %v, want KindExponentEEEE", pf.Elements[pf.DecimalPointIndex].Kind)
	}
}

func TestParsedFormatIndexOfFirstZero(t *testing.T) {
	pf, err := ParseForTest("0.9", nil)
	if err != nil {
		t.Fatalf("ParseForTest: %v", err)
	}
	if pf.IndexOfFirstZero != 0 {
		t.Fatalf("IndexOfFirstZero = %d, want 0", pf.IndexOfFirstZero)
	}

	pf, err = ParseForTest("9.9", nil)
	if err != nil {
		t.Fatalf("ParseForTest: %v", err)
	}
	if pf.IndexOfFirstZero != -1 {
		t.Fatalf("IndexOfFirstZero = %d, want -1", pf.IndexOfFirstZero)
	}
}

func TestValidateFormatTooLong(t *testing.T) {
	cfg := &Config{MaxFormatWidth: 4}
	err := ValidateFormat("99999", cfg)
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("ValidateFormat returned %T, want *FormatError", err)
	}
	if fe.Kind != ErrFormatTooLong {
		t.Fatalf("Kind = %v, want ErrFormatTooLong", fe.Kind)
	}
	if fe.Message != "Format string too long; limit 4" {
		t.Fatalf("Message = %q", fe.Message)
	}
}
