// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numformat

import (
	"fmt"
	"math"
	"regexp"

	"github.com/zeedb/zetasql/numformat/internal/bigdecimal"
)

// Kind identifies which field of a NumericValue carries the payload.
type Kind int

const (
	KindInt64 Kind = iota
	KindUint64
	KindFloat64
	KindBigDecimal
)

// NumericValue is the abstract numeric value this core converts to a
// string. Exactly one of Int64, Uint64, Float64 or Decimal is meaningful,
// selected by Kind. numformat never computes with this value; it only asks
// it to render itself through a printf-style verb.
type NumericValue struct {
	Kind    Kind
	Int64   int64
	Uint64  uint64
	Float64 float64
	Decimal *bigdecimal.Decimal
}

func NumericFromInt64(v int64) NumericValue   { return NumericValue{Kind: KindInt64, Int64: v} }
func NumericFromUint64(v uint64) NumericValue { return NumericValue{Kind: KindUint64, Uint64: v} }
func NumericFromFloat64(v float64) NumericValue {
	return NumericValue{Kind: KindFloat64, Float64: v}
}
func NumericFromDecimal(v *bigdecimal.Decimal) NumericValue {
	return NumericValue{Kind: KindBigDecimal, Decimal: v}
}

// ParsedNumber is the canonical decimal-or-exponent breakdown of a
// NumericValue, produced by prenormalize and consumed by the renderer.
type ParsedNumber struct {
	Negative       bool
	IsInfinity     bool
	IsNaN          bool
	IntegerPart    string
	FractionalPart string
	Exponent       string
}

// canonicalForm matches the grammar the Prenormalizer's printf-style
// collaborator is required to produce: an optional sign, one or more
// integer digits, a literal decimal point, zero or more fractional digits,
// and an optional signed exponent.
var canonicalForm = regexp.MustCompile(`^(-?)([0-9]+)\.([0-9]*)(?:e([+-][0-9]+))?$`)

// prenormalize converts v into a ParsedNumber using the printf-style verb
// dictated by pf (scale and has_exponent), per §4.3.
func prenormalize(v NumericValue, pf *ParsedFormat) (*ParsedNumber, error) {
	verb := byte('f')
	if pf.HasExponent {
		verb = 'e'
	}

	s, special := renderCanonical(v, verb, pf.Scale)
	if special != nil {
		return special, nil
	}

	m := canonicalForm.FindStringSubmatch(s)
	if m == nil {
		internalAssertionf("numformat: prenormalizer produced %q, which does not match -?[0-9]+\\.[0-9]*(e[+-][0-9]+)?", s)
	}

	integerPart := m[2]
	if integerPart == "0" {
		integerPart = ""
	}

	return &ParsedNumber{
		Negative:       m[1] == "-",
		IntegerPart:    integerPart,
		FractionalPart: m[3],
		Exponent:       m[4],
	}, nil
}

// renderCanonical formats v via the printf-style collaborator. It returns a
// non-nil *ParsedNumber directly (bypassing formatting and the regex) when v
// is a float64 infinity or NaN, per §4.3.
func renderCanonical(v NumericValue, verb byte, scale int) (string, *ParsedNumber) {
	switch v.Kind {
	case KindInt64:
		d := new(bigdecimal.Decimal).SetInt64(v.Int64)
		return formatDecimal(d, verb, scale), nil
	case KindUint64:
		d := new(bigdecimal.Decimal).SetUint64(v.Uint64)
		return formatDecimal(d, verb, scale), nil
	case KindFloat64:
		f := v.Float64
		switch {
		case math.IsNaN(f):
			return "", &ParsedNumber{IsNaN: true}
		case math.IsInf(f, 1):
			return "", &ParsedNumber{IsInfinity: true}
		case math.IsInf(f, -1):
			return "", &ParsedNumber{IsInfinity: true, Negative: true}
		}
		spec := fmt.Sprintf("%%#.%d%c", scale, verb)
		return fmt.Sprintf(spec, f), nil
	case KindBigDecimal:
		return formatDecimal(v.Decimal, verb, scale), nil
	}
	internalAssertionf("numformat: unknown NumericValue.Kind %d", v.Kind)
	return "", nil
}

func formatDecimal(d *bigdecimal.Decimal, verb byte, scale int) string {
	spec := fmt.Sprintf("%%#.%d%c", scale, verb)
	return fmt.Sprintf(spec, d)
}

