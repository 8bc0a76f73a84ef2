// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"strconv"
	"strings"
)

// SetString sets z to the value of s and returns z and true on success. The
// accepted grammar is an optional sign, decimal digits with an optional
// '.', and an optional 'e'/'E' exponent, i.e. the same family of literals
// strconv.ParseFloat accepts minus "inf" and "nan". On a malformed s, z is
// left unchanged and the second result is false.
func (z *Decimal) SetString(s string) (*Decimal, bool) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	mantissa := s
	exp10 := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return nil, false
		}
		exp10 = e
	}

	intPart, fracPart := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, fracPart = mantissa[:i], mantissa[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, false
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return nil, false
	}

	digits := intPart + fracPart
	pointExp := len(intPart) + exp10

	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
		pointExp--
	}
	digits = digits[i:]

	j := len(digits)
	for j > 0 && digits[j-1] == '0' {
		j--
	}
	digits = digits[:j]

	if len(digits) == 0 {
		z.neg = false
		z.mant = nil
		z.exp = 0
		return z, true
	}

	z.neg = neg
	z.mant = []byte(digits)
	z.exp = int32(pointExp)
	return z, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
