// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Decimal-to-string conversion. It is adapted from the
// 'e'/'E'/'f' branches of the corresponding implementation in
// math/big/ftoa.go: the 'g'/'G'/'b'/'p' verbs and the shortest-round-trip
// (negative precision) path are dropped because the Prenormalizer never
// requests them — it always drives Format through fmt.Sprintf with an
// explicit, non-negative scale and either 'e' or 'f'.

package bigdecimal

import (
	"fmt"
	"strconv"
)

// Append appends to buf the string form of the floating-point number x,
// using verb 'e', 'E' or 'f' with prec digits after the decimal point, and
// returns the extended buffer. A negative prec is treated as 0.
func (x *Decimal) Append(buf []byte, verb byte, prec int) []byte {
	return x.appendAlt(buf, verb, prec, false)
}

// appendAlt is Append with support for the '#' alternate form: it keeps the
// decimal point even when prec == 0, so the output always matches the
// grammar -?[0-9]+\.[0-9]*(e[+-][0-9]+)?. The Format method below is the
// only caller that sets alt; it does so whenever the caller passed the '#'
// flag, which is how the Prenormalizer asks for a canonical decimal-or-
// exponent string regardless of scale.
func (x *Decimal) appendAlt(buf []byte, verb byte, prec int, alt bool) []byte {
	if prec < 0 {
		prec = 0
	}

	mant, exp := x.roundedMantExp(verb, prec)

	if x.neg {
		buf = append(buf, '-')
	}

	switch verb {
	case 'e', 'E':
		return appendE(buf, verb, mant, exp, prec, alt)
	default: // 'f'
		return appendF(buf, mant, exp, prec, alt)
	}
}

// roundedMantExp returns the significant digits of x and their decimal
// exponent, rounded half away from zero to the number of digits verb and
// prec require: prec+1 significant digits for 'e'/'E', exp+prec for 'f'.
func (x *Decimal) roundedMantExp(verb byte, prec int) ([]byte, int) {
	mant, exp := x.mant, int(x.exp)
	var n int
	switch verb {
	case 'e', 'E':
		n = prec + 1
	default: // 'f'
		n = exp + prec
	}
	m, e := roundSignificant(mant, int32(exp), n)
	return m, int(e)
}

// appendF renders mant/exp in %f form: ddddd.ddddd. prec is the number of
// digits after the decimal point; alt forces the decimal point even when
// prec == 0.
func appendF(buf []byte, mant []byte, exp int, prec int, alt bool) []byte {
	if exp > 0 {
		m := min(len(mant), exp)
		buf = append(buf, mant[:m]...)
		for ; m < exp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}

	if prec > 0 || alt {
		buf = append(buf, '.')
		for i := 0; i < prec; i++ {
			n := exp + i
			ch := byte('0')
			if 0 <= n && n < len(mant) {
				ch = mant[n]
			}
			buf = append(buf, ch)
		}
	}
	return buf
}

// appendE renders mant/exp in %e/%E form: d.ddddde±dd. prec is the number
// of digits after the decimal point; alt forces the decimal point even
// when prec == 0.
func appendE(buf []byte, verb byte, mant []byte, exp int, prec int, alt bool) []byte {
	ch := byte('0')
	if len(mant) > 0 {
		ch = mant[0]
	}
	buf = append(buf, ch)

	if prec > 0 || alt {
		buf = append(buf, '.')
		i := 1
		m := min(len(mant), prec+1)
		if i < m {
			buf = append(buf, mant[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			buf = append(buf, '0')
		}
	}

	buf = append(buf, verb)
	var e int64
	if len(mant) > 0 {
		e = int64(exp) - 1 // first digit was printed before the '.'
	}
	if e < 0 {
		buf = append(buf, '-')
		e = -e
	} else {
		buf = append(buf, '+')
	}
	if e < 10 {
		buf = append(buf, '0') // at least 2 exponent digits
	}
	return strconv.AppendInt(buf, e, 10)
}

// Format implements fmt.Formatter for the 'e', 'E', 'f' and 'F' verbs, plus
// the flags the Prenormalizer's printf-style calls rely on: width, '+' and
// ' ' for sign control, '0' for zero padding, '-' for left justification,
// and '#' to force a decimal point at zero precision.
func (x *Decimal) Format(s fmt.State, verb rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6
	}

	switch verb {
	case 'e', 'E', 'f':
	case 'F':
		verb = 'f'
	default:
		fmt.Fprintf(s, "%%!%c(*bigdecimal.Decimal=%s)", verb, x.decimalString())
		return
	}

	buf := x.appendAlt(nil, byte(verb), prec, s.Flag('#'))
	if len(buf) == 0 {
		buf = []byte("?") // should never happen, but don't crash
	}

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0'):
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		s.Write(buf)
	case s.Flag('-'):
		writeMultiple(s, sign, 1)
		s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		s.Write(buf)
	}
}

func writeMultiple(w fmt.State, s string, count int) {
	if len(s) == 0 || count <= 0 {
		return
	}
	b := []byte(s)
	for ; count > 0; count-- {
		w.Write(b)
	}
}

// decimalString renders x in plain decimal notation for use in error
// messages; it is not reachable from any Prenormalizer code path.
func (x *Decimal) decimalString() string {
	return string(x.Append(nil, 'f', 6))
}
