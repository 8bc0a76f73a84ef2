// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

// roundSignificant rounds the digit string mant/exp to n significant
// digits using round-half-up and returns the rounded mantissa and
// exponent. It is the replacement for the upstream formatter's
// SetPrec/Set rounding step, which operated on full multi-precision
// Decimals; numformat only ever rounds for display, so round-half-up on
// the digit string itself is sufficient.
func roundSignificant(mant []byte, exp int32, n int) ([]byte, int32) {
	if n >= len(mant) {
		return mant, exp
	}
	if n <= 0 {
		if n == 0 && len(mant) > 0 && mant[0] >= '5' {
			return []byte{'1'}, exp + 1
		}
		return nil, 0
	}

	kept := make([]byte, n)
	copy(kept, mant[:n])
	if mant[n] >= '5' {
		i := n - 1
		for i >= 0 && kept[i] == '9' {
			kept[i] = '0'
			i--
		}
		if i < 0 {
			kept = []byte{'1'}
			exp++
		} else {
			kept[i]++
		}
	}
	return kept, exp
}
