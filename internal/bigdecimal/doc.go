// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigdecimal implements the decimal value backing the "big-decimal"
numeric kind consumed by the numformat package: numformat's prenormalizer
asks a Decimal to render itself through (*Decimal).Format with a "%#.Nf" or
"%#.Ne" verb, and treats the result as the canonical decimal-or-exponent
string it parses into integer, fractional and exponent parts. numformat
never computes with a Decimal, only constructs and renders one, so this
package carries only that slice: construction from an int64, uint64, or
decimal string, and formatted output.

Unlike the arbitrary-precision decimal type this package is adapted from,
a Decimal here stores its significant digits as a plain ASCII digit
string rather than a packed base-10**9/10**19 Word mantissa: there is no
word-level arithmetic left to justify that representation once Add, Sub,
Mul, Quo and the other arithmetic methods are gone.

The zero value for a Decimal corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

    x := new(Decimal)  // x is a *Decimal of value 0

Setters are represented as methods of the form:

    func (z *Decimal) SetV(v V) *Decimal  // z = v

z is the receiver and, by convention, also the result, so calls chain:

    d := new(Decimal).SetInt64(-42)

SetString additionally reports whether the string parsed successfully:

    d, ok := new(Decimal).SetString("42.125")

Finally, *Decimal satisfies the fmt package's Formatter interface for
formatted printing with the 'e', 'E', 'f' and 'F' verbs.
*/
package bigdecimal
