// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numformat

import "strings"

//go:generate stringer -type=ElemKind

// ElemKind identifies a format element independent of the case it was
// scanned in. It is the tag of the FormatElement closed sum type.
type ElemKind int

const (
	KindDigit9 ElemKind = iota
	KindDigit0
	KindDigitX
	KindPointDot
	KindPointD
	KindV
	KindGroupComma
	KindGroupG
	KindSignS
	KindSignMI
	KindSignPR
	KindExponentEEEE
	KindRomanNumeral
	KindTM
	KindTME
	KindTM9
	KindFM
	KindB
	KindCurrencyDollar
	KindCurrencyC
	KindCurrencyL
)

// token returns the canonical, uppercase spelling of k, the form used in
// diagnostic messages (FormatError.Message) regardless of the case the
// element was actually scanned in. This normalization is relied upon by
// every error string in §4.2/§7 of the format-string specification this
// package implements, and by ParseForTest callers comparing error text.
func (k ElemKind) token() string {
	switch k {
	case KindDigit9:
		return "9"
	case KindDigit0:
		return "0"
	case KindDigitX:
		return "X"
	case KindPointDot:
		return "."
	case KindPointD:
		return "D"
	case KindV:
		return "V"
	case KindGroupComma:
		return ","
	case KindGroupG:
		return "G"
	case KindSignS:
		return "S"
	case KindSignMI:
		return "MI"
	case KindSignPR:
		return "PR"
	case KindExponentEEEE:
		return "EEEE"
	case KindRomanNumeral:
		return "RN"
	case KindTM:
		return "TM"
	case KindTME:
		return "TME"
	case KindTM9:
		return "TM9"
	case KindFM:
		return "FM"
	case KindB:
		return "B"
	case KindCurrencyDollar:
		return "$"
	case KindCurrencyC:
		return "C"
	case KindCurrencyL:
		return "L"
	default:
		return k.String()
	}
}

// FormatElement is a single recognized token of a format string, together
// with the case it was scanned in. Case only changes rendering for
// KindExponentEEEE ("e" vs "E") and KindCurrencyC ("usd" vs "USD"). It is
// recorded for X, D, G, EEEE, RN, TM, TME, TM9 and C; every other element
// has Upper == true whatever case it was written in. ElemKind.token does
// not depend on it.
type FormatElement struct {
	Kind  ElemKind
	Upper bool
}

func elem(k ElemKind, upper bool) FormatElement { return FormatElement{Kind: k, Upper: upper} }

// caseOf reports whether b, the first byte of an element, is an uppercase
// ASCII letter.
// Digits and punctuation (9, 0, ., ,, $) are case-less and always report
// true so that elem's Upper field defaults sensibly for them.
func caseOf(b byte) bool {
	if b >= 'a' && b <= 'z' {
		return false
	}
	return true
}

// prefixEqualFold reports whether s begins with prefix, ignoring case.
func prefixEqualFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// scanToken consumes the longest format element at the start of s and
// returns it along with the number of bytes consumed. Matching is
// case-insensitive and greedy: multi-character tokens are tried before their
// single-character prefixes (EEEE before E, MI/PR/RN/FM/TM9/TME/TM before
// their leading character), per §4.1 of the format-string specification.
//
// scanToken returns ok == false when s is empty or begins with a byte that
// is not part of any recognized element; the caller turns that into an
// InvalidFormatSyntax error naming the offending character.
func scanToken(s string) (el FormatElement, n int, ok bool) {
	if s == "" {
		return FormatElement{}, 0, false
	}
	switch {
	case prefixEqualFold(s, "EEEE"):
		return elem(KindExponentEEEE, caseOf(s[0])), 4, true
	case prefixEqualFold(s, "TM9"):
		return elem(KindTM9, caseOf(s[0])), 3, true
	case prefixEqualFold(s, "TME"):
		return elem(KindTME, caseOf(s[0])), 3, true
	case prefixEqualFold(s, "MI"):
		return elem(KindSignMI, true), 2, true
	case prefixEqualFold(s, "PR"):
		return elem(KindSignPR, true), 2, true
	case prefixEqualFold(s, "RN"):
		return elem(KindRomanNumeral, caseOf(s[0])), 2, true
	case prefixEqualFold(s, "FM"):
		return elem(KindFM, true), 2, true
	case prefixEqualFold(s, "TM"):
		return elem(KindTM, caseOf(s[0])), 2, true
	}
	switch s[0] {
	case '9':
		return elem(KindDigit9, true), 1, true
	case '0':
		return elem(KindDigit0, true), 1, true
	case 'X', 'x':
		return elem(KindDigitX, caseOf(s[0])), 1, true
	case '.':
		return elem(KindPointDot, true), 1, true
	case 'D', 'd':
		return elem(KindPointD, caseOf(s[0])), 1, true
	case ',':
		return elem(KindGroupComma, true), 1, true
	case 'G', 'g':
		return elem(KindGroupG, caseOf(s[0])), 1, true
	case 'S', 's':
		return elem(KindSignS, true), 1, true
	case 'B', 'b':
		return elem(KindB, true), 1, true
	case 'V', 'v':
		return elem(KindV, true), 1, true
	case '$':
		return elem(KindCurrencyDollar, true), 1, true
	case 'C', 'c':
		return elem(KindCurrencyC, caseOf(s[0])), 1, true
	case 'L', 'l':
		return elem(KindCurrencyL, true), 1, true
	}
	return FormatElement{}, 0, false
}

// tokenize splits format into its full token sequence, or returns the first
// InvalidFormatSyntax error encountered.
func tokenize(format string) ([]FormatElement, error) {
	var out []FormatElement
	for s := format; s != ""; {
		el, n, ok := scanToken(s)
		if !ok {
			return nil, &FormatError{
				Kind:    ErrInvalidFormatSyntax,
				Message: "Invalid format element '" + string(s[0]) + "'",
			}
		}
		out = append(out, el)
		s = s[n:]
	}
	return out, nil
}
