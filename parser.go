// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numformat

import "fmt"

//go:generate stringer -type=OutputType
//go:generate stringer -type=ParserState

// OutputType classifies how a successfully parsed format renders a value.
type OutputType int

const (
	OutputDecimal OutputType = iota
	OutputHexadecimal
	OutputRomanNumeral
	OutputTextMinimal
)

// ParserState names a state of the format-string state machine described by
// the transition table this file implements.
type ParserState int

const (
	StateStart ParserState = iota
	StateIntegerPart
	StateFractionalPart
	StateAfterExponent
	StateHexadecimal
	StateAfterBackSign
	StateRomanNumeral
	StateTextMinimal
)

// ParsedFormat is the immutable, validated description of how to render a
// number, produced by Parse/ParseForTest. It is safe to share read-only
// across goroutines once returned.
type ParsedFormat struct {
	OutputType OutputType

	// Elements holds only the render-time significant tokens: digit
	// placeholders (0, 9, X), decimal points (., D, V), group separators
	// (, and G), and the exponent marker (EEEE). Sign, currency, FM and B
	// are tracked separately below.
	Elements []FormatElement

	// DecimalPointIndex is the index into Elements of the element that
	// terminates the integer part. It equals len(Elements) when no decimal
	// point exists, or the index of EEEE when an exponent is present
	// without an explicit decimal point.
	DecimalPointIndex int

	// IndexOfFirstZero is the index into Elements of the first '0' digit
	// placeholder, or -1 if there is none.
	IndexOfFirstZero int

	NumIntegerDigit int
	Scale           int

	Sign        *FormatElement
	SignAtFront bool

	Currency     *FormatElement
	RomanNumeral *FormatElement
	TM           *FormatElement

	HasFM       bool
	HasB        bool
	HasExponent bool
}

func fmtErr(kind ErrorKind, message string) *FormatError {
	return &FormatError{Kind: kind, Message: message}
}

// parseState is the mutable accumulator driven by the token stream; it is
// finalized into a *ParsedFormat by finish.
type parseState struct {
	state ParserState

	elements          []FormatElement
	decimalPointIndex int
	decimalPointKind  ElemKind
	indexOfFirstZero  int

	digitCount int
	scale      int

	has9              bool
	hasX              bool
	hasGroupSeparator bool
	hasExponent       bool
	hasFM             bool
	hasB              bool

	sign        *FormatElement
	signAtFront bool
	currency    *FormatElement
	roman       *FormatElement
	tm          *FormatElement
}

func newParseState() *parseState {
	return &parseState{decimalPointIndex: -1, indexOfFirstZero: -1}
}

func (p *parseState) append(tok FormatElement) int {
	idx := len(p.elements)
	p.elements = append(p.elements, tok)
	if tok.Kind == KindDigit0 && p.indexOfFirstZero < 0 {
		p.indexOfFirstZero = idx
	}
	return idx
}

// Parse runs the tokenizer and state machine over format, producing a
// *ParsedFormat or the first *FormatError encountered.
func Parse(format string, cfg *Config) (*ParsedFormat, error) {
	maxWidth := DefaultMaxFormatWidth
	if cfg != nil && cfg.MaxFormatWidth > 0 {
		maxWidth = cfg.MaxFormatWidth
	}
	if len(format) > maxWidth {
		return nil, fmtErr(ErrFormatTooLong, fmt.Sprintf("Format string too long; limit %d", maxWidth))
	}

	toks, err := tokenize(format)
	if err != nil {
		return nil, err
	}

	p := newParseState()
	for _, tok := range toks {
		if err := p.step(tok); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

func (p *parseState) step(tok FormatElement) error {
	switch tok.Kind {
	case KindFM:
		if p.hasFM {
			return fmtErr(ErrInvalidFormatCombination, "'FM' cannot be repeated")
		}
		p.hasFM = true
		return nil
	case KindCurrencyDollar, KindCurrencyC, KindCurrencyL:
		if p.currency != nil {
			return fmtErr(ErrInvalidFormatCombination, "There can be at most one of '$', 'C' or 'L'")
		}
		t := tok
		p.currency = &t
		return nil
	case KindB:
		if p.hasB {
			return fmtErr(ErrInvalidFormatCombination, "There can be at most one 'B'")
		}
		p.hasB = true
		return nil
	}

	switch tok.Kind {
	case KindDigit0, KindDigit9, KindDigitX:
		p.digitCount++
	}

	switch p.state {
	case StateStart:
		return p.stepStart(tok)
	case StateIntegerPart:
		return p.stepIntegerPart(tok)
	case StateFractionalPart:
		return p.stepFractionalPart(tok)
	case StateAfterExponent:
		return p.stepAfterExponent(tok)
	case StateHexadecimal:
		return p.stepHexadecimal(tok)
	case StateAfterBackSign:
		return p.stepAfterBackSign(tok)
	case StateRomanNumeral:
		return p.stepRomanNumeral(tok)
	case StateTextMinimal:
		return p.stepTextMinimal(tok)
	}
	panic("numformat: unreachable parser state")
}

func unexpected(tok FormatElement) error {
	return fmtErr(ErrInvalidFormatCombination, "Unexpected '"+tok.Kind.token()+"'")
}

func (p *parseState) setSign(tok FormatElement) error {
	if p.sign != nil {
		return fmtErr(ErrInvalidFormatCombination, "There can be at most one of 'S','MI','PR'")
	}
	t := tok
	p.sign = &t
	p.state = StateAfterBackSign
	return nil
}

func (p *parseState) stepStart(tok FormatElement) error {
	switch tok.Kind {
	case KindSignS:
		t := tok
		p.sign = &t
		p.signAtFront = true
		p.state = StateIntegerPart
		return nil
	case KindSignMI, KindSignPR:
		return fmtErr(ErrInvalidFormatCombination, "'MI'/'PR' can only appear after all digits and 'EEEE'")
	case KindDigit9:
		p.has9 = true
		p.append(tok)
		p.state = StateIntegerPart
		return nil
	case KindDigit0:
		p.append(tok)
		p.state = StateIntegerPart
		return nil
	case KindDigitX:
		p.hasX = true
		p.append(tok)
		p.state = StateHexadecimal
		return nil
	case KindRomanNumeral:
		t := tok
		p.roman = &t
		p.state = StateRomanNumeral
		return nil
	case KindPointDot, KindPointD, KindV:
		idx := p.append(tok)
		p.decimalPointIndex = idx
		p.decimalPointKind = tok.Kind
		p.state = StateFractionalPart
		return nil
	case KindTM, KindTME, KindTM9:
		t := tok
		p.tm = &t
		p.state = StateTextMinimal
		return nil
	}
	return unexpected(tok)
}

func (p *parseState) stepIntegerPart(tok FormatElement) error {
	switch tok.Kind {
	case KindSignS, KindSignMI, KindSignPR:
		return p.setSign(tok)
	case KindExponentEEEE:
		if p.hasGroupSeparator {
			return fmtErr(ErrInvalidFormatCombination, "',' or 'G' cannot appear together with 'EEEE'")
		}
		p.hasExponent = true
		idx := p.append(tok)
		p.decimalPointIndex = idx
		p.state = StateAfterExponent
		return nil
	case KindDigitX:
		if p.has9 {
			return fmtErr(ErrInvalidFormatCombination, "'X' cannot appear together with '9'")
		}
		if p.hasGroupSeparator {
			return fmtErr(ErrInvalidFormatCombination, "'X' cannot appear together with ',' or 'G'")
		}
		p.hasX = true
		p.append(tok)
		p.state = StateHexadecimal
		return nil
	case KindDigit9:
		p.has9 = true
		p.append(tok)
		return nil
	case KindDigit0:
		p.append(tok)
		return nil
	case KindGroupComma, KindGroupG:
		p.hasGroupSeparator = true
		p.append(tok)
		return nil
	case KindPointDot, KindPointD, KindV:
		idx := p.append(tok)
		p.decimalPointIndex = idx
		p.decimalPointKind = tok.Kind
		p.state = StateFractionalPart
		return nil
	case KindTM, KindTME, KindTM9:
		return fmtErr(ErrInvalidFormatCombination, "'TM','TM9' or 'TME' cannot be combined with other format elements")
	}
	return unexpected(tok)
}

func (p *parseState) stepFractionalPart(tok FormatElement) error {
	switch tok.Kind {
	case KindDigit9:
		p.has9 = true
		p.scale++
		p.append(tok)
		return nil
	case KindDigit0:
		p.scale++
		p.append(tok)
		return nil
	case KindDigitX:
		return fmtErr(ErrInvalidFormatCombination, "'X' cannot appear together with '"+p.decimalPointKind.token()+"'")
	case KindExponentEEEE:
		// Unlike the IntegerPart transition, decimalPointIndex already
		// points at the decimal point element that put the parser into
		// this state and must not be disturbed here.
		if p.hasGroupSeparator {
			return fmtErr(ErrInvalidFormatCombination, "',' or 'G' cannot appear together with 'EEEE'")
		}
		p.hasExponent = true
		p.append(tok)
		p.state = StateAfterExponent
		return nil
	case KindSignS, KindSignMI, KindSignPR:
		return p.setSign(tok)
	case KindPointDot, KindPointD, KindV:
		return fmtErr(ErrInvalidFormatCombination, "There can be at most one of '.','D','V'")
	case KindGroupComma, KindGroupG:
		return fmtErr(ErrInvalidFormatCombination, "',' or 'G' cannot appear after '.','D' or 'V'")
	}
	return unexpected(tok)
}

func (p *parseState) stepAfterExponent(tok FormatElement) error {
	switch tok.Kind {
	case KindSignS, KindSignMI, KindSignPR:
		return p.setSign(tok)
	case KindGroupComma, KindGroupG:
		return fmtErr(ErrInvalidFormatCombination, "',' or 'G' cannot appear together with 'EEEE'")
	}
	return fmtErr(ErrInvalidFormatCombination, "'"+tok.Kind.token()+"' cannot appear after 'EEEE'")
}

func (p *parseState) stepAfterBackSign(tok FormatElement) error {
	switch tok.Kind {
	case KindDigit0, KindDigit9, KindDigitX, KindExponentEEEE:
		if p.sign.Kind == KindSignS {
			return fmtErr(ErrInvalidFormatCombination, "'S' can only appear before or after all digits and 'EEEE'")
		}
		return fmtErr(ErrInvalidFormatCombination, "'"+p.sign.Kind.token()+"' can only appear after all digits and 'EEEE'")
	}
	return fmtErr(ErrInvalidFormatCombination, "Unexpected format element '"+tok.Kind.token()+"'")
}

func (p *parseState) stepHexadecimal(tok FormatElement) error {
	switch tok.Kind {
	case KindDigit0, KindDigitX:
		p.append(tok)
		return nil
	case KindSignS, KindSignMI, KindSignPR:
		return p.setSign(tok)
	}
	return fmtErr(ErrInvalidFormatCombination, "'X' cannot appear together with '"+tok.Kind.token()+"'")
}

func (p *parseState) stepTextMinimal(tok FormatElement) error {
	return fmtErr(ErrInvalidFormatCombination, "'TM','TM9' or 'TME' cannot be combined with other format elements")
}

func (p *parseState) stepRomanNumeral(tok FormatElement) error {
	return fmtErr(ErrInvalidFormatCombination, "'RN' cannot appear together with '"+tok.Kind.token()+"'")
}

// finish runs the end-of-stream validation and post-processing rules and
// produces the immutable ParsedFormat.
func (p *parseState) finish() (*ParsedFormat, error) {
	var outputType OutputType
	switch {
	case p.tm != nil:
		outputType = OutputTextMinimal
	case p.roman != nil:
		outputType = OutputRomanNumeral
	case p.hasX:
		outputType = OutputHexadecimal
	default:
		outputType = OutputDecimal
	}

	if p.currency != nil {
		switch {
		case p.tm != nil:
			return nil, fmtErr(ErrInvalidFormatCombination, "Currency cannot be combined with 'TM', 'TM9' or 'TME'")
		case p.hasX:
			return nil, fmtErr(ErrInvalidFormatCombination, "Currency cannot be combined with 'X'")
		case p.roman != nil:
			return nil, fmtErr(ErrInvalidFormatCombination, "Currency cannot be combined with 'RN'")
		}
	}
	if p.hasB {
		switch {
		case p.tm != nil:
			return nil, fmtErr(ErrInvalidFormatCombination, "'B' cannot be combined with 'TM', 'TM9' or 'TME'")
		case p.hasX:
			return nil, fmtErr(ErrInvalidFormatCombination, "'B' cannot be combined with 'X'")
		case p.roman != nil:
			return nil, fmtErr(ErrInvalidFormatCombination, "'B' cannot be combined with 'RN'")
		}
	}
	if p.hasFM && p.tm != nil {
		return nil, fmtErr(ErrInvalidFormatCombination, "'FM' cannot be combined with 'TM', 'TM9' or 'TME'")
	}
	if p.tm == nil && p.roman == nil && p.digitCount < 1 {
		return nil, fmtErr(ErrEmptyDigits, "Format string must contain at least one of 'X','0','9'")
	}
	if p.hasX && p.digitCount > 16 {
		return nil, fmtErr(ErrHexTooLong, "Max number of 'X' is 16")
	}

	numIntegerDigit := p.digitCount - p.scale
	decimalPointIndex := p.decimalPointIndex
	elements := p.elements
	indexOfFirstZero := p.indexOfFirstZero

	if outputType == OutputDecimal {
		if decimalPointIndex < 0 {
			decimalPointIndex = len(elements)
		}
		if p.hasExponent && decimalPointIndex >= 2 {
			cut := decimalPointIndex - 1
			trimmed := make([]FormatElement, len(elements)-cut)
			copy(trimmed, elements[cut:])
			elements = trimmed
			decimalPointIndex = 1
			indexOfFirstZero = -1
			for i, el := range elements {
				if el.Kind == KindDigit0 {
					indexOfFirstZero = i
					break
				}
			}
		}
	}

	return &ParsedFormat{
		OutputType:        outputType,
		Elements:          elements,
		DecimalPointIndex: decimalPointIndex,
		IndexOfFirstZero:  indexOfFirstZero,
		NumIntegerDigit:   numIntegerDigit,
		Scale:             p.scale,
		Sign:              p.sign,
		SignAtFront:       p.signAtFront,
		Currency:          p.currency,
		RomanNumeral:      p.roman,
		TM:                p.tm,
		HasFM:             p.hasFM,
		HasB:              p.hasB,
		HasExponent:       p.hasExponent,
	}, nil
}
