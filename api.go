// Copyright 2024 The ZetaSQL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numformat implements a format-string parser/validator and
// renderer for converting numeric values to strings, patterned after
// Oracle's TO_CHAR numeric formats.
package numformat

// DefaultMaxFormatWidth is the format-string length cap used when a Config
// is nil or its MaxFormatWidth is zero.
const DefaultMaxFormatWidth = 1024

// Config holds the tunables this core exposes.
type Config struct {
	// MaxFormatWidth caps the length of a format string. Zero means
	// DefaultMaxFormatWidth.
	MaxFormatWidth int
}

// ProductMode names the two error-message dialects of the source system:
// ProductInternal for engineering-facing diagnostics, ProductExternal for
// user-facing SQL error text. NumericalToStringWithFormat accepts it but
// produces the same output and the same FormatError text in both modes.
type ProductMode int

const (
	ProductInternal ProductMode = iota
	ProductExternal
)

// ValidateFormat runs the parser over format and discards the result,
// reporting only whether it would succeed. cfg may be nil.
func ValidateFormat(format string, cfg *Config) error {
	_, err := Parse(format, cfg)
	return err
}

// ParseForTest exposes the parser's output for tests and tooling that need
// to inspect a ParsedFormat directly.
func ParseForTest(format string, cfg *Config) (*ParsedFormat, error) {
	return Parse(format, cfg)
}

// NumericalToStringWithFormat parses format, prenormalizes v against it, and
// renders the result. mode is accepted for call-site compatibility with the
// two-dialect (internal/external) error wording the source system supports;
// this core defines identical element and error-kind names in both modes,
// so it does not otherwise affect behavior.
func NumericalToStringWithFormat(v NumericValue, format string, mode ProductMode, cfg *Config) (string, error) {
	_ = mode // wording-dialect selector only; both modes share one error vocabulary here, see SPEC_FULL.md §3
	pf, err := Parse(format, cfg)
	if err != nil {
		return "", err
	}
	num, err := prenormalize(v, pf)
	if err != nil {
		return "", err
	}
	return render(pf, num)
}
