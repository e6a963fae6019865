package md2docx

import (
	"fmt"
	"unicode/utf8"
)

// Metadata field limits, in characters.
const (
	MaxTitleLength  = 500
	MaxAuthorLength = 200
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // Document title for core properties (optional)
	Author   string // Document creator for core properties (optional)
}

// Validate checks that required fields are present and metadata fits.
func (in Input) Validate() error {
	if in.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if n := utf8.RuneCountInString(in.Title); n > MaxTitleLength {
		return fmt.Errorf("%w: title too long (%d > %d)", ErrInvalidInput, n, MaxTitleLength)
	}
	if n := utf8.RuneCountInString(in.Author); n > MaxAuthorLength {
		return fmt.Errorf("%w: author too long (%d > %d)", ErrInvalidInput, n, MaxAuthorLength)
	}
	return nil
}

// ConvertResult is the output of a conversion.
type ConvertResult struct {
	// DOCX holds the complete WordprocessingML package.
	DOCX []byte

	Stats Stats
}

// Stats describes what a conversion produced.
type Stats struct {
	Tokens        int // top-level Markdown blocks read
	Blocks        int // document blocks written
	Formulas      int // formulas converted to Office Math
	MathFallbacks int // formulas kept as styled source text
	Skipped       int // Markdown blocks with no document equivalent
}
