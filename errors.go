package md2docx

import (
	"errors"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/mathbridge"
	"github.com/alnah/go-md2docx/internal/mdtoken"
	"github.com/alnah/go-md2docx/internal/translate"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrTokenize      = mdtoken.ErrTokenize
	ErrAssembly      = errors.New("document assembly failed")
	ErrInternal      = errors.New("internal conversion error")

	// ErrMalformedToken indicates a Markdown block that could not be
	// normalized; the whole document fails.
	ErrMalformedToken = translate.ErrMalformedToken

	// ErrMathConversion wraps a single formula failure. Convert never
	// returns it: the formula is kept as styled text instead.
	ErrMathConversion = mathbridge.ErrConversion

	// Configuration errors.
	ErrInvalidStyle     = docx.ErrInvalidStyle
	ErrUnknownHighlight = translate.ErrUnknownStyle
	ErrInvalidInput     = errors.New("invalid input")

	// Output errors.
	ErrPublish = errors.New("publishing document failed")
)
