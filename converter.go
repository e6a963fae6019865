package md2docx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/mathbridge"
	"github.com/alnah/go-md2docx/internal/mdtoken"
	"github.com/alnah/go-md2docx/internal/translate"
)

// Compile-time interface implementation checks.
var (
	_ MathConverter = (*mathbridge.Bridge)(nil)
	_ Publisher     = (*DirPublisher)(nil)
)

// Converter orchestrates the Markdown-to-DOCX pipeline.
// Create with NewConverter and call Convert for each document.
// A Converter is safe for concurrent use.
type Converter struct {
	cfg    converterConfig
	logger *slog.Logger
	math   MathConverter
	styles StyleSheet
	now    func() time.Time

	lexer      *mdtoken.Lexer
	translator *translate.Translator
}

// NewConverter creates a Converter with default configuration.
// Returns an error if the style sheet is invalid or the highlighting style
// is unknown.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger: slog.New(slog.DiscardHandler),
		styles: docx.DefaultStyleSheet(),
		now:    time.Now,
		lexer:  mdtoken.NewLexer(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.styles.Validate(); err != nil {
		return nil, err
	}

	topts := []translate.Option{translate.WithLogger(c.logger)}
	switch {
	case c.cfg.mathDisabled:
	case c.math != nil:
		topts = append(topts, translate.WithMath(c.math))
	default:
		topts = append(topts, translate.WithMath(mathbridge.Default()))
	}
	if c.cfg.highlight {
		h, err := translate.NewHighlighter(c.cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		topts = append(topts, translate.WithHighlighter(h))
	}
	c.translator = translate.New(topts...)

	return c, nil
}

// Convert turns Markdown into a DOCX package.
// The context is used for cancellation and timeout. On failure no partial
// document is returned. Recovers from internal panics to prevent crashes
// from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	defer func() {
		if err != nil {
			c.logger.Error("conversion failed", "error", err)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	md := Preprocess(input.Markdown)
	c.logger.Debug("converting markdown", "bytes", len(md), "sample", sample(md))

	tokens, err := c.lexer.Lex(md)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("parsed markdown", "tokens", len(tokens))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	translated, err := c.translator.Translate(ctx, tokens)
	if err != nil {
		return nil, fmt.Errorf("translating markdown: %w", err)
	}

	doc, err := docx.Assemble(translated.Body, c.styles, docx.Properties{
		Title:   input.Title,
		Creator: input.Author,
		Created: c.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := translated.Stats
	c.logger.Debug("generated document",
		"blocks", s.Blocks, "bytes", len(data),
		"formulas", s.Math.Converted, "fallbacks", s.Math.Fallbacks)

	return &ConvertResult{
		DOCX: data,
		Stats: Stats{
			Tokens:        s.Tokens,
			Blocks:        s.Blocks,
			Formulas:      s.Math.Converted,
			MathFallbacks: s.Math.Fallbacks,
			Skipped:       s.Skipped,
		},
	}, nil
}

// sample returns the start of md for log lines.
func sample(md string) string {
	const limit = 200
	r := []rune(md)
	if len(r) <= limit {
		return md
	}
	return string(r[:limit])
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the converter.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyMarkdown) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrMalformedToken)
}
