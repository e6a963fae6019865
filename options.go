package md2docx

import (
	"log/slog"
	"time"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/translate"
)

// MathConverter turns LaTeX into an Office Math object. Implementations
// must be safe for concurrent use.
type MathConverter = translate.MathConverter

// StyleSheet holds document-wide fonts, heading styles and list definitions.
type StyleSheet = docx.StyleSheet

// DefaultStyleSheet returns the built-in style sheet.
func DefaultStyleSheet() StyleSheet {
	return docx.DefaultStyleSheet()
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout        time.Duration
	mathDisabled   bool
	highlight      bool
	highlightStyle string
}

// WithTimeout bounds each conversion. Without it a conversion runs until
// the caller's context is done.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2docx: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the structured logger. Conversions log at debug level,
// formula fallbacks at warn.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMathConverter replaces the built-in LaTeX converter.
func WithMathConverter(m MathConverter) Option {
	return func(c *Converter) {
		c.math = m
	}
}

// WithoutMath keeps every formula as styled source text.
func WithoutMath() Option {
	return func(c *Converter) {
		c.cfg.mathDisabled = true
	}
}

// WithCodeHighlighting colours code blocks using a chroma style name
// ("github", "monokai", ...). An empty name selects the default style.
func WithCodeHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithStyleSheet replaces the built-in style sheet. It is validated by
// NewConverter.
func WithStyleSheet(s StyleSheet) Option {
	return func(c *Converter) {
		c.styles = s
	}
}

// WithClock sets the source of document creation times.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}
