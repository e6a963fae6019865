package translate

import (
	"context"
	"log/slog"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/inline"
)

// MathConverter turns LaTeX into an Office Math object.
type MathConverter interface {
	Convert(ctx context.Context, latex string, display bool) (*docx.Math, error)
}

// Formatter turns the raw text of a block into runs and math objects.
type Formatter struct {
	math   MathConverter
	logger *slog.Logger
}

// NewFormatter creates a Formatter. A nil math converter renders every
// formula as fallback text.
func NewFormatter(math MathConverter, logger *slog.Logger) *Formatter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Formatter{math: math, logger: logger}
}

// MathStats counts formula outcomes.
type MathStats struct {
	Converted int
	Fallbacks int
}

func (s *MathStats) add(o MathStats) {
	s.Converted += o.Converted
	s.Fallbacks += o.Fallbacks
}

// Format returns the inline content of text in order.
func (f *Formatter) Format(ctx context.Context, text string) ([]docx.Inline, MathStats) {
	var out []docx.Inline
	var stats MathStats
	for _, span := range inline.Split(text) {
		switch span.Kind {
		case inline.Plain:
			out = append(out, textRun(span.Content))
		case inline.Bold:
			r := textRun(span.Content)
			r.Bold = true
			out = append(out, r)
		case inline.Italic:
			r := textRun(span.Content)
			r.Italic = true
			out = append(out, r)
		case inline.Code:
			out = append(out, &docx.Run{Text: span.Content, Font: docx.FontMono, Size: textSize})
		case inline.InlineMath, inline.DisplayMath:
			display := span.Kind == inline.DisplayMath
			if m := f.formula(ctx, span, display); m != nil {
				out = append(out, m)
				stats.Converted++
				continue
			}
			out = append(out, mathFallback(span.Raw, display))
			stats.Fallbacks++
		}
	}
	return out, stats
}

func (f *Formatter) formula(ctx context.Context, span inline.Span, display bool) *docx.Math {
	if f.math == nil {
		return nil
	}
	f.logger.Debug("converting formula", "display", display, "latex", preview(span.Content))
	m, err := f.math.Convert(ctx, span.Content, display)
	if err != nil {
		f.logger.Warn("formula kept as text", "display", display, "latex", span.Content, "error", err)
		return nil
	}
	return m
}

func textRun(s string) *docx.Run {
	return &docx.Run{Text: s, Font: docx.FontBody, Size: textSize}
}

// mathFallback keeps the delimited source of a formula readable and
// recognizable.
func mathFallback(raw string, display bool) *docx.Run {
	size := inlineMathSize
	if display {
		size = displayMathSize
	}
	return &docx.Run{Text: raw, Font: docx.FontMono, Size: size, Color: mathFallbackTint}
}

// preview shortens long formulas in log lines.
func preview(s string) string {
	const limit = 50
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}
