// Package translate maps Markdown block tokens onto the docx document model.
//
// Tokens are consumed strictly left to right and blocks are emitted in the
// same order. Each token kind has its own layout (spacing, indentation,
// borders, shading); inline text goes through a Formatter, which hands
// formulas to a MathConverter and degrades to styled source text when a
// formula cannot be converted.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/mdtoken"
)

// ErrMalformedToken indicates a token that cannot be normalized into a block.
var ErrMalformedToken = errors.New("malformed token")

// Translator converts token streams into document bodies.
// A Translator is safe for concurrent use; each Translate call keeps its own
// state.
type Translator struct {
	formatter   *Formatter
	highlighter *Highlighter
	logger      *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger for per-token and formula events.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMath sets the formula converter. Without one, formulas are kept as
// fallback text.
func WithMath(m MathConverter) Option {
	return func(t *Translator) {
		t.formatter.math = m
	}
}

// WithHighlighter colours code blocks.
func WithHighlighter(h *Highlighter) Option {
	return func(t *Translator) {
		t.highlighter = h
	}
}

// New creates a Translator.
func New(opts ...Option) *Translator {
	t := &Translator{
		formatter: NewFormatter(nil, nil),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.formatter.logger = t.logger
	return t
}

// Stats summarizes one translation.
type Stats struct {
	Tokens  int
	Blocks  int
	Skipped int
	Math    MathStats
}

// Result is a translated body and its statistics.
type Result struct {
	Body  docx.Body
	Stats Stats
}

// translation is the state of one Translate call.
type translation struct {
	*Translator
	ctx     context.Context
	spacing Coordinator
	body    docx.Body
	stats   Stats
}

// Translate converts tokens into a document body. It fails only on
// cancellation or on a token that cannot be normalized; unsupported token
// kinds and unconvertible formulas are logged and degrade in place.
func (t *Translator) Translate(ctx context.Context, tokens []mdtoken.Token) (*Result, error) {
	tr := &translation{Translator: t, ctx: ctx}
	for i, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t.logger.Debug("processing token", "index", i, "kind", tok.Kind())
		if tr.spacing.Next(tok.Kind()) {
			tr.emit(&docx.Paragraph{Spacing: spacerSpacing})
		}
		if err := tr.token(tok); err != nil {
			return nil, fmt.Errorf("token %d (%s): %w", i, tok.Kind(), err)
		}
	}
	tr.stats.Tokens = len(tokens)
	tr.stats.Blocks = len(tr.body.Blocks)
	t.logger.Debug("translated tokens",
		"tokens", tr.stats.Tokens,
		"blocks", tr.stats.Blocks,
		"formulas", tr.stats.Math.Converted,
		"fallbacks", tr.stats.Math.Fallbacks,
		"skipped", tr.stats.Skipped)
	return &Result{Body: tr.body, Stats: tr.stats}, nil
}

func (tr *translation) emit(b docx.Block) {
	tr.body.Blocks = append(tr.body.Blocks, b)
}

func (tr *translation) format(text string) []docx.Inline {
	runs, stats := tr.formatter.Format(tr.ctx, text)
	tr.stats.Math.add(stats)
	return runs
}

func (tr *translation) token(tok mdtoken.Token) error {
	switch tok := tok.(type) {
	case *mdtoken.Heading:
		tr.heading(tok)
	case *mdtoken.Paragraph:
		tr.emit(&docx.Paragraph{Runs: tr.format(tok.Text), Spacing: paragraphSpacing})
	case *mdtoken.List:
		tr.list(tok, 0)
	case *mdtoken.Blockquote:
		tr.blockquote(tok)
	case *mdtoken.Code:
		tr.code(tok)
	case *mdtoken.Rule:
		tr.emit(&docx.Paragraph{Borders: ruleBorders(), Spacing: ruleSpacing})
	case *mdtoken.Table:
		return tr.table(tok)
	case *mdtoken.Space:
	case *mdtoken.Other:
		tr.stats.Skipped++
		tr.logger.Info("skipping unsupported block", "kind", tok.Name)
	default:
		return fmt.Errorf("%w: unexpected token type %T", ErrMalformedToken, tok)
	}
	return nil
}

// heading keeps the text literal; the heading style sets font and size.
func (tr *translation) heading(h *mdtoken.Heading) {
	depth := min(max(h.Depth, 1), 6)
	if depth != h.Depth {
		tr.logger.Warn("heading depth clamped", "depth", h.Depth, "clamped", depth)
	}
	var runs []docx.Inline
	if h.Text != "" {
		runs = []docx.Inline{&docx.Run{Text: h.Text}}
	}
	tr.emit(&docx.Paragraph{
		Style:   docx.HeadingStyle(depth),
		Runs:    runs,
		Spacing: headingSpacing,
	})
}

// list emits one paragraph per item. Nested lists follow their parent item
// one level deeper, each with its own numbering instance.
func (tr *translation) list(l *mdtoken.List, level int) {
	level = min(level, maxListLevel)
	numID := len(tr.body.Lists) + 1
	tr.body.Lists = append(tr.body.Lists, docx.ListInstance{
		NumID:   numID,
		Ordered: l.Ordered,
		Start:   l.Start,
		Level:   level,
	})

	for i, item := range l.Items {
		runs := tr.format(item.Text)
		if item.Task {
			runs = append([]docx.Inline{textRun(taskBox(item.Checked))}, runs...)
		}
		tr.emit(&docx.Paragraph{
			Runs:      runs,
			Spacing:   listItemSpacing(i == 0),
			Indent:    &docx.Indent{Left: listIndent * (level + 1), Hanging: listHanging},
			Numbering: &docx.Numbering{NumID: numID, Level: level},
		})
		for _, nested := range item.Nested {
			tr.list(nested, level+1)
		}
	}
}

func taskBox(checked bool) string {
	if checked {
		return "☒ "
	}
	return "☐ "
}

// blockquote renders the quote's paragraphs; other nested blocks are dropped.
func (tr *translation) blockquote(bq *mdtoken.Blockquote) {
	for _, tok := range bq.Tokens {
		p, ok := tok.(*mdtoken.Paragraph)
		if !ok {
			tr.stats.Skipped++
			tr.logger.Info("skipping block inside quote", "kind", tok.Kind())
			continue
		}
		tr.emit(&docx.Paragraph{
			Runs:    tr.format(p.Text),
			Spacing: quoteSpacing,
			Indent:  &docx.Indent{Left: quoteIndent},
			Borders: quoteBorders(),
		})
	}
}

// code emits the literal code text; it is never scanned for inline markup.
func (tr *translation) code(c *mdtoken.Code) {
	p := &docx.Paragraph{Spacing: codeSpacing, Shading: codeShading()}
	if tr.highlighter != nil {
		runs, err := tr.highlighter.Runs(c.Lang, c.Text)
		if err == nil {
			p.Runs = runs
			tr.emit(p)
			return
		}
		tr.logger.Warn("code highlighting failed", "lang", c.Lang, "error", err)
	}
	p.Runs = []docx.Inline{&docx.Run{Text: c.Text, Font: docx.FontMono, Size: codeBlockSize, Preserve: true}}
	tr.emit(p)
}

// table normalizes every row to the header width.
func (tr *translation) table(t *mdtoken.Table) error {
	cols := len(t.Header)
	if cols == 0 {
		return fmt.Errorf("%w: table without header cells", ErrMalformedToken)
	}
	pct := 100 / cols

	widths := make([]int, cols)
	for i := range widths {
		widths[i] = pct * 100
	}
	margins := tableMargins
	tbl := &docx.Table{
		WidthPct:     100,
		Borders:      tableBorders(),
		ColumnWidths: widths,
		Margins:      &margins,
	}

	tbl.Rows = append(tbl.Rows, tr.row(t.Header, cols, pct, headerRow))
	for i, cells := range t.Rows {
		if len(cells) != cols {
			tr.logger.Debug("normalized table row", "row", i, "cells", len(cells), "columns", cols)
		}
		tbl.Rows = append(tbl.Rows, tr.row(cells, cols, pct, dataRow))
	}
	tr.emit(tbl)
	return nil
}

func (tr *translation) row(cells []string, cols, pct int, layout rowLayout) *docx.TableRow {
	row := &docx.TableRow{
		Header:     layout.header,
		Height:     layout.height,
		HeightRule: docx.HeightAtLeast,
	}
	for i := range cols {
		var text string
		if i < len(cells) {
			text = cells[i]
		}
		margins := layout.margins
		row.Cells = append(row.Cells, &docx.TableCell{
			Paragraphs: []*docx.Paragraph{{Runs: tr.format(text), Spacing: layout.spacing}},
			WidthPct:   pct,
			Borders:    tableBorders(),
			Margins:    &margins,
			VAlign:     docx.VAlignCenter,
		})
	}
	return row
}
