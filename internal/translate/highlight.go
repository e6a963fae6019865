package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2docx/internal/docx"
)

// ErrUnknownStyle indicates a highlighting style that is not registered.
var ErrUnknownStyle = errors.New("unknown highlighting style")

// DefaultHighlightStyle is used when highlighting is enabled without a style.
const DefaultHighlightStyle = "github"

// Highlighter colours code blocks with chroma.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a Highlighter for a chroma style name.
func NewHighlighter(name string) (*Highlighter, error) {
	if name == "" {
		name = DefaultHighlightStyle
	}
	s, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return &Highlighter{style: s}, nil
}

// Runs splits code into monospace runs coloured per token. Unknown languages
// are detected from the content, then fall back to plain text.
func (h *Highlighter) Runs(lang, code string) ([]docx.Inline, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s code: %w", lang, err)
	}

	var runs []docx.Inline
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		entry := h.style.Get(tok.Type)
		r := &docx.Run{
			Text:     tok.Value,
			Font:     docx.FontMono,
			Size:     codeBlockSize,
			Bold:     entry.Bold == chroma.Yes,
			Italic:   entry.Italic == chroma.Yes,
			Preserve: true,
		}
		if entry.Colour.IsSet() {
			r.Color = hexColour(entry.Colour)
		}
		runs = append(runs, r)
	}
	return trimTrailingNewline(runs), nil
}

func hexColour(c chroma.Colour) string {
	return fmt.Sprintf("%02X%02X%02X", c.Red(), c.Green(), c.Blue())
}

// trimTrailingNewline drops the newline chroma appends to the last token.
func trimTrailingNewline(runs []docx.Inline) []docx.Inline {
	for len(runs) > 0 {
		last := runs[len(runs)-1].(*docx.Run)
		last.Text = strings.TrimRight(last.Text, "\n")
		if last.Text != "" {
			break
		}
		runs = runs[:len(runs)-1]
	}
	return runs
}
