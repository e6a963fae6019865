// Package mathbridge converts LaTeX into native Office Math objects.
//
// LaTeX is rendered to MathML by an Engine, then the MathML tree is mapped
// onto the docx math model. The engine is initialized lazily, at most once
// per Bridge, no matter how many goroutines ask for a conversion first.
package mathbridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/alnah/go-md2docx/internal/docx"
)

// ErrConversion indicates a LaTeX expression could not be turned into an
// Office Math object. Callers fall back to rendering the source text.
var ErrConversion = errors.New("math conversion failed")

// textCommand matches \text{ so it can be rewritten to \mathrm{.
var textCommand = regexp.MustCompile(`\\text\s*\{`)

// Bridge converts LaTeX to Office Math. It is safe for concurrent use.
type Bridge struct {
	engine Engine
	gate   *Gate
	logger *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger used for conversion events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Bridge around engine. The engine is initialized on first use.
func New(engine Engine, opts ...Option) *Bridge {
	b := &Bridge{
		engine: engine,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.gate = NewGate(func(ctx context.Context) error {
		b.logger.Debug("initializing math engine")
		return engine.Init(ctx)
	})
	return b
}

var defaultBridge = sync.OnceValue(func() *Bridge {
	return New(&TreeBlood{})
})

// Default returns the process-wide Bridge backed by treeblood.
func Default() *Bridge {
	return defaultBridge()
}

// Ready waits for the engine to be initialized.
func (b *Bridge) Ready(ctx context.Context) error {
	if err := b.gate.Ready(ctx); err != nil {
		return fmt.Errorf("%w: engine init: %w", ErrConversion, err)
	}
	return nil
}

// Convert turns latex into an Office Math object. display selects block
// (m:oMathPara) over inline placement.
func (b *Bridge) Convert(ctx context.Context, latex string, display bool) (*docx.Math, error) {
	if err := b.Ready(ctx); err != nil {
		return nil, err
	}

	src := Preprocess(latex)
	if src != latex {
		b.logger.Debug("rewrote \\text to \\mathrm", "latex", latex)
	}
	if err := checkStructure(src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}

	mml, err := b.engine.MathML(src, display)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	root, err := parseMathML(mml)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	nodes, err := toOMML(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrConversion)
	}
	return &docx.Math{Display: display, Nodes: nodes}, nil
}

// Preprocess rewrites \text{...} to \mathrm{...}, which the engine renders
// as upright text.
func Preprocess(latex string) string {
	return textCommand.ReplaceAllString(latex, `\mathrm{`)
}

// checkStructure rejects empty expressions and unbalanced braces.
func checkStructure(latex string) error {
	if strings.TrimSpace(latex) == "" {
		return errors.New("empty expression")
	}
	depth := 0
	for i := 0; i < len(latex); i++ {
		switch latex[i] {
		case '\\':
			i++ // escaped character such as \{ or \}
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return errors.New("unbalanced braces")
			}
		}
	}
	if depth != 0 {
		return errors.New("unbalanced braces")
	}
	return nil
}
