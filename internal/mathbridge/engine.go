package mathbridge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wyatt915/treeblood"
)

// Engine renders LaTeX to MathML.
type Engine interface {
	// Init prepares the engine. It is called through a Gate, so at most once
	// successfully per Bridge.
	Init(ctx context.Context) error

	// MathML renders latex in display or inline (text) style.
	MathML(latex string, display bool) (string, error)
}

var errEngineNotReady = errors.New("math engine not initialized")

// TreeBlood is the default Engine, backed by a treeblood document.
type TreeBlood struct {
	// Macros are extra LaTeX macro definitions, name without backslash.
	Macros map[string]string

	mu  sync.Mutex
	doc *treeblood.Pitziil
}

// Init creates the treeblood document.
func (e *TreeBlood) Init(ctx context.Context) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("treeblood init: %v", r)
		}
	}()

	doc := treeblood.NewDocument(e.Macros, false)
	e.mu.Lock()
	e.doc = doc
	e.mu.Unlock()
	return nil
}

// MathML renders latex. Calls are serialized because a treeblood document
// keeps macro and numbering state.
func (e *TreeBlood) MathML(latex string, display bool) (mml string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return "", errEngineNotReady
	}
	defer func() {
		if r := recover(); r != nil {
			mml, err = "", fmt.Errorf("treeblood: %v", r)
		}
	}()

	if display {
		return e.doc.DisplayStyle(latex)
	}
	return e.doc.TextStyle(latex)
}
