package md2docx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Publisher hands a finished document to its destination (a directory, an
// object store, a document-hosting API).
type Publisher interface {
	Publish(ctx context.Context, name string, docx []byte) (location string, err error)
}

// DirPublisher writes documents into a local directory.
type DirPublisher struct {
	Dir string
}

// Publish writes docx as Dir/name atomically and returns its path. A
// ".docx" extension is added when name has none.
func (p *DirPublisher) Publish(ctx context.Context, name string, docx []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: invalid document name %q", ErrPublish, name)
	}
	if !strings.EqualFold(filepath.Ext(name), ".docx") {
		name += ".docx"
	}

	if err := os.MkdirAll(p.Dir, fileutil.DirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublish, err)
	}
	path := filepath.Join(p.Dir, name)
	if err := fileutil.WriteFileAtomic(path, docx, fileutil.FilePerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublish, err)
	}
	return path, nil
}
