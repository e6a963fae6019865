package translate

import "github.com/alnah/go-md2docx/internal/mdtoken"

// Coordinator decides where blank spacer paragraphs go between blocks.
// A spacer is placed when a run of blank lines follows a different kind of
// block; further blank runs before the next content block add nothing.
type Coordinator struct {
	last    mdtoken.Kind
	started bool
	breaks  int
}

// Next records a token of the given kind and reports whether a spacer
// paragraph should be emitted for it.
func (c *Coordinator) Next(kind mdtoken.Kind) bool {
	spacer := false
	if c.started && c.last != kind {
		if kind == mdtoken.KindSpace {
			c.breaks++
			spacer = c.breaks <= 1
		} else {
			c.breaks = 0
		}
	}
	if kind != mdtoken.KindSpace {
		c.breaks = 0
	}
	c.last = kind
	c.started = true
	return spacer
}
