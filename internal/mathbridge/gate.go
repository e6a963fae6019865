package mathbridge

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Gate runs an initialization function once it first succeeds.
// Concurrent callers share a single in-flight attempt. A failed attempt is
// not remembered: the next caller starts a new one.
type Gate struct {
	init  func(context.Context) error
	ready atomic.Bool
	group singleflight.Group
}

// NewGate returns a Gate guarding init.
func NewGate(init func(context.Context) error) *Gate {
	return &Gate{init: init}
}

// Ready blocks until initialization has succeeded, the shared attempt
// failed, or ctx is done.
func (g *Gate) Ready(ctx context.Context) error {
	if g.ready.Load() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ch := g.group.DoChan("init", func() (any, error) {
		if g.ready.Load() {
			return nil, nil
		}
		// The attempt outlives a cancelled waiter so other waiters still
		// get its result.
		if err := g.init(context.WithoutCancel(ctx)); err != nil {
			return nil, err
		}
		g.ready.Store(true)
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsReady reports whether initialization has succeeded.
func (g *Gate) IsReady() bool {
	return g.ready.Load()
}
