package md2docx

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Worker count bounds for batch conversion.
const (
	// MinWorkers ensures at least one conversion runs.
	MinWorkers = 1

	// MaxWorkers caps concurrent conversions; each holds a whole document
	// tree and its serialized package in memory.
	MaxWorkers = 16
)

// BatchResult is the outcome of one document in a batch.
type BatchResult struct {
	Index    int
	Result   *ConvertResult
	Err      error
	Duration time.Duration
}

// ConvertAll converts independent documents concurrently with at most
// workers conversions in flight (ResolveWorkers(workers) is applied).
// Results are returned in input order. A failed document does not stop the
// others; cancelling ctx marks the remaining documents with ctx.Err().
func (c *Converter) ConvertAll(ctx context.Context, inputs []Input, workers int) []BatchResult {
	results := make([]BatchResult, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	g := new(errgroup.Group)
	g.SetLimit(min(ResolveWorkers(workers), len(inputs)))
	for i, in := range inputs {
		results[i].Index = i
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			start := time.Now()
			res, err := c.Convert(ctx, in)
			results[i] = BatchResult{Index: i, Result: res, Err: err, Duration: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ResolveWorkers determines the batch concurrency.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return min(workers, MaxWorkers)
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0)
	return max(MinWorkers, min(n, MaxWorkers))
}
