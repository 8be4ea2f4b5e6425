// Package taskgroup runs a batch of independent tasks in parallel with all-or-nothing semantics.
package taskgroup

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Task produces the result for the input at index i.
type Task[In, Out any] func(ctx context.Context, i int, in In) (Out, error)

// Run calls task for every input, at most limit at a time, and returns the results in input order.
// A limit below 1 selects runtime.NumCPU().
//
// The first error cancels the context handed to the remaining tasks and is returned once
// every started task has finished; no results are returned in that case.
func Run[In, Out any](ctx context.Context, limit int, inputs []In, task Task[In, Out]) ([]Out, error) {
	if limit < 1 {
		limit = runtime.NumCPU()
	}

	results := make([]Out, len(inputs))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, in := range inputs {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			out, err := task(groupCtx, i, in)
			if err != nil {
				return err
			}
			// Each task owns its slot.
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
