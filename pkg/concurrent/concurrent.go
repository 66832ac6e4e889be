package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map applies mapFn to every element of in using at most workers goroutines
// and returns the results in input order. The first error cancels the
// context handed to the remaining calls and is returned. A non-positive
// workers value means GOMAXPROCS.
func Map[T any, R any](ctx context.Context, in []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]R, len(in))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for idx, val := range in {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := mapFn(gctx, val)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Each runs action for every element with at most workers goroutines and
// returns the first error encountered.
func Each[T any](ctx context.Context, in []T, workers int, action func(context.Context, T) error) error {
	_, err := Map(ctx, in, workers, func(ctx context.Context, v T) (struct{}, error) {
		return struct{}{}, action(ctx, v)
	})
	return err
}
