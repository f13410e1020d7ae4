package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/scene/pkg/sequence"
)

// Concurrent runs action for each element of the iterator in its own
// goroutine and waits for all of them. The first error cancels the context
// handed to the remaining actions and is returned.
func Concurrent[T any](ctx context.Context, i *sequence.Iterator[T], action func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for value := range i.Seq() {
		g.Go(func() error {
			return action(ctx, value)
		})
	}
	return g.Wait()
}

// Throttle is Concurrent with at most limit actions in flight.
func Throttle[T any](ctx context.Context, i *sequence.Iterator[T], limit int, action func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for value := range i.Seq() {
		g.Go(func() error {
			return action(ctx, value)
		})
	}
	return g.Wait()
}
