// Package settle runs independent operations concurrently and collects every
// outcome. Unlike errgroup, one branch failing never cancels the other; the
// caller always sees both results.
package settle

import (
	"context"
	"sync"
)

// Outcome holds one branch's result.
type Outcome[T any] struct {
	Value T
	Err   error
}

// OK reports whether the branch completed without error.
func (o Outcome[T]) OK() bool { return o.Err == nil }

// Two runs fa and fb concurrently and waits for both to finish.
func Two[A, B any](ctx context.Context, fa func(context.Context) (A, error), fb func(context.Context) (B, error)) (Outcome[A], Outcome[B]) {
	var (
		wg sync.WaitGroup
		oa Outcome[A]
		ob Outcome[B]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		oa.Value, oa.Err = fa(ctx)
	}()
	go func() {
		defer wg.Done()
		ob.Value, ob.Err = fb(ctx)
	}()
	wg.Wait()

	return oa, ob
}
