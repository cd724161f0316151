// Package chops turns pull-style iterators into channels.
package chops

import (
	"context"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  context.CancelFunc
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iterator is exhausted or
// the iteration is stopped.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It may be called any number of times,
// from any goroutine. At most one more item may be received from
// Items after Stop returns.
func (c CoIterator[T]) Stop() {
	c.stop()
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	var x SomeDataStructure[T]
//	// x.Iterator() returns something that implements Iterator[T]
//	co := CoIterate[T](ctx, x.Iterator())
//	defer co.Stop()
//	for i := range co.Items() {
//		... do stuff with i ...
//		if i meets some stopping condition {
//			break
//		}
//	}
//
// Canceling ctx has the same effect as calling Stop.
//
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
//
// Note: CoIterate starts a goroutine, which exits when either
// the iteration is stopped or finished. Nothing may mutate the
// underlying data structure until then.
func CoIterate[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan T)
	co := CoIterator[T]{
		items: out,
		stop:  cancel,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(ctx context.Context, out chan<- T, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-ctx.Done():
				return
			}
		}
	}(ctx, out, iterator)

	return co
}
