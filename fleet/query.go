package fleet

import (
	"context"

	"go.lepak.sg/fleet/chops"
	"go.lepak.sg/fleet/tree"
	"go.lepak.sg/fleet/tree/iterator"
)

// Contains reports whether a ship with the given ID is present.
// Unlike Insert, it never reshapes a Splay fleet.
func (f *Fleet) Contains(id int) bool {
	n, _ := f.search(id)
	return n != nil
}

// Find returns the ship with the given ID.
func (f *Fleet) Find(id int) (Ship, bool) {
	n, _ := f.search(id)
	if n == nil {
		return Ship{}, false
	}
	return shipOf(n), true
}

// Root returns the ship at the root of the tree.
// Under Splay, this is the most recently inserted ship.
func (f *Fleet) Root() (Ship, bool) {
	if f.root == nil {
		return Ship{}, false
	}
	return shipOf(f.root), true
}

func (f *Fleet) Len() int {
	return tree.Count(f.root)
}

func (f *Fleet) Empty() bool {
	return f.root == nil
}

// Height returns the height of the tree, or -1 if it is empty.
func (f *Fleet) Height() int {
	return tree.HeightOf(f.root)
}

// InOrder applies fn to each ship in ascending ID order.
// If fn returns false, the iteration is stopped early.
func (f *Fleet) InOrder(fn func(s Ship) bool) {
	visitInOrder(f.root, fn)
}

func visitInOrder(n *node, fn func(s Ship) bool) bool {
	if n == nil {
		return true
	}

	return visitInOrder(n.Left, fn) &&
		fn(shipOf(n)) &&
		visitInOrder(n.Right, fn)
}

// PreOrder applies fn to each ship, visiting a node before its
// left subtree and the left subtree before the right one.
// If fn returns false, the iteration is stopped early.
func (f *Fleet) PreOrder(fn func(s Ship) bool) {
	i := iterator.NewPreOrder(f.root, f.Height())
	for i.Next() {
		if !fn(shipOf(i.Node())) {
			return
		}
	}
}

// Ships returns every ship in ascending ID order.
func (f *Fleet) Ships() []Ship {
	out := make([]Ship, 0, f.Len())
	f.InOrder(func(s Ship) bool {
		out = append(out, s)
		return true
	})
	return out
}

// IDs returns every ship ID in ascending order.
func (f *Fleet) IDs() []int {
	var out []int
	f.InOrder(func(s Ship) bool {
		out = append(out, s.ID)
		return true
	})
	return out
}

var _ iterator.Iterator[Ship] = (*shipIterator)(nil)

type nodeIterator interface {
	Next() bool
	Node() *node
}

type shipIterator struct {
	nodeIterator
}

func (i shipIterator) Item() Ship {
	return shipOf(i.Node())
}

// Iterator returns an iterator yielding ships in ascending ID order.
// The fleet must not be modified while the iterator is in use.
func (f *Fleet) Iterator() iterator.Iterator[Ship] {
	return shipIterator{iterator.NewInOrder(f.root, f.Height())}
}

// ReverseIterator returns an iterator yielding ships in descending
// ID order.
func (f *Fleet) ReverseIterator() iterator.Iterator[Ship] {
	return shipIterator{iterator.NewInOrderReverse(f.root, f.Height())}
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := f.InOrderCoroutine(ctx)
//	defer co.Stop()
//	for s := range co.Items() {
//		... do stuff with s ...
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop is called, ctx is done or the iteration is finished.
// The fleet must not be modified until then.
func (f *Fleet) InOrderCoroutine(ctx context.Context) chops.CoIterator[Ship] {
	return chops.CoIterate[Ship](ctx, f.Iterator())
}
