package iterator

import (
	"go.lepak.sg/fleet/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int, any])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//	i := iterator.NewInOrder(root, height)
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T constraints.Ordered, X any] struct {
	root    *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
	reverse bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2): pop the frame
// and descend the left spine of its right child.
// Reverse iteration is the same with left and right flipped.

// NewInOrder returns an iterator yielding keys from smallest to
// largest. If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrder[T constraints.Ordered, X any](
	root *tree.Node[T, X], heightHint int) *InOrder[T, X] {
	return newInOrder(root, heightHint, false)
}

// NewInOrderReverse returns an iterator yielding keys from largest
// to smallest.
func NewInOrderReverse[T constraints.Ordered, X any](
	root *tree.Node[T, X], heightHint int) *InOrder[T, X] {
	return newInOrder(root, heightHint, true)
}

func newInOrder[T constraints.Ordered, X any](
	root *tree.Node[T, X], heightHint int, reverse bool) *InOrder[T, X] {
	if heightHint < 0 {
		heightHint = 0
	}

	return &InOrder[T, X]{
		root:    root,
		stack:   make([]*tree.Node[T, X], 0, heightHint+1),
		reverse: reverse,
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrder[T, X]) Next() bool {
	if !i.started {
		i.started = true
		i.descend(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	if i.reverse {
		i.descend(pop.Left)
	} else {
		i.descend(pop.Right)
	}

	return len(i.stack) > 0
}

func (i *InOrder[T, X]) descend(n *tree.Node[T, X]) {
	for n != nil {
		i.stack = append(i.stack, n)
		if i.reverse {
			n = n.Right
		} else {
			n = n.Left
		}
	}
}

// Item returns the current key of the iterator.
func (i *InOrder[T, X]) Item() T {
	return i.Node().Key
}

// Node returns the current node of the iterator.
// Tree implementations use this to reach Extra; it must not be
// handed out to client code.
func (i *InOrder[T, X]) Node() *tree.Node[T, X] {
	return i.stack[len(i.stack)-1]
}
