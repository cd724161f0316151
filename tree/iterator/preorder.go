package iterator

import (
	"go.lepak.sg/fleet/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*PreOrder[int, any])(nil)

// PreOrder yields each node before its left subtree, and the
// left subtree before the right subtree.
// The result of mutating the tree while iterating over it is undefined.
type PreOrder[T constraints.Ordered, X any] struct {
	root    *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
}

func NewPreOrder[T constraints.Ordered, X any](
	root *tree.Node[T, X], heightHint int) *PreOrder[T, X] {
	if heightHint < 0 {
		heightHint = 0
	}

	return &PreOrder[T, X]{
		root:  root,
		stack: make([]*tree.Node[T, X], 0, heightHint+2),
	}
}

func (i *PreOrder[T, X]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.stack = append(i.stack, i.root)
		}
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// left goes on top so it comes out first
	if pop.Right != nil {
		i.stack = append(i.stack, pop.Right)
	}
	if pop.Left != nil {
		i.stack = append(i.stack, pop.Left)
	}

	return len(i.stack) > 0
}

func (i *PreOrder[T, X]) Item() T {
	return i.Node().Key
}

func (i *PreOrder[T, X]) Node() *tree.Node[T, X] {
	return i.stack[len(i.stack)-1]
}
