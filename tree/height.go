package tree

import (
	"golang.org/x/exp/constraints"
)

// HeightOf returns the cached height of n, or -1 if n is nil.
func HeightOf[T constraints.Ordered, X any](n *Node[T, X]) int {
	if n == nil {
		return -1
	}
	return n.Height
}

// Balance returns HeightOf(n.Left) - HeightOf(n.Right).
// Positive means left-heavy. Balance of nil is 0.
func (n *Node[T, X]) Balance() int {
	if n == nil {
		return 0
	}
	return HeightOf(n.Left) - HeightOf(n.Right)
}

// Imbalanced is true if n's balance factor is outside [-1, 1].
func (n *Node[T, X]) Imbalanced() bool {
	b := n.Balance()
	return b > 1 || b < -1
}

// UpdateHeights recomputes the cached height of every node under n,
// children before parents.
func UpdateHeights[T constraints.Ordered, X any](n *Node[T, X]) {
	if n == nil {
		return
	}

	UpdateHeights(n.Left)
	UpdateHeights(n.Right)

	l, r := HeightOf(n.Left), HeightOf(n.Right)
	if l > r {
		n.Height = l + 1
	} else {
		n.Height = r + 1
	}
}

// FirstImbalanced returns the first imbalanced node found by visiting
// n, then n.Left's subtree, then n.Right's subtree, or nil if every
// node is balanced. Cached heights must be up to date.
//
// This is not necessarily the lowest imbalanced node.
func FirstImbalanced[T constraints.Ordered, X any](n *Node[T, X]) *Node[T, X] {
	if n == nil {
		return nil
	}

	if n.Imbalanced() {
		return n
	}

	if bad := FirstImbalanced(n.Left); bad != nil {
		return bad
	}

	return FirstImbalanced(n.Right)
}

// Clone returns a deep copy of the subtree rooted at n with the same
// shape. Heights of the copy are recomputed rather than copied.
func Clone[T constraints.Ordered, X any](n *Node[T, X]) *Node[T, X] {
	c := cloneVisit(n)
	UpdateHeights(c)
	return c
}

func cloneVisit[T constraints.Ordered, X any](n *Node[T, X]) *Node[T, X] {
	if n == nil {
		return nil
	}

	c := NodeOf(n.Key, n.Extra)
	c.Left = cloneVisit(n.Left)
	c.Right = cloneVisit(n.Right)

	return c
}

// Teardown unlinks every node under n, children first, so that
// no node keeps a subtree alive after the tree drops its root.
func Teardown[T constraints.Ordered, X any](n *Node[T, X]) {
	if n == nil {
		return
	}

	Teardown(n.Left)
	Teardown(n.Right)
	n.Left, n.Right = nil, nil
}

// Count returns the number of nodes under n.
func Count[T constraints.Ordered, X any](n *Node[T, X]) int {
	if n == nil {
		return 0
	}
	return 1 + Count(n.Left) + Count(n.Right)
}
