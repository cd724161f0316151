// Package tree holds the node type and the structural operations
// (rotations, height bookkeeping, invariant checks) shared by the
// tree implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node without a parent pointer.
// A Node exclusively owns its Left and Right subtrees: a subtree is
// only ever reachable from one place, and rotations move it rather
// than copy it.
//
// Height caches the height of the subtree rooted at the Node.
// A leaf has height 0, and the empty subtree has height -1.
// Nothing keeps Height fresh automatically; see UpdateHeights.
type Node[T constraints.Ordered, X any] struct {
	Key         T
	Extra       X
	Height      int
	Left, Right *Node[T, X]
}

// NodeOf returns a new leaf Node.
func NodeOf[T constraints.Ordered, X any](k T, x X) *Node[T, X] {
	return &Node[T, X]{
		Key:   k,
		Extra: x,
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Child returns the child of n on the side that k would descend to.
// It panics if k is equal to n.Key.
func (n *Node[T, X]) Child(k T) *Node[T, X] {
	switch Compare(k, n.Key) {
	case Less:
		return n.Left
	case Greater:
		return n.Right
	default:
		panic("no child for own key")
	}
}

// IsLeaf is true if n has no children.
func (n *Node[T, X]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Replace makes parent point at to instead of from.
// If parent is nil, to is returned as the new root; otherwise
// root is returned unchanged. from must be a child of parent.
func Replace[T constraints.Ordered, X any](root, parent, from, to *Node[T, X]) *Node[T, X] {
	if parent == nil {
		return to
	}

	switch from {
	case parent.Left:
		parent.Left = to
	case parent.Right:
		parent.Right = to
	default:
		panic("impossible")
	}

	return root
}
