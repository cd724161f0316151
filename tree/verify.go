package tree

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrOrder   = errors.New("search order violated")
	ErrHeight  = errors.New("cached height is stale")
	ErrBalance = errors.New("node is imbalanced")
)

// CheckOrder verifies that every key under n lies strictly between
// lo and hi (when bounded) and that left < node < right holds
// everywhere. Strictness also rules out duplicate keys.
// Pass nil bounds for an unbounded check.
func CheckOrder[T constraints.Ordered, X any](n *Node[T, X], lo, hi *T) error {
	if n == nil {
		return nil
	}

	if lo != nil && n.Key <= *lo {
		return fmt.Errorf("%w: key %v not above %v", ErrOrder, n.Key, *lo)
	}

	if hi != nil && n.Key >= *hi {
		return fmt.Errorf("%w: key %v not below %v", ErrOrder, n.Key, *hi)
	}

	if err := CheckOrder(n.Left, lo, &n.Key); err != nil {
		return err
	}

	return CheckOrder(n.Right, &n.Key, hi)
}

// CheckHeights verifies that every cached height under n equals
// 1 + max(height(left), height(right)).
func CheckHeights[T constraints.Ordered, X any](n *Node[T, X]) error {
	if n == nil {
		return nil
	}

	if err := CheckHeights(n.Left); err != nil {
		return err
	}

	if err := CheckHeights(n.Right); err != nil {
		return err
	}

	want := HeightOf(n.Left)
	if r := HeightOf(n.Right); r > want {
		want = r
	}
	want++

	if n.Height != want {
		return fmt.Errorf("%w: key %v has height %d, want %d", ErrHeight, n.Key, n.Height, want)
	}

	return nil
}

// CheckBalanced verifies the AVL balance condition for every node
// under n. Cached heights must be up to date.
func CheckBalanced[T constraints.Ordered, X any](n *Node[T, X]) error {
	if bad := FirstImbalanced(n); bad != nil {
		return fmt.Errorf("%w: key %v has balance %d", ErrBalance, bad.Key, bad.Balance())
	}
	return nil
}

// SameShape is true if a and b have the same keys in the same
// left/right arrangement. Extra and Height are not compared.
func SameShape[T constraints.Ordered, X any](a, b *Node[T, X]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Key == b.Key && SameShape(a.Left, b.Left) && SameShape(a.Right, b.Right)
}
