package fleet

import (
	"errors"
	"fmt"

	"go.lepak.sg/fleet/tree"
)

var ErrRange = errors.New("ship ID out of range")

// Verify checks every Fleet invariant and returns the first
// violation found, or nil. It walks the whole tree, so it is meant
// for tests and diagnostics.
func (f *Fleet) Verify() error {
	// exclusive bounds
	lo, hi := MinID-1, MaxID+1
	if err := tree.CheckOrder(f.root, &lo, &hi); err != nil {
		if errors.Is(err, tree.ErrOrder) && !f.inRange() {
			return fmt.Errorf("%w: %v", ErrRange, err)
		}
		return err
	}

	if err := tree.CheckHeights(f.root); err != nil {
		return err
	}

	if f.kind == AVL {
		if err := tree.CheckBalanced(f.root); err != nil {
			return err
		}
	}

	return nil
}

// inRange reports whether the smallest and largest IDs are valid.
func (f *Fleet) inRange() bool {
	if f.root == nil {
		return true
	}

	lo, hi := f.root, f.root
	for lo.Left != nil {
		lo = lo.Left
	}
	for hi.Right != nil {
		hi = hi.Right
	}

	return InRange(lo.Key) && InRange(hi.Key)
}
