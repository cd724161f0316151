package fleet

import (
	"go.lepak.sg/fleet/tree"
)

// rebalance rotates until no node is imbalanced. Each pass fixes the
// first imbalanced node in pre-order from the root (the node itself,
// then its left subtree, then its right subtree), which is not always
// the lowest one. Cached heights must be up to date on entry.
//
// Left-heavy node n with left child l:
//	left-left:  n.RotateRight()
//	left-right: n.Left = l.RotateLeft(), then n.RotateRight()
// Right-heavy is the mirror image.
func (f *Fleet) rebalance() {
	for {
		n := tree.FirstImbalanced(f.root)
		if n == nil {
			return
		}

		p := f.parentOf(n)

		var top *node
		switch b := n.Balance(); {
		case b > 1:
			if l := n.Left; l.Right != nil && l.Right.Height > tree.HeightOf(l.Left) {
				n.Left = l.RotateLeft()
			}
			top = n.RotateRight()
		case b < -1:
			if r := n.Right; r.Left != nil && r.Left.Height > tree.HeightOf(r.Right) {
				n.Right = r.RotateRight()
			}
			top = n.RotateLeft()
		default:
			panic("unreachable")
		}

		f.root = tree.Replace(f.root, p, n, top)
		tree.UpdateHeights(f.root)
	}
}
