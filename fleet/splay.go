package fleet

import (
	"go.lepak.sg/fleet/tree"
)

// splay moves target to the root, two levels at a time where it can.
// With x = target, p = its parent and g = its grandparent:
//
//	zig (p is the root):           rotate p so x comes up
//	zig-zig (x, p both left):      rotate g right, then p right
//	zig-zag (p left, x right):     rotate p left, then g right
//	zag-zag (x, p both right):     rotate g left, then p left
//	zag-zig (p right, x left):     rotate p right, then g left
//
// After each double step, g's old parent is pointed at x.
// Heights are recomputed once at the end.
func (f *Fleet) splay(target *node) {
	if target == nil {
		return
	}

	for f.root != target {
		var ggp, gp, p *node
		for n := f.root; n != target; n = n.Child(target.Key) {
			if n == nil {
				panic("node not in fleet")
			}
			ggp, gp, p = gp, p, n
		}

		if p == f.root {
			if target == p.Left {
				f.root = p.RotateRight()
			} else {
				f.root = p.RotateLeft()
			}
			continue
		}

		var top *node
		switch {
		case p == gp.Left && target == p.Left:
			top = gp.RotateRight().RotateRight()
		case p == gp.Left:
			gp.Left = p.RotateLeft()
			top = gp.RotateRight()
		case target == p.Right:
			top = gp.RotateLeft().RotateLeft()
		default:
			gp.Right = p.RotateRight()
			top = gp.RotateLeft()
		}

		f.root = tree.Replace(f.root, ggp, gp, top)
	}

	tree.UpdateHeights(f.root)
}
