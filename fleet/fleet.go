// Package fleet is an ordered registry of ships keyed by ship ID.
//
// A Fleet is a binary search tree that runs under one of three
// disciplines, chosen with New and changeable with SetType:
//   - BST: plain unbalanced binary search tree
//   - AVL: height-balanced, rebalanced after every insert and remove
//   - Splay: every inserted ship is splayed to the root; removal is
//     not supported
// A Fleet with discipline None holds nothing and accepts nothing.
//
// Requests that cannot be carried out (IDs outside [MinID, MaxID],
// duplicate IDs, removal under Splay, anything under None) leave the
// Fleet unchanged. The bool results of Insert and Remove report
// whether anything happened; ignoring them is fine.
//
// A Fleet is not safe for concurrent use.
package fleet

import (
	"fmt"
	"strings"

	"go.lepak.sg/fleet/tree"
)

type node = tree.Node[int, shipData]

// TreeType is the structural discipline of a Fleet.
type TreeType int

const (
	None TreeType = iota
	BST
	AVL
	Splay
)

func (k TreeType) Valid() bool {
	return k >= None && k <= Splay
}

func (k TreeType) String() string {
	switch k {
	case None:
		return "NONE"
	case BST:
		return "BST"
	case AVL:
		return "AVL"
	case Splay:
		return "SPLAY"
	default:
		return fmt.Sprintf("TreeType(%d)", int(k))
	}
}

// ParseTreeType is the inverse of TreeType.String.
// It ignores case.
func ParseTreeType(s string) (TreeType, error) {
	for k := None; k <= Splay; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown tree type %q", s)
}

// Fleet is an ordered set of ships. The zero Fleet is empty and has
// discipline None; it may be used immediately, but accepts nothing
// until SetType is called. Use Clone or Assign to copy a Fleet.
//
// Invariants:
//  - At any node N, all IDs in N's left subtree are less than N's ID,
//    and all IDs in N's right subtree are greater.
//  - Every node's cached height is 1 + the larger of its children's
//    heights, counting a missing child as -1.
//  - Under AVL, no node's children differ in height by more than 1.
//  - Every ID is unique and in [MinID, MaxID].
type Fleet struct {
	root *node
	kind TreeType
}

// New returns an empty Fleet with the given discipline.
// An invalid TreeType is treated as None.
func New(kind TreeType) *Fleet {
	if !kind.Valid() {
		kind = None
	}
	return &Fleet{kind: kind}
}

// Type returns the current discipline.
func (f *Fleet) Type() TreeType {
	return f.kind
}

// SetType changes the discipline.
// Switching to None drops every ship. Switching to AVL rebalances
// the whole tree. Switching to BST or Splay leaves the shape as it
// is. Invalid values are ignored.
func (f *Fleet) SetType(kind TreeType) {
	switch kind {
	case None:
		f.kind = kind
		f.Clear()
	case AVL:
		f.kind = kind
		f.rebalance()
	case BST, Splay:
		f.kind = kind
	}
}

// Insert copies s into the fleet and returns true.
// It returns false without changing anything if the discipline is
// None, s.ID is out of range or a ship with s.ID is already present.
func (f *Fleet) Insert(s Ship) bool {
	if f.kind == None || !InRange(s.ID) {
		return false
	}

	n, p := f.root, (*node)(nil)
	var cmp tree.Order

	for n != nil {
		cmp = tree.Compare(s.ID, n.Key)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	newnode := tree.NodeOf(s.ID, s.data())

	if p == nil {
		f.root = newnode
	} else {
		switch cmp {
		case tree.Less:
			if p.Left != nil {
				panic("impossible")
			}
			p.Left = newnode
		case tree.Greater:
			if p.Right != nil {
				panic("impossible")
			}
			p.Right = newnode
		default:
			panic("unreachable")
		}
	}

	tree.UpdateHeights(f.root)

	switch f.kind {
	case BST:
	case AVL:
		f.rebalance()
	case Splay:
		f.splay(newnode)
	default:
		panic("unreachable")
	}

	return true
}

// Remove deletes the ship with the given ID and returns true.
// It returns false without changing anything if the fleet is empty,
// the discipline is None or Splay, id is out of range or no such
// ship is present.
func (f *Fleet) Remove(id int) bool {
	if f.root == nil || !InRange(id) {
		return false
	}

	switch f.kind {
	case BST, AVL:
	case None, Splay:
		return false
	default:
		panic("unreachable")
	}

	n, p := f.search(id)
	if n == nil {
		return false
	}

	var repl *node
	switch {
	case n.IsLeaf():
	case n.Left == nil:
		repl = n.Right
	case n.Right == nil:
		repl = n.Left
	default:
		repl = detachReplacement(n)
	}

	f.root = tree.Replace(f.root, p, n, repl)

	// n is gone; it must not keep the surviving subtrees reachable
	n.Left, n.Right = nil, nil

	tree.UpdateHeights(f.root)
	if f.kind == AVL {
		f.rebalance()
	}

	return true
}

// detachReplacement unhooks the node that will take n's place when
// n has two children, and hangs n's subtrees off it.
// The in-order predecessor is used when n's left subtree is shorter
// than its right, otherwise the in-order successor.
func detachReplacement(n *node) *node {
	if tree.HeightOf(n.Left) < tree.HeightOf(n.Right) {
		rp, r := n, n.Left
		for r.Right != nil {
			rp, r = r, r.Right
		}

		if rp != n {
			rp.Right = r.Left
			r.Left = n.Left
		}
		r.Right = n.Right

		return r
	}

	rp, r := n, n.Right
	for r.Left != nil {
		rp, r = r, r.Left
	}

	if rp != n {
		rp.Left = r.Right
		r.Right = n.Right
	}
	r.Left = n.Left

	return r
}

// search returns the node with key id and its parent.
// n is nil if there is no such node.
func (f *Fleet) search(id int) (n, parent *node) {
	n = f.root
	for n != nil {
		switch tree.Compare(id, n.Key) {
		case tree.Less:
			n, parent = n.Left, n
		case tree.Greater:
			n, parent = n.Right, n
		case tree.Equal:
			return n, parent
		default:
			panic("unreachable")
		}
	}

	return nil, nil
}

// parentOf returns the parent of target, or nil if target is the root.
// target must be in the fleet.
func (f *Fleet) parentOf(target *node) *node {
	var p *node
	n := f.root
	for n != target {
		if n == nil {
			panic("node not in fleet")
		}
		p, n = n, n.Child(target.Key)
	}

	return p
}

// Clear drops every ship. The discipline is kept.
func (f *Fleet) Clear() {
	tree.Teardown(f.root)
	f.root = nil
}

// Clone returns a deep copy of f with the same discipline and the
// same shape. The copy shares nothing with f.
func (f *Fleet) Clone() *Fleet {
	return &Fleet{
		root: tree.Clone(f.root),
		kind: f.kind,
	}
}

// Assign replaces the contents and discipline of f with a deep copy
// of src. Assigning a Fleet to itself does nothing.
func (f *Fleet) Assign(src *Fleet) {
	if f == src {
		return
	}

	f.Clear()
	f.kind = src.kind
	f.root = tree.Clone(src.root)
}
