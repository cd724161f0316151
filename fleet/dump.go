package fleet

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Dump returns the fleet in its parenthesized debug form: each node
// is written as "(" left-subtree "id:height" right-subtree ")", and
// empty subtrees are written as nothing. For example, a three-node
// balanced tree looks like ((10:0)20:1(30:0)).
func (f *Fleet) Dump() string {
	var sb strings.Builder
	dumpvisit(&sb, f.root)
	return sb.String()
}

// DumpTo writes Dump's output to w.
func (f *Fleet) DumpTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	dumpvisit(bw, f.root)
	return bw.Flush()
}

type dumpWriter interface {
	WriteString(string) (int, error)
	WriteByte(byte) error
}

// write errors are sticky in bufio.Writer and impossible in
// strings.Builder, so they are only checked by DumpTo's Flush.
func dumpvisit(w dumpWriter, n *node) {
	if n == nil {
		return
	}

	_ = w.WriteByte('(')
	dumpvisit(w, n.Left)
	_, _ = w.WriteString(strconv.Itoa(n.Key))
	_ = w.WriteByte(':')
	_, _ = w.WriteString(strconv.Itoa(n.Height))
	dumpvisit(w, n.Right)
	_ = w.WriteByte(')')
}

// String returns a string representation of the tree.
// A complete tree with height 2 would look like this:
//	40000
//	├─L─20000
//	│   ├─L─10000
//	│   └─R─30000
//	└─R─60000
//	    ├─L─50000
//	    └─R─70000
func (f *Fleet) String() string {
	var sb strings.Builder

	if f.root == nil {
		return ""
	}

	printvisit(&sb, f.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit(
	sb *strings.Builder, n *node, prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(strconv.Itoa(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
