package rope

import (
	"fmt"
	"unicode/utf8"
)

// We use 2 kinds of nodes: inner nodes and leaf nodes, sharing one struct type.
// Inner nodes always have exactly two children, leaf nodes have none.
// A leaf references a window [offset, offset+length) of a text fragment.
//
// One design decision is to not include a reference to the parent node. This is
// necessary to be able to re-use subtrees and to have a persistent (immutable)
// data structure without having to clone the complete tree. Tree operations
// create new nodes along the path they operate on, but leave unchanged parts
// of the tree in place and rather reference them.
//
// Some invariants hold:
//
//   - The length of an inner node is the sum of the lengths of its children.
//   - The height of a leaf is 1, the height of an inner node is 1 plus the
//     maximum height of its children.
//   - There are no leaves of length 0 and no inner nodes with a missing child.
//     The empty rope is represented by a nil root.
//   - Nodes are never modified after construction.
type node struct {
	left, right *node  // children of inner nodes
	frag        string // text fragment of a leaf
	offset      int    // start of a leaf's window into frag
	length      int    // number of bytes in this subtree
	height      int
}

func makeLeaf(frag string, offset, length int) *node {
	assert(offset >= 0 && length > 0 && offset+length <= len(frag),
		"leaf window exceeds fragment")
	return &node{
		frag:   frag,
		offset: offset,
		length: length,
		height: 1,
	}
}

// concat returns a node representing the concatenation of left and right.
// Empty operands are identities and are never wrapped by an inner node.
func concat(left, right *node) *node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return &node{
		left:   left,
		right:  right,
		length: left.length + right.length,
		height: max(left.height, right.height) + 1,
	}
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// text returns the window of a leaf.
func (n *node) text() string {
	return n.frag[n.offset : n.offset+n.length]
}

// split splits the subtree at n into a prefix of length i and the remaining
// suffix. i is clamped to [0, n.length]. Only the child containing position i is
// descended into; the other child is re-used as a whole.
func split(n *node, i int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if i <= 0 {
		return nil, n
	}
	if i >= n.length {
		return n, nil
	}
	if n.isLeaf() { // both halves share the fragment
		return makeLeaf(n.frag, n.offset, i), makeLeaf(n.frag, n.offset+i, n.length-i)
	}
	if i <= n.left.length {
		ll, lr := split(n.left, i)
		return ll, concat(lr, n.right)
	}
	rl, rr := split(n.right, i-n.left.length)
	return concat(n.left, rl), rr
}

// locate finds the leaf containing position i, which must be in [0, n.length).
// It returns the leaf and the position relative to the leaf's window.
func (n *node) locate(i int) (*node, int) {
	for !n.isLeaf() {
		if i < n.left.length {
			n = n.left
		} else {
			i -= n.left.length
			n = n.right
		}
	}
	return n, i
}

// eachLeaf calls f for every leaf of the subtree at n, in logical order, together
// with the leaf's starting position. pos is the position of n. Iteration stops
// as soon as f returns false; eachLeaf then returns false as well.
func (n *node) eachLeaf(pos int, f func(leaf *node, pos int) bool) bool {
	if n.isLeaf() {
		return f(n, pos)
	}
	if !n.left.eachLeaf(pos, f) {
		return false
	}
	return n.right.eachLeaf(pos+n.left.length, f)
}

// traverse walks the subtree at n in pre-order.
func traverse(n *node, pos, depth int, f func(n *node, pos, depth int) error) error {
	if err := f(n, pos, depth); err != nil {
		return err
	}
	if n.isLeaf() {
		return nil
	}
	if err := traverse(n.left, pos, depth+1, f); err != nil {
		return err
	}
	return traverse(n.right, pos+n.left.length, depth+1, f)
}

func (n *node) String() string {
	if n.isLeaf() {
		return n.text()
	}
	return fmt.Sprintf("<inner %d|%d>", n.length, n.height)
}

// --- Debugging helper ------------------------------------------------------

func dump(n *node) {
	if n == nil {
		tracer().Debugf("<empty>")
		return
	}
	_ = traverse(n, 0, 0, func(n *node, pos int, depth int) error {
		if n.isLeaf() {
			tracer().Debugf("%sL = %q @%d", indent(depth), strstart(n.text()), pos)
			return nil
		}
		tracer().Debugf("%sN = %v", indent(depth), n)
		return nil
	})
}

func indent(d int) string {
	ind := ""
	for d > 0 {
		ind = ind + "  "
		d--
	}
	return ind
}

func strstart(s string) string {
	if len(s) > 8 {
		i := 7
		for i > 0 && !utf8.RuneStart(s[i]) {
			i--
		}
		return s[:i] + "…"
	}
	return s
}
