package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"strings"
)

// Rope is an immutable string type built as a binary tree on top of
// text fragments.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty string.
//
// Methods that take or return positions use byte offsets.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings or byte arrays.
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Index         |   O(depth)      |   O(1)
//	Split         |   O(depth)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(1)          |   O(n)
//	Insert        |   O(depth)      |   O(n)
//	Delete        |   O(depth)      |   O(n)
//
// Ropes are never rebalanced, thus depth may grow up to the number of
// fragments for unfortunate editing sequences.
type Rope struct {
	root *node
}

// FromString creates a rope from a Go string. The rope consists of a single
// leaf referencing s; s is not copied.
func FromString(s string) Rope {
	if len(s) == 0 {
		return Rope{}
	}
	return Rope{root: makeLeaf(s, 0, len(s))}
}

// String returns the complete rope as a Go string. This may be an expensive operation,
// as it will allocate a buffer for all the bytes of the rope and collect all
// fragments to a single continuous string.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	if r.root.isLeaf() {
		return r.root.text()
	}
	var sb strings.Builder
	sb.Grow(r.root.length)
	r.root.eachLeaf(0, func(leaf *node, pos int) bool {
		sb.WriteString(leaf.text())
		return true
	})
	return sb.String()
}

// Len returns the rope length in bytes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.length
}

// IsVoid reports whether the rope has no bytes.
func (r Rope) IsVoid() bool {
	return r.root == nil
}

// Depth returns the height of the rope's tree. The empty rope has depth 0,
// a single leaf depth 1.
func (r Rope) Depth() int {
	if r.root == nil {
		return 0
	}
	return r.root.height
}

// CharAt returns the byte at position i.
// If i is negative or not less than r.Len(), ErrIndexOutOfRange is returned.
func (r Rope) CharAt(i int) (byte, error) {
	if i < 0 || i >= r.Len() {
		return 0, ErrIndexOutOfRange
	}
	leaf, j := r.root.locate(i)
	return leaf.frag[leaf.offset+j], nil
}

// FragmentCount returns the number of fragments this rope is internally split into.
// A fragment shared by different parts of the tree counts once per occurrence.
func (r Rope) FragmentCount() int {
	cnt := 0
	if r.root != nil {
		r.root.eachLeaf(0, func(*node, int) bool {
			cnt++
			return true
		})
	}
	return cnt
}

// EachFragment visits all text fragments in logical order.
//
// The callback receives each fragment's text and its starting byte offset. Iteration
// stops at the first callback error and returns that error to the caller.
func (r Rope) EachFragment(f func(string, int) error) error {
	if r.root == nil {
		return nil
	}
	var err error
	r.root.eachLeaf(0, func(leaf *node, pos int) bool {
		err = f(leaf.text(), pos)
		return err == nil
	})
	return err
}

// RangeFragment returns an iterator over all text fragments in logical order,
// together with their starting byte offsets.
func (r Rope) RangeFragment() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if r.root == nil {
			return
		}
		r.root.eachLeaf(0, func(leaf *node, pos int) bool {
			return yield(pos, leaf.text())
		})
	}
}

// Walk visits all nodes of the rope in pre-order, i.e., an inner node is
// visited before its children. The callback receives a node, its starting byte
// offset and its depth, with the root at depth 0. Iteration stops at the first
// callback error and returns that error to the caller.
//
// Walk is intended for debugging and inspection tools.
func (r Rope) Walk(f func(n Node, pos int, depth int) error) error {
	if r.root == nil {
		return nil
	}
	return traverse(r.root, 0, 0, func(n *node, pos, depth int) error {
		return f(Node{n: n}, pos, depth)
	})
}

// ---------------------------------------------------------------------------

// Node is a read-only view of a node of a rope's tree.
type Node struct {
	n *node
}

// IsLeaf reports whether the node holds a text fragment.
func (n Node) IsLeaf() bool {
	return n.n != nil && n.n.isLeaf()
}

// Len returns the number of bytes represented by the subtree starting at n.
func (n Node) Len() int {
	if n.n == nil {
		return 0
	}
	return n.n.length
}

// Height returns the height of the subtree starting at n.
func (n Node) Height() int {
	if n.n == nil {
		return 0
	}
	return n.n.height
}

// Text returns the text window of a leaf and "" for inner nodes.
func (n Node) Text() string {
	if !n.IsLeaf() {
		return ""
	}
	return n.n.text()
}

// Left returns the left child of an inner node.
func (n Node) Left() Node {
	if n.n == nil {
		return Node{}
	}
	return Node{n: n.n.left}
}

// Right returns the right child of an inner node.
func (n Node) Right() Node {
	if n.n == nil {
		return Node{}
	}
	return Node{n: n.n.right}
}

// Rope returns the rope rooted at n.
func (n Node) Rope() Rope {
	return Rope{root: n.n}
}

// Same reports whether n and m are the very same node. Nodes are shared
// between ropes, so this may be true for nodes of different ropes.
func (n Node) Same(m Node) bool {
	return n.n == m.n
}
