// Package tree holds the binary recursion tree of a polar code and the
// specializer that assigns a pattern to each of its nodes.
//
// Nodes live in an arena and refer to each other by index; Parent and the
// sibling relation are plain indices, never owning references. A tree is
// built once, specialized once, and is read-only afterwards, so any number
// of decoders may share it.
package tree

import (
	"fmt"
	"math/bits"

	"github.com/Observe-l/polarsc/polar/pattern"
)

// Node is one sub-code of the polar code.
type Node struct {
	// N is the number of leaves below the node.
	N int
	// Depth is the distance from the root, Height is log2(N).
	Depth, Height int
	// Offset is the index of the node's first leaf.
	Offset int
	// Left, Right and Parent are arena indices; -1 means absent.
	Left, Right, Parent int
	Pattern             pattern.Tag
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return n.Left < 0 }

// Tree is an arena of nodes with a designated root.
type Tree struct {
	nodes       []Node
	root        int
	frozen      []bool
	specialized bool
}

// New builds the full binary tree for a frozen-bit mask; frozen[i] is true
// when bit i carries no information. Leaves are Rate0 or Rate1 according to
// the mask. len(frozen) must be a power of two.
func New(frozen []bool) *Tree {
	if len(frozen) == 0 || len(frozen)&(len(frozen)-1) != 0 {
		panic(fmt.Sprintf("tree: code length %d is not a power of two", len(frozen)))
	}
	b := NewBuilder()
	var build func(lo, n int) int
	build = func(lo, n int) int {
		if n == 1 {
			if frozen[lo] {
				return b.Leaf(1, pattern.Rate0)
			}
			return b.Leaf(1, pattern.Rate1)
		}
		l := build(lo, n/2)
		r := build(lo+n/2, n/2)
		return b.Join(l, r)
	}
	return b.Build(build(0, len(frozen)))
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int { return t.root }

// Node returns a copy of node i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len is the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// N is the code length.
func (t *Tree) N() int { return t.nodes[t.root].N }

// K is the number of information bits.
func (t *Tree) K() int {
	k := 0
	for _, f := range t.frozen {
		if !f {
			k++
		}
	}
	return k
}

// Frozen returns a copy of the frozen-bit mask the tree encodes.
func (t *Tree) Frozen() []bool {
	return append([]bool(nil), t.frozen...)
}

// Specialized reports whether Specialize has run.
func (t *Tree) Specialized() bool { return t.specialized }

// Parent returns the parent index of node i, or -1 for the root.
func (t *Tree) Parent(i int) int { return t.nodes[i].Parent }

// Sibling returns the other child of node i's parent, or -1 for the root.
func (t *Tree) Sibling(i int) int {
	p := t.nodes[i].Parent
	if p < 0 {
		return -1
	}
	if t.nodes[p].Left == i {
		return t.nodes[p].Right
	}
	return t.nodes[p].Left
}

// Walk visits the nodes the decoder visits, parents before children, left
// before right. Nodes below a terminal pattern are skipped.
func (t *Tree) Walk(fn func(i int, n Node)) {
	var walk func(i int)
	walk = func(i int) {
		n := t.nodes[i]
		fn(i, n)
		if n.IsLeaf() || n.Pattern.Terminal() {
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.root)
}

// Counts returns how many decoder-visible nodes carry each pattern.
func (t *Tree) Counts() map[pattern.Tag]int {
	out := make(map[pattern.Tag]int)
	t.Walk(func(_ int, n Node) { out[n.Pattern]++ })
	return out
}

// Specialize assigns a pattern to every internal node, children before
// parents. At each node the rule with the highest score wins and ties go to
// the rule declared first. It panics if it already ran or if no rule
// matches a node.
func (t *Tree) Specialize(c pattern.Catalog) {
	if t.specialized {
		panic("tree: already specialized")
	}
	rules := c.Rules()
	var visit func(i int)
	visit = func(i int) {
		n := &t.nodes[i]
		if n.IsLeaf() {
			return
		}
		visit(n.Left)
		visit(n.Right)
		left, right := t.nodes[n.Left].Pattern, t.nodes[n.Right].Pattern
		best, score := pattern.None, 0
		for _, r := range rules {
			if s := r.Match(n.Height, left, right); s > score {
				best, score = r.Tag, s
			}
		}
		if score == 0 {
			panic(fmt.Sprintf("tree: catalog %q has no rule for node %d (N=%d, children %s/%s)",
				c, i, n.N, left, right))
		}
		if n.Pattern != pattern.None {
			panic(fmt.Sprintf("tree: node %d specialized twice", i))
		}
		n.Pattern = best
	}
	visit(t.root)
	t.specialized = true
}

func log2(n int) int { return bits.TrailingZeros(uint(n)) }
