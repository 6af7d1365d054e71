package tree

import (
	"fmt"

	"github.com/Observe-l/polarsc/polar/pattern"
)

// Builder assembles a tree bottom-up. Leaves may be larger than one bit
// when a test or a caller wants to start from already-known sub-codes.
type Builder struct {
	nodes []Node
}

func NewBuilder() *Builder { return &Builder{} }

// Leaf adds a terminal node of n bits decoded with tag and returns its
// index. Single-bit leaves must be Rate0 or Rate1.
func (b *Builder) Leaf(n int, tag pattern.Tag) int {
	if n < 1 || n&(n-1) != 0 {
		panic(fmt.Sprintf("tree: leaf size %d is not a power of two", n))
	}
	if !tag.Terminal() {
		panic(fmt.Sprintf("tree: leaf pattern %s is not terminal", tag))
	}
	if n == 1 && tag != pattern.Rate0 && tag != pattern.Rate1 {
		panic(fmt.Sprintf("tree: single-bit leaf cannot be %s", tag))
	}
	b.nodes = append(b.nodes, Node{N: n, Height: log2(n), Left: -1, Right: -1, Parent: -1, Pattern: tag})
	return len(b.nodes) - 1
}

// Join adds an unspecialized parent of two equally sized, parentless nodes.
func (b *Builder) Join(left, right int) int {
	l, r := &b.nodes[left], &b.nodes[right]
	if l.N != r.N {
		panic(fmt.Sprintf("tree: cannot join sizes %d and %d", l.N, r.N))
	}
	if l.Parent >= 0 || r.Parent >= 0 || left == right {
		panic("tree: node joined twice")
	}
	i := len(b.nodes)
	l.Parent, r.Parent = i, i
	b.nodes = append(b.nodes, Node{N: 2 * l.N, Height: l.Height + 1, Left: left, Right: right, Parent: -1})
	return i
}

// Build finishes the tree rooted at root. Every node added to the builder
// must be reachable from root.
func (b *Builder) Build(root int) *Tree {
	t := &Tree{nodes: b.nodes, root: root}
	b.nodes = nil
	if err := t.link(); err != nil {
		panic(err.Error())
	}
	return t
}

// link fills Depth, Offset and the frozen mask from the structure. It fails
// unless the arena is a single tree whose children each hold half of their
// parent.
func (t *Tree) link() error {
	if t.root < 0 || t.root >= len(t.nodes) {
		return fmt.Errorf("tree: root %d outside arena of %d nodes", t.root, len(t.nodes))
	}
	root := t.nodes[t.root]
	if root.Parent >= 0 {
		return fmt.Errorf("tree: root %d has a parent", t.root)
	}
	if root.N < 1 || root.N&(root.N-1) != 0 {
		return fmt.Errorf("tree: root size %d is not a power of two", root.N)
	}
	t.frozen = make([]bool, root.N)
	visited := make([]bool, len(t.nodes))
	seen := 0
	var visit func(i, n, depth, offset int) error
	visit = func(i, n, depth, offset int) error {
		if i < 0 || i >= len(t.nodes) {
			return fmt.Errorf("tree: child index %d outside arena of %d nodes", i, len(t.nodes))
		}
		if visited[i] {
			return fmt.Errorf("tree: node %d reached twice", i)
		}
		visited[i] = true
		node := &t.nodes[i]
		if node.N != n {
			return fmt.Errorf("tree: node %d has size %d, want %d", i, node.N, n)
		}
		node.Depth, node.Offset = depth, offset
		seen++
		if node.IsLeaf() {
			if node.Right >= 0 {
				return fmt.Errorf("tree: node %d has a right child only", i)
			}
			fillFrozen(t.frozen[offset:offset+n], node.Pattern)
			return nil
		}
		if n < 2 {
			return fmt.Errorf("tree: single-bit node %d has children", i)
		}
		if err := visit(node.Left, n/2, depth+1, offset); err != nil {
			return err
		}
		return visit(node.Right, n/2, depth+1, offset+n/2)
	}
	if err := visit(t.root, root.N, 0, 0); err != nil {
		return err
	}
	if seen != len(t.nodes) {
		return fmt.Errorf("tree: %d of %d nodes unreachable from root", len(t.nodes)-seen, len(t.nodes))
	}
	return nil
}

// fillFrozen writes the frozen positions a terminal sub-code implies.
func fillFrozen(dst []bool, tag pattern.Tag) {
	switch tag {
	case pattern.Rate0:
		for i := range dst {
			dst[i] = true
		}
	case pattern.Rep:
		for i := range dst {
			dst[i] = i < len(dst)-1
		}
	case pattern.Spc:
		for i := range dst {
			dst[i] = i == 0
		}
	}
}
