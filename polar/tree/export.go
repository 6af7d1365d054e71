package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/francoispqt/gojay"

	"github.com/Observe-l/polarsc/polar/pattern"
)

// WriteDot renders the decoder-visible part of the tree as a Graphviz
// digraph, coloured by pattern.
func (t *Tree) WriteDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph polar {\n")
	b.WriteString("\tnode [shape=box, style=filled];\n")
	t.Walk(func(i int, n Node) {
		d := pattern.Lookup(n.Pattern)
		fmt.Fprintf(&b, "\tn%d [label=\"%s\\nN=%d\", fillcolor=%q, fontcolor=%q];\n", i, d.Short, n.N, d.FillColor, d.FontColor)
		if n.Parent >= 0 {
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", n.Parent, i)
		}
	})
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (t *Tree) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("n", t.N())
	enc.IntKey("k", t.K())
	enc.IntKey("root", t.root)
	enc.BoolKey("specialized", t.specialized)
	enc.ArrayKey("nodes", nodeList(t.nodes))
}

// IsNil implements gojay.MarshalerJSONObject.
func (t *Tree) IsNil() bool { return t == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject. n and k are
// derived from the nodes and ignored on input.
func (t *Tree) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "root":
		return dec.Int(&t.root)
	case "specialized":
		return dec.Bool(&t.specialized)
	case "nodes":
		var l nodeList
		if err := dec.Array(&l); err != nil {
			return err
		}
		t.nodes = l
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (t *Tree) NKeys() int { return 0 }

// WriteJSON streams the annotated tree to w.
func (t *Tree) WriteJSON(w io.Writer) error {
	enc := gojay.BorrowEncoder(w)
	defer enc.Release()
	if err := enc.EncodeObject(t); err != nil {
		return fmt.Errorf("tree: encode: %w", err)
	}
	return nil
}

// Unmarshal rebuilds a tree written by WriteJSON.
func Unmarshal(data []byte) (*Tree, error) {
	t := &Tree{}
	if err := gojay.UnmarshalJSONObject(data, t); err != nil {
		return nil, fmt.Errorf("tree: decode: %w", err)
	}
	for i, n := range t.nodes {
		if n.IsLeaf() && !n.Pattern.Terminal() {
			return nil, fmt.Errorf("tree: leaf %d has non-terminal pattern %s", i, n.Pattern)
		}
		if n.IsLeaf() && n.N == 1 && n.Pattern != pattern.Rate0 && n.Pattern != pattern.Rate1 {
			return nil, fmt.Errorf("tree: single-bit leaf %d cannot be %s", i, n.Pattern)
		}
		t.nodes[i].Height = log2(n.N)
	}
	if err := t.link(); err != nil {
		return nil, err
	}
	return t, nil
}

type nodeList []Node

func (l nodeList) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range l {
		enc.Object(&l[i])
	}
}

func (l nodeList) IsNil() bool { return l == nil }

func (l *nodeList) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var n Node
	if err := dec.Object(&n); err != nil {
		return err
	}
	*l = append(*l, n)
	return nil
}

func (n *Node) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("n", n.N)
	enc.IntKey("depth", n.Depth)
	enc.IntKey("offset", n.Offset)
	enc.IntKey("left", n.Left)
	enc.IntKey("right", n.Right)
	enc.IntKey("parent", n.Parent)
	enc.StringKey("pattern", n.Pattern.Short())
}

func (n *Node) IsNil() bool { return n == nil }

func (n *Node) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "n":
		return dec.Int(&n.N)
	case "left":
		return dec.Int(&n.Left)
	case "right":
		return dec.Int(&n.Right)
	case "parent":
		return dec.Int(&n.Parent)
	case "pattern":
		var s string
		if err := dec.String(&s); err != nil {
			return err
		}
		if s == pattern.None.Short() {
			n.Pattern = pattern.None
			return nil
		}
		tag, err := pattern.ParseTag(s)
		if err != nil {
			return err
		}
		n.Pattern = tag
	}
	return nil
}

func (n *Node) NKeys() int { return 0 }
