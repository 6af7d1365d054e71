// Package pattern is the closed catalog of polar sub-code patterns.
//
// A pattern describes how the subtree below a node is decoded. Terminal
// patterns decode their whole subtree with one fused kernel; the others name
// the kernels that move LLRs down to the children (f, g) and bits back up
// (h). Which pattern a node gets is decided once by the tree specializer from
// the scores the catalog's rules return.
package pattern

import (
	"fmt"
	"strings"

	"github.com/Observe-l/polarsc/polar/kernel"
)

// Tag identifies a pattern variant.
type Tag uint8

const (
	// None marks a node that has not been specialized yet.
	None Tag = iota
	Standard
	Rate0Left
	RepLeft
	Rate0
	Rate1
	Rep
	Spc
	numTags
)

// NumTags is the size of tables indexed by Tag.
const NumTags = int(numTags)

// Descriptor holds everything the decoder and the exporters need to know
// about a pattern.
type Descriptor struct {
	Name      string
	Short     string
	FillColor string
	FontColor string
	// F, G and H are the kernel slots. A terminal pattern puts its fused
	// decode in H and leaves F and G empty.
	F, G, H  kernel.Name
	Terminal bool
}

var descriptors = [numTags]Descriptor{
	None:      {Name: "None", Short: "?", FillColor: "#ff0000", FontColor: "#ffffff"},
	Standard:  {Name: "Standard", Short: "s", FillColor: "#ffffff", FontColor: "#000000", F: kernel.KF, G: kernel.KG, H: kernel.KXO},
	Rate0Left: {Name: "Rate 0 left", Short: "r0l", FillColor: "#d7d7d7", FontColor: "#000000", F: kernel.KF, G: kernel.KG0, H: kernel.KXO0},
	RepLeft:   {Name: "Rep left", Short: "rl", FillColor: "#8e726f", FontColor: "#ffffff", F: kernel.KF, G: kernel.KGR, H: kernel.KXO},
	Rate0:     {Name: "Rate 0", Short: "r0", FillColor: "#f3f3f3", FontColor: "#000000", H: kernel.KH0, Terminal: true},
	Rate1:     {Name: "Rate 1", Short: "r1", FillColor: "#000000", FontColor: "#ffffff", H: kernel.KH, Terminal: true},
	Rep:       {Name: "Rep", Short: "re", FillColor: "#a63f37", FontColor: "#ffffff", H: kernel.KRep, Terminal: true},
	Spc:       {Name: "SPC", Short: "spc", FillColor: "#2a7ab0", FontColor: "#ffffff", H: kernel.KSpc, Terminal: true},
}

// Lookup returns the descriptor of t.
func Lookup(t Tag) Descriptor {
	if t >= numTags {
		panic(fmt.Sprintf("pattern: unknown tag %d", uint8(t)))
	}
	return descriptors[t]
}

func (t Tag) String() string {
	if t >= numTags {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return descriptors[t].Name
}

// Short is the compact name used in exports.
func (t Tag) Short() string { return Lookup(t).Short }

// Terminal reports whether decoding stops at a node with this pattern.
func (t Tag) Terminal() bool { return Lookup(t).Terminal }

// Slots returns the f, g and h kernel names.
func (t Tag) Slots() (f, g, h kernel.Name) {
	d := Lookup(t)
	return d.F, d.G, d.H
}

// ParseTag accepts either the full or the short name of a pattern.
func ParseTag(s string) (Tag, error) {
	for t := Standard; t < numTags; t++ {
		if strings.EqualFold(s, descriptors[t].Name) || s == descriptors[t].Short {
			return t, nil
		}
	}
	return None, fmt.Errorf("pattern: unknown tag %q", s)
}

// All returns every assignable tag in declaration order.
func All() []Tag {
	out := make([]Tag, 0, numTags-1)
	for t := Standard; t < numTags; t++ {
		out = append(out, t)
	}
	return out
}
