// Command polargen writes the unrolled kernel variants of package kernel.
//
//	go run ./cmd/polargen -o polar/kernel/z_intra.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/imports"
)

// sizes are the element counts that get an unrolled body.
var sizes = []int{1, 2, 4, 8, 16}

type kernelGen struct {
	name   string
	family string // Combine, Propagate, Decide, Merge
	tag    string // kernel.Name constant
	emit   func(b *bytes.Buffer, n int)
}

var kernels = []kernelGen{
	{name: "f", family: "Combine", tag: "KF", emit: emitF},
	{name: "g0", family: "Combine", tag: "KG0", emit: emitG0},
	{name: "g", family: "Propagate", tag: "KG", emit: emitG},
	{name: "gr", family: "Propagate", tag: "KGR", emit: emitGR},
	{name: "h", family: "Decide", tag: "KH", emit: emitH},
	{name: "rep", family: "Decide", tag: "KRep", emit: emitRep},
	{name: "spc", family: "Decide", tag: "KSpc", emit: emitSpc},
	{name: "xo", family: "Merge", tag: "KXO", emit: emitXO},
}

var families = []struct {
	name, ret string
	generic   bool
}{
	{name: "Combine", ret: "CombineFunc[R]", generic: true},
	{name: "Propagate", ret: "PropagateFunc[R]", generic: true},
	{name: "Decide", ret: "DecideFunc[R]", generic: true},
	{name: "Merge", ret: "MergeFunc", generic: false},
}

func main() {
	out := flag.String("o", "z_intra.go", "output file")
	flag.Parse()

	var b bytes.Buffer
	generate(&b)
	src, err := imports.Process(*out, b.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polargen: format: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "polargen: %v\n", err)
		os.Exit(1)
	}
}

func generate(b *bytes.Buffer) {
	b.WriteString("// Code generated by polargen. DO NOT EDIT.\n\n")
	b.WriteString("package kernel\n\n")
	b.WriteString("// IntraSizes lists the element counts with an unrolled kernel body.\n")
	fmt.Fprintf(b, "var IntraSizes = [...]int{%s}\n", joinInts(sizes))
	for _, k := range kernels {
		for _, n := range sizes {
			b.WriteString("\n")
			k.emit(b, n)
		}
	}
	for _, fam := range families {
		b.WriteString("\n")
		emitLookup(b, fam.name, fam.ret, fam.generic)
	}
}

func emitLookup(b *bytes.Buffer, family, ret string, generic bool) {
	tparams, targs := "[R LLR, C Combiner[R]]", "[R, C]"
	if !generic {
		tparams, targs = "", ""
	}
	fmt.Fprintf(b, "func intra%s%s(name Name, n int) %s {\n", family, tparams, ret)
	b.WriteString("\tswitch name {\n")
	for _, k := range kernels {
		if k.family != family {
			continue
		}
		fmt.Fprintf(b, "\tcase %s:\n", k.tag)
		b.WriteString("\t\tswitch n {\n")
		for _, n := range sizes {
			fmt.Fprintf(b, "\t\tcase %d:\n", n)
			fmt.Fprintf(b, "\t\t\treturn %s%d%s\n", k.name, n, targs)
		}
		b.WriteString("\t\t}\n")
	}
	b.WriteString("\t}\n")
	b.WriteString("\treturn nil\n")
	b.WriteString("}\n")
}

// idx is the index expression of element e of frame f.
func idx(e int) string {
	switch e {
	case 0:
		return "f"
	case 1:
		return "frames+f"
	}
	return fmt.Sprintf("%d*frames+f", e)
}

func span(n int) string {
	if n == 1 {
		return "frames"
	}
	return fmt.Sprintf("%d*frames", n)
}

func header(b *bytes.Buffer, name string, n int, doc, params string) {
	fmt.Fprintf(b, "// %s%d is %s unrolled for %d element", name, n, doc, n)
	if n > 1 {
		b.WriteString("s")
	}
	b.WriteString(".\n")
	fmt.Fprintf(b, "func %s%d%s {\n", name, n, params)
}

func emitF(b *bytes.Buffer, n int) {
	header(b, "f", n, "F", "[R LLR, C Combiner[R]](la, lb, lc []R, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\tla, lb, lc = la[:%s], lb[:%s], lc[:%s]\n", s, s, s)
	b.WriteString("\tvar c C\n")
	b.WriteString("\tfor f := 0; f < frames; f++ {\n")
	for e := 0; e < n; e++ {
		i := idx(e)
		fmt.Fprintf(b, "\t\tlc[%s] = c.F(la[%s], lb[%s])\n", i, i, i)
	}
	b.WriteString("\t}\n}\n")
}

func emitG(b *bytes.Buffer, n int) {
	header(b, "g", n, "G", "[R LLR, C Combiner[R]](la, lb []R, u []uint8, lc []R, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\tla, lb, u, lc = la[:%s], lb[:%s], u[:%s], lc[:%s]\n", s, s, s, s)
	b.WriteString("\tvar c C\n")
	b.WriteString("\tth := SaturationInit[R]()\n")
	b.WriteString("\tfor f := 0; f < frames; f++ {\n")
	for e := 0; e < n; e++ {
		i := idx(e)
		fmt.Fprintf(b, "\t\tlc[%s] = Saturate(c.G(la[%s], lb[%s], u[%s]), th)\n", i, i, i, i)
	}
	b.WriteString("\t}\n}\n")
}

func emitG0(b *bytes.Buffer, n int) {
	header(b, "g0", n, "G0", "[R LLR, C Combiner[R]](la, lb, lc []R, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\tla, lb, lc = la[:%s], lb[:%s], lc[:%s]\n", s, s, s)
	b.WriteString("\tvar c C\n")
	b.WriteString("\tth := SaturationInit[R]()\n")
	b.WriteString("\tfor f := 0; f < frames; f++ {\n")
	for e := 0; e < n; e++ {
		i := idx(e)
		fmt.Fprintf(b, "\t\tlc[%s] = Saturate(c.G(la[%s], lb[%s], 0), th)\n", i, i, i)
	}
	b.WriteString("\t}\n}\n")
}

func emitGR(b *bytes.Buffer, n int) {
	header(b, "gr", n, "GR", "[R LLR, C Combiner[R]](la, lb []R, u []uint8, lc []R, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\tla, lb, u, lc = la[:%s], lb[:%s], u[:frames], lc[:%s]\n", s, s, s)
	b.WriteString("\tvar c C\n")
	b.WriteString("\tth := SaturationInit[R]()\n")
	b.WriteString("\tfor f, bit := range u {\n")
	for e := 0; e < n; e++ {
		i := idx(e)
		fmt.Fprintf(b, "\t\tlc[%s] = Saturate(c.G(la[%s], lb[%s], bit), th)\n", i, i, i)
	}
	b.WriteString("\t}\n}\n")
}

func emitH(b *bytes.Buffer, n int) {
	header(b, "h", n, "H", "[R LLR, C Combiner[R]](l []R, s []uint8, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\tl, s = l[:%s], s[:%s]\n", s, s)
	b.WriteString("\tvar c C\n")
	b.WriteString("\tfor f := 0; f < frames; f++ {\n")
	for e := 0; e < n; e++ {
		i := idx(e)
		fmt.Fprintf(b, "\t\ts[%s] = c.H(l[%s])\n", i, i)
	}
	b.WriteString("\t}\n}\n")
}

func emitXO(b *bytes.Buffer, n int) {
	header(b, "xo", n, "XO", "(a, b, c []uint8, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\ta, b, c = a[:%s], b[:%s], c[:%s]\n", s, s, s)
	b.WriteString("\tfor f := 0; f < frames; f++ {\n")
	for e := 0; e < n; e++ {
		i := idx(e)
		fmt.Fprintf(b, "\t\tc[%s] = a[%s] ^ b[%s]\n", i, i, i)
	}
	b.WriteString("\t}\n}\n")
}

func emitRep(b *bytes.Buffer, n int) {
	header(b, "rep", n, "Rep", "[R LLR, C Combiner[R]](l []R, s []uint8, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\tl, s = l[:%s], s[:%s]\n", s, s)
	b.WriteString("\tvar c C\n")
	b.WriteString("\tth := SaturationInit[R]()\n")
	b.WriteString("\tfor f := 0; f < frames; f++ {\n")
	b.WriteString("\t\tsum := Saturate(l[f], th)\n")
	for e := 1; e < n; e++ {
		fmt.Fprintf(b, "\t\tsum = addSat(Saturate(l[%s], th), sum)\n", idx(e))
	}
	b.WriteString("\t\tbit := c.H(sum)\n")
	for e := 0; e < n; e++ {
		fmt.Fprintf(b, "\t\ts[%s] = bit\n", idx(e))
	}
	b.WriteString("\t}\n}\n")
}

func emitSpc(b *bytes.Buffer, n int) {
	header(b, "spc", n, "Spc", "[R LLR, C Combiner[R]](l []R, s []uint8, frames int)")
	s := span(n)
	fmt.Fprintf(b, "\tl, s = l[:%s], s[:%s]\n", s, s)
	b.WriteString("\tvar c C\n")
	b.WriteString("\tfor f := 0; f < frames; f++ {\n")
	vs, bs, as, ls, hs, xs := list("v", n), list("b", n), list("a", n), make([]string, n), make([]string, n), make([]string, n)
	for e := 0; e < n; e++ {
		ls[e] = fmt.Sprintf("l[%s]", idx(e))
		hs[e] = fmt.Sprintf("c.H(v%d)", e)
		xs[e] = fmt.Sprintf("abs(v%d)", e)
	}
	fmt.Fprintf(b, "\t\t%s := %s\n", strings.Join(vs, ", "), strings.Join(ls, ", "))
	fmt.Fprintf(b, "\t\t%s := %s\n", strings.Join(bs, ", "), strings.Join(hs, ", "))
	fmt.Fprintf(b, "\t\tif %s != 0 {\n", strings.Join(bs, "^"))
	fmt.Fprintf(b, "\t\t\t%s := %s\n", strings.Join(as, ", "), strings.Join(xs, ", "))
	fmt.Fprintf(b, "\t\t\tswitch min(%s) {\n", strings.Join(as, ", "))
	for e := 0; e < n; e++ {
		fmt.Fprintf(b, "\t\t\tcase a%d:\n", e)
		fmt.Fprintf(b, "\t\t\t\tb%d ^= 1\n", e)
	}
	b.WriteString("\t\t\t}\n")
	b.WriteString("\t\t}\n")
	for e := 0; e < n; e++ {
		fmt.Fprintf(b, "\t\ts[%s] = b%d\n", idx(e), e)
	}
	b.WriteString("\t}\n}\n")
}

func list(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = fmt.Sprint(x)
	}
	return strings.Join(s, ", ")
}
