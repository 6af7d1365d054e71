package kernel

import "fmt"

// Name identifies a kernel in a pattern's slot.
type Name uint8

const (
	None Name = iota
	KF
	KG
	KG0
	KGR
	KH
	KH0
	KXO
	KXO0
	KRep
	KSpc
	numNames
)

var names = [numNames]string{
	None: "",
	KF:   "f",
	KG:   "g",
	KG0:  "g0",
	KGR:  "gr",
	KH:   "h",
	KH0:  "h0",
	KXO:  "xo",
	KXO0: "xo0",
	KRep: "rep",
	KSpc: "spc",
}

func (n Name) String() string {
	if n >= numNames {
		return fmt.Sprintf("kernel(%d)", uint8(n))
	}
	return names[n]
}

// ParseName maps a kernel string such as "g0" back to its Name.
func ParseName(s string) (Name, error) {
	for i := KF; i < numNames; i++ {
		if names[i] == s {
			return i, nil
		}
	}
	return None, fmt.Errorf("unknown kernel %q", s)
}

// Family groups kernels that share a call signature.
type Family uint8

const (
	// FamilyCombine kernels read two LLR halves: f, g0.
	FamilyCombine Family = iota + 1
	// FamilyPropagate kernels read two LLR halves and decided bits: g, gr.
	FamilyPropagate
	// FamilyDecide kernels turn LLRs into bits: h, h0, rep, spc.
	FamilyDecide
	// FamilyMerge kernels combine two bit halves: xo, xo0.
	FamilyMerge
)

// Family reports the call signature of n.
func (n Name) Family() Family {
	switch n {
	case KF, KG0:
		return FamilyCombine
	case KG, KGR:
		return FamilyPropagate
	case KH, KH0, KRep, KSpc:
		return FamilyDecide
	case KXO, KXO0:
		return FamilyMerge
	}
	return 0
}
