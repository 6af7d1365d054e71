package kernel

import "fmt"

//go:generate go run ../../cmd/polargen -o z_intra.go

// Entry points with the element count already bound.
type (
	CombineFunc[R LLR]   func(la, lb, lc []R, frames int)
	PropagateFunc[R LLR] func(la, lb []R, u []uint8, lc []R, frames int)
	DecideFunc[R LLR]    func(l []R, s []uint8, frames int)
	MergeFunc            func(a, b, c []uint8, frames int)
)

// Set resolves kernel names to entry points for one lane type and one
// combiner. With intra enabled, element counts listed in IntraSizes get the
// unrolled variant; everything else gets the runtime-sized loop.
type Set[R LLR, C Combiner[R]] struct {
	intra bool
}

func NewSet[R LLR, C Combiner[R]](intra bool) Set[R, C] {
	return Set[R, C]{intra: intra}
}

// Intra reports whether unrolled variants are preferred.
func (s Set[R, C]) Intra() bool { return s.intra }

// Combine resolves f or g0 over n elements.
func (s Set[R, C]) Combine(name Name, n int) CombineFunc[R] {
	if s.intra {
		if fn := intraCombine[R, C](name, n); fn != nil {
			return fn
		}
	}
	switch name {
	case KF:
		return func(la, lb, lc []R, frames int) { F[R, C](la, lb, lc, n, frames) }
	case KG0:
		return func(la, lb, lc []R, frames int) { G0[R, C](la, lb, lc, n, frames) }
	}
	panic(fmt.Sprintf("kernel: %q is not a combine kernel", name))
}

// Propagate resolves g or gr over n elements.
func (s Set[R, C]) Propagate(name Name, n int) PropagateFunc[R] {
	if s.intra {
		if fn := intraPropagate[R, C](name, n); fn != nil {
			return fn
		}
	}
	switch name {
	case KG:
		return func(la, lb []R, u []uint8, lc []R, frames int) { G[R, C](la, lb, u, lc, n, frames) }
	case KGR:
		return func(la, lb []R, u []uint8, lc []R, frames int) { GR[R, C](la, lb, u, lc, n, frames) }
	}
	panic(fmt.Sprintf("kernel: %q is not a propagate kernel", name))
}

// Decide resolves h, h0, rep or spc over n elements. h0 ignores its LLR
// argument.
func (s Set[R, C]) Decide(name Name, n int) DecideFunc[R] {
	if s.intra {
		if fn := intraDecide[R, C](name, n); fn != nil {
			return fn
		}
	}
	switch name {
	case KH:
		return func(l []R, b []uint8, frames int) { H[R, C](l, b, n, frames) }
	case KH0:
		return func(_ []R, b []uint8, frames int) { H0(b, n, frames) }
	case KRep:
		return func(l []R, b []uint8, frames int) { Rep[R, C](l, b, n, frames) }
	case KSpc:
		return func(l []R, b []uint8, frames int) { Spc[R, C](l, b, n, frames) }
	}
	panic(fmt.Sprintf("kernel: %q is not a decide kernel", name))
}

// Merge resolves xo or xo0 over n elements. xo0 ignores a.
func (s Set[R, C]) Merge(name Name, n int) MergeFunc {
	if s.intra {
		if fn := intraMerge(name, n); fn != nil {
			return fn
		}
	}
	switch name {
	case KXO:
		return func(a, b, c []uint8, frames int) { XO(a, b, c, n, frames) }
	case KXO0:
		return func(_, b, c []uint8, frames int) { XO0(b, c, n, frames) }
	}
	panic(fmt.Sprintf("kernel: %q is not a merge kernel", name))
}
