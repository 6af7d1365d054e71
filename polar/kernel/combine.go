package kernel

import "math"

// Combiner supplies the elementary per-lane arithmetic the kernels are built
// from. Implementations are zero-size value types so that the compiler can
// instantiate the kernels for each of them.
type Combiner[R LLR] interface {
	// F is the check-node combine of two LLRs.
	F(a, b R) R
	// G is the bit-node combine of two LLRs given the decided bit u of the
	// sibling subtree.
	G(a, b R, u uint8) R
	// H is the hard decision of one LLR: 1 for negative values, 0 otherwise.
	H(a R) uint8
}

// MinSum is the min-sum approximation of the box-plus operator.
type MinSum[R LLR] struct{}

func (MinSum[R]) F(a, b R) R {
	m := min(abs(a), abs(b))
	if (a < 0) != (b < 0) {
		return -m
	}
	return m
}

func (MinSum[R]) G(a, b R, u uint8) R {
	if u != 0 {
		return addSat(b, -a)
	}
	return addSat(b, a)
}

func (MinSum[R]) H(a R) uint8 {
	if a < 0 {
		return 1
	}
	return 0
}

// BoxPlus is the exact log-domain check-node combine. Integer lanes have no
// room for the correction terms and fall back to min-sum.
type BoxPlus[R LLR] struct{}

func (BoxPlus[R]) F(a, b R) R {
	if !floatLane[R]() {
		return MinSum[R]{}.F(a, b)
	}
	x, y := float64(a), float64(b)
	m := math.Min(math.Abs(x), math.Abs(y))
	if (x < 0) != (y < 0) {
		m = -m
	}
	return R(m + math.Log1p(math.Exp(-math.Abs(x+y))) - math.Log1p(math.Exp(-math.Abs(x-y))))
}

func (BoxPlus[R]) G(a, b R, u uint8) R { return MinSum[R]{}.G(a, b, u) }

func (BoxPlus[R]) H(a R) uint8 { return MinSum[R]{}.H(a) }

func floatLane[R LLR]() bool {
	one := R(1)
	return one/2 != 0
}
