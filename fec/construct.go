package fec

import (
	"fmt"
	"math"
	"sort"
)

// Construction names a way of ranking bit-channel reliabilities.
type Construction string

const (
	// ConstructionBEC ranks by Bhattacharyya parameters on a binary erasure
	// channel with erasure probability param.
	ConstructionBEC Construction = "bec"
	// ConstructionGA ranks by the Gaussian approximation of density
	// evolution on an AWGN channel with noise deviation param.
	ConstructionGA Construction = "ga"
)

// FrozenBits returns the frozen mask of an (N, K) code: the N-K least
// reliable positions are frozen.
func FrozenBits(method Construction, N, K int, param float64) ([]bool, error) {
	if N <= 1 || K <= 0 || K > N || N&(N-1) != 0 {
		return nil, fmt.Errorf("%w: N=%d K=%d", ErrInvalidCode, N, K)
	}
	var order []int
	switch method {
	case ConstructionBEC:
		if param <= 0 || param >= 1 {
			return nil, fmt.Errorf("%w: erasure probability %g", ErrInvalidCode, param)
		}
		z := bhattacharyyaBEC(N, param)
		order = rank(z, func(a, b float64) bool { return a < b })
	case ConstructionGA:
		if param <= 0 {
			return nil, fmt.Errorf("%w: sigma %g", ErrInvalidCode, param)
		}
		m := gaussianMeans(N, param)
		order = rank(m, func(a, b float64) bool { return a > b })
	default:
		return nil, fmt.Errorf("%w: unknown construction %q", ErrInvalidCode, method)
	}
	return frozenFromOrder(order, N, K), nil
}

// InfoSet returns the information positions of a frozen mask, ascending.
func InfoSet(frozen []bool) []int {
	out := make([]int, 0, len(frozen))
	for i, f := range frozen {
		if !f {
			out = append(out, i)
		}
	}
	return out
}

// rank orders positions from most to least reliable; ties keep index order.
func rank(score []float64, better func(a, b float64) bool) []int {
	idx := make([]int, len(score))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return better(score[idx[i]], score[idx[j]]) })
	return idx
}

func frozenFromOrder(order []int, N, K int) []bool {
	frozen := make([]bool, N)
	for i := range frozen {
		frozen[i] = true
	}
	for _, i := range order[:K] {
		frozen[i] = false
	}
	return frozen
}

// bhattacharyyaBEC expands the erasure probability stage by stage with
// [2z - z^2, z^2]; position 2i is the worse child of position i.
func bhattacharyyaBEC(N int, eps float64) []float64 {
	z := []float64{eps}
	for len(z) < N {
		next := make([]float64, 0, 2*len(z))
		for _, v := range z {
			next = append(next, 2*v-v*v, v*v)
		}
		z = next
	}
	return z
}

// gaussianMeans tracks the mean LLR of every bit channel under the
// Gaussian approximation, starting from 2/sigma^2 on the channel.
func gaussianMeans(N int, sigma float64) []float64 {
	m := []float64{2 / (sigma * sigma)}
	for len(m) < N {
		next := make([]float64, 0, 2*len(m))
		for _, v := range m {
			p := phi(v)
			next = append(next, phiInv(p*(2-p), v), 2*v)
		}
		m = next
	}
	return m
}

// phi is Chung's approximation of the density-evolution function.
func phi(x float64) float64 {
	switch {
	case x <= 0:
		return 1
	case x < 10:
		return math.Exp(-0.4527*math.Pow(x, 0.86) + 0.0218)
	}
	return math.Sqrt(math.Pi/x) * math.Exp(-x/4) * (1 - 10/(7*x))
}

// phiInv solves phi(x) = y on [0, hi] by bisection. phi is decreasing.
func phiInv(y, hi float64) float64 {
	if y >= 1 {
		return 0
	}
	if y <= 0 {
		// 2*phi underflowed; the asymptotic form loses 4 ln 2.
		return math.Max(hi-4*math.Ln2, 0)
	}
	lo := 0.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if phi(mid) > y {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
