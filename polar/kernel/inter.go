package kernel

// Runtime-sized kernels. n is the number of elements per frame; every
// buffer holds n*frames interleaved lanes unless stated otherwise.

// F writes lc = f(la, lb). The result is not saturated.
func F[R LLR, C Combiner[R]](la, lb, lc []R, n, frames int) {
	m := n * frames
	la, lb, lc = la[:m], lb[:m], lc[:m]
	var c C
	for i := range lc {
		lc[i] = c.F(la[i], lb[i])
	}
}

// G writes lc = g(la, lb, u) where u holds one decided bit per lane.
func G[R LLR, C Combiner[R]](la, lb []R, u []uint8, lc []R, n, frames int) {
	m := n * frames
	la, lb, u, lc = la[:m], lb[:m], u[:m], lc[:m]
	var c C
	th := SaturationInit[R]()
	for i := range lc {
		lc[i] = Saturate(c.G(la[i], lb[i], u[i]), th)
	}
}

// G0 is G with every decided bit equal to zero.
func G0[R LLR, C Combiner[R]](la, lb, lc []R, n, frames int) {
	m := n * frames
	la, lb, lc = la[:m], lb[:m], lc[:m]
	var c C
	th := SaturationInit[R]()
	for i := range lc {
		lc[i] = Saturate(c.G(la[i], lb[i], 0), th)
	}
}

// GR is G where one bit per frame, read from u[:frames], applies to every
// element of that frame.
func GR[R LLR, C Combiner[R]](la, lb []R, u []uint8, lc []R, n, frames int) {
	m := n * frames
	la, lb, u, lc = la[:m], lb[:m], u[:frames], lc[:m]
	var c C
	th := SaturationInit[R]()
	for e := 0; e < m; e += frames {
		for f, b := range u {
			lc[e+f] = Saturate(c.G(la[e+f], lb[e+f], b), th)
		}
	}
}

// H writes the hard decision of every lane of l into s.
func H[R LLR, C Combiner[R]](l []R, s []uint8, n, frames int) {
	m := n * frames
	l, s = l[:m], s[:m]
	var c C
	for i := range s {
		s[i] = c.H(l[i])
	}
}

// H0 clears s.
func H0(s []uint8, n, frames int) {
	clear(s[:n*frames])
}

// XO writes c = a ^ b. c may alias a.
func XO(a, b, c []uint8, n, frames int) {
	m := n * frames
	a, b, c = a[:m], b[:m], c[:m]
	for i := range c {
		c[i] = a[i] ^ b[i]
	}
}

// XO0 copies b into c.
func XO0(b, c []uint8, n, frames int) {
	m := n * frames
	copy(c[:m], b[:m])
}

// Rep decodes a repetition sub-code: per frame, the saturated sum of all
// element LLRs is hard-decided once and written to every element.
func Rep[R LLR, C Combiner[R]](l []R, s []uint8, n, frames int) {
	m := n * frames
	l, s = l[:m], s[:m]
	var c C
	th := SaturationInit[R]()
	for f := 0; f < frames; f++ {
		var sum R
		for i := f; i < m; i += frames {
			sum = addSat(Saturate(l[i], th), sum)
		}
		b := c.H(sum)
		for i := f; i < m; i += frames {
			s[i] = b
		}
	}
}

// Spc decodes a single-parity-check sub-code: per frame, every element is
// hard-decided and, when the decided parity is odd, the first element whose
// magnitude equals the frame minimum is flipped.
func Spc[R LLR, C Combiner[R]](l []R, s []uint8, n, frames int) {
	m := n * frames
	l, s = l[:m], s[:m]
	var c C
	for f := 0; f < frames; f++ {
		var parity uint8
		minAbs := abs(l[f])
		for i := f; i < m; i += frames {
			b := c.H(l[i])
			s[i] = b
			parity ^= b
			minAbs = min(minAbs, abs(l[i]))
		}
		if parity == 0 {
			continue
		}
		i := f
		for abs(l[i]) != minAbs {
			i += frames
		}
		s[i] ^= 1
	}
}
