package kernel

import "github.com/ajroetker/go-highway/hwy"

// Lanes returns how many R values fit in one vector register of the
// detected SIMD target. Frame counts that are a multiple of it keep every
// kernel loop free of a scalar tail.
func Lanes[R LLR]() int {
	return hwy.MaxLanes[R]()
}

// Target names the detected SIMD target, e.g. "avx2" or "neon".
func Target() string {
	return hwy.CurrentName()
}

// DefaultIntra reports whether unrolled kernels should be used by default.
// Setting HWY_NO_SIMD turns them off along with the vector paths.
func DefaultIntra() bool {
	return !hwy.NoSimdEnv()
}
