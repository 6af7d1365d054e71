package kernel

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// LLR is the set of lane types a decoder can run on.
type LLR interface {
	hwy.Floats | int8 | int16 | int32
}

// int8Floor is the lowest value an 8-bit LLR may take after an addition.
// -128 has no positive counterpart and would wrap on negation.
const int8Floor = -127

// SaturationInit returns the clamp threshold for lane type R: -127 for int8
// and the zero sentinel (no clamping) for every other type.
func SaturationInit[R LLR]() R {
	var th R
	if p, ok := any(&th).(*int8); ok {
		*p = int8Floor
	}
	return th
}

// Saturate applies the threshold returned by SaturationInit.
func Saturate[R LLR](v, threshold R) R {
	if threshold != 0 && v < threshold {
		return threshold
	}
	return v
}

// addSat adds two lanes, sticking to the type bounds on integer overflow.
func addSat[R LLR](a, b R) R {
	s := a + b
	if a > 0 && b > 0 && s < 0 {
		return upper[R]()
	}
	if a < 0 && b < 0 && s >= 0 {
		return lower[R]()
	}
	return s
}

func upper[R LLR]() R {
	var v R
	switch p := any(&v).(type) {
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	}
	return v
}

func lower[R LLR]() R {
	var v R
	switch p := any(&v).(type) {
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	}
	return v
}

func abs[R LLR](v R) R {
	if v < 0 {
		return -v
	}
	return v
}
