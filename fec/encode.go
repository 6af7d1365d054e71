package fec

import (
	"errors"
	"fmt"
)

// ErrInvalidCode reports code parameters no polar code can have.
var ErrInvalidCode = errors.New("fec: invalid code parameters")

// Transform applies the polar butterfly x = u·F^{⊗n}, F = [[1,0],[1,1]], in
// place to a batch of frame-interleaved bit vectors. It is its own inverse.
func Transform(x []uint8, frames int) {
	N := len(x) / frames
	if N*frames != len(x) || N&(N-1) != 0 {
		panic(fmt.Sprintf("fec: %d bits is not a power-of-two batch of %d frames", len(x), frames))
	}
	for half := 1; half < N; half <<= 1 {
		for start := 0; start < N; start += 2 * half {
			for j := start; j < start+half; j++ {
				a := x[j*frames : (j+1)*frames]
				b := x[(j+half)*frames : (j+half+1)*frames]
				for f := range a {
					a[f] ^= b[f]
				}
			}
		}
	}
}

// Encoder maps K information bits to an N-bit polar codeword.
type Encoder struct {
	frozen     []bool
	info       []int
	systematic bool
}

// NewEncoder builds an encoder for a frozen-bit mask. A systematic encoder
// places the data bits at the information positions of the codeword itself.
func NewEncoder(frozen []bool, systematic bool) (*Encoder, error) {
	N := len(frozen)
	if N < 2 || N&(N-1) != 0 {
		return nil, fmt.Errorf("%w: N=%d is not a power of two", ErrInvalidCode, N)
	}
	info := InfoSet(frozen)
	if len(info) == 0 {
		return nil, fmt.Errorf("%w: no information bits", ErrInvalidCode)
	}
	return &Encoder{frozen: append([]bool(nil), frozen...), info: info, systematic: systematic}, nil
}

func (e *Encoder) N() int { return len(e.frozen) }

func (e *Encoder) K() int { return len(e.info) }

// Systematic reports whether data bits appear verbatim in the codeword.
func (e *Encoder) Systematic() bool { return e.systematic }

// Encode writes the codewords of a batch of frames into x. info holds K×frames
// bits and x N×frames bits, both frame-interleaved.
func (e *Encoder) Encode(info, x []uint8, frames int) error {
	if len(info) != len(e.info)*frames || len(x) != len(e.frozen)*frames {
		return fmt.Errorf("fec: encode %d info bits into %d code bits: want %d and %d",
			len(info), len(x), len(e.info)*frames, len(e.frozen)*frames)
	}
	clear(x)
	for j, pos := range e.info {
		copy(x[pos*frames:(pos+1)*frames], info[j*frames:(j+1)*frames])
	}
	Transform(x, frames)
	if !e.systematic {
		return nil
	}
	// Re-encoding after clearing the frozen positions leaves the data on
	// the information positions for domination-contiguous sets.
	for i, f := range e.frozen {
		if f {
			clear(x[i*frames : (i+1)*frames])
		}
	}
	Transform(x, frames)
	return nil
}
