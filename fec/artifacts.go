package fec

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/francoispqt/gojay"
)

// FrozenSet is a stored code construction: the information set of an
// (N, K) code and how it was obtained.
type FrozenSet struct {
	N      int
	K      int
	Method string
	Param  float64
	A      []int  // information positions, ascending
	CRC32  uint32 // IEEE checksum of the mask, 0 when absent
}

// NewFrozenSet records a mask together with its construction.
func NewFrozenSet(frozen []bool, method string, param float64) *FrozenSet {
	A := InfoSet(frozen)
	return &FrozenSet{
		N:      len(frozen),
		K:      len(A),
		Method: method,
		Param:  param,
		A:      A,
		CRC32:  maskCRC(frozen),
	}
}

// Frozen expands the set back into a mask after checking it.
func (s *FrozenSet) Frozen() ([]bool, error) {
	if s.N <= 1 || s.N&(s.N-1) != 0 || s.K <= 0 || s.K > s.N {
		return nil, fmt.Errorf("%w: N=%d K=%d", ErrInvalidCode, s.N, s.K)
	}
	if len(s.A) != s.K {
		return nil, fmt.Errorf("%w: %d information positions, want K=%d", ErrInvalidCode, len(s.A), s.K)
	}
	frozen := make([]bool, s.N)
	for i := range frozen {
		frozen[i] = true
	}
	for i, a := range s.A {
		if a < 0 || a >= s.N {
			return nil, fmt.Errorf("%w: position %d out of range", ErrInvalidCode, a)
		}
		if i > 0 && a <= s.A[i-1] {
			return nil, fmt.Errorf("%w: positions not strictly ascending at %d", ErrInvalidCode, i)
		}
		frozen[a] = false
	}
	if s.CRC32 != 0 {
		if got := maskCRC(frozen); got != s.CRC32 {
			return nil, fmt.Errorf("fec: frozen set checksum %08x, want %08x", got, s.CRC32)
		}
	}
	return frozen, nil
}

func maskCRC(frozen []bool) uint32 {
	b := make([]byte, len(frozen))
	for i, f := range frozen {
		if f {
			b[i] = 1
		}
	}
	return crc32.ChecksumIEEE(b)
}

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (s *FrozenSet) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("n", s.N)
	enc.IntKey("k", s.K)
	enc.StringKeyOmitEmpty("method", s.Method)
	enc.Float64KeyOmitEmpty("param", s.Param)
	enc.ArrayKey("A", intList(s.A))
	enc.Uint32KeyOmitEmpty("crc32", s.CRC32)
}

// IsNil implements gojay.MarshalerJSONObject.
func (s *FrozenSet) IsNil() bool { return s == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (s *FrozenSet) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "n":
		return dec.Int(&s.N)
	case "k":
		return dec.Int(&s.K)
	case "method":
		return dec.String(&s.Method)
	case "param":
		return dec.Float64(&s.Param)
	case "A":
		var l intList
		if err := dec.Array(&l); err != nil {
			return err
		}
		s.A = l
	case "crc32":
		return dec.Uint32(&s.CRC32)
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (s *FrozenSet) NKeys() int { return 0 }

type intList []int

func (l intList) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range l {
		enc.Int(v)
	}
}

func (l intList) IsNil() bool { return l == nil }

func (l *intList) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var v int
	if err := dec.Int(&v); err != nil {
		return err
	}
	*l = append(*l, v)
	return nil
}

// SaveFrozenSet writes s as JSON to path, creating parent directories.
func SaveFrozenSet(path string, s *FrozenSet) error {
	var buf bytes.Buffer
	enc := gojay.BorrowEncoder(&buf)
	defer enc.Release()
	if err := enc.EncodeObject(s); err != nil {
		return fmt.Errorf("fec: encode frozen set: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("fec: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadFrozenSet reads a set written by SaveFrozenSet.
func LoadFrozenSet(path string) (*FrozenSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fec: read frozen set: %w", err)
	}
	s := &FrozenSet{}
	if err := gojay.UnmarshalJSONObject(b, s); err != nil {
		return nil, fmt.Errorf("fec: parse %s: %w", path, err)
	}
	return s, nil
}

// ArtifactDir is where construction runs for (N, K) are stored under base.
func ArtifactDir(base string, N, K int) string {
	return filepath.Join(base, fmt.Sprintf("N%d_K%d", N, K))
}

// LatestFrozenSet loads frozen.json from the most recently modified
// table_* directory under ArtifactDir(base, N, K).
func LatestFrozenSet(base string, N, K int) (*FrozenSet, error) {
	dir := ArtifactDir(base, N, K)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fec: read artifact dir: %w", err)
	}
	type table struct {
		name string
		mod  int64
	}
	var cands []table
	for _, ent := range entries {
		if !ent.IsDir() || !strings.HasPrefix(ent.Name(), "table_") {
			continue
		}
		info, err := ent.Info()
		if err != nil {
			continue
		}
		cands = append(cands, table{name: ent.Name(), mod: info.ModTime().UnixNano()})
	}
	if len(cands) == 0 {
		return nil, fmt.Errorf("fec: no table_* dirs under %s", dir)
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].mod != cands[j].mod {
			return cands[i].mod > cands[j].mod
		}
		return cands[i].name > cands[j].name
	})
	s, err := LoadFrozenSet(filepath.Join(dir, cands[0].name, "frozen.json"))
	if err != nil {
		return nil, err
	}
	if s.N != N || s.K != K {
		return nil, fmt.Errorf("fec: artifact in %s is (%d,%d), want (%d,%d)", dir, s.N, s.K, N, K)
	}
	return s, nil
}
