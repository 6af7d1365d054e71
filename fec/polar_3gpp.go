package fec

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Load3GPPTable reads a reliability table with two columns, index and rank,
// and returns the indices from most to least reliable (larger rank is more
// reliable). Blank lines and lines starting with '#' are skipped.
func Load3GPPTable(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fec: open reliability table: %w", err)
	}
	defer f.Close()
	type row struct {
		idx  int
		rank int
	}
	rows := make([]row, 0, 1024)
	s := bufio.NewScanner(f)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Fields(text)
		if len(parts) < 2 {
			return nil, fmt.Errorf("fec: %s:%d: want two columns", path, line)
		}
		i, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("fec: %s:%d: %w", path, line, err)
		}
		r, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("fec: %s:%d: %w", path, line, err)
		}
		rows = append(rows, row{idx: i, rank: r})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("fec: read reliability table: %w", err)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].rank > rows[j].rank })
	ordered := make([]int, len(rows))
	for i := range rows {
		ordered[i] = rows[i].idx
	}
	return ordered, nil
}

// FrozenFromOrder picks the K most reliable positions below N from a
// reliability order (most reliable first) and freezes the rest. The order
// may describe a longer mother code; larger indices are skipped.
func FrozenFromOrder(order []int, N, K int) ([]bool, error) {
	if N <= 1 || K <= 0 || K > N || N&(N-1) != 0 {
		return nil, fmt.Errorf("%w: N=%d K=%d", ErrInvalidCode, N, K)
	}
	short := make([]int, 0, N)
	seen := make([]bool, N)
	for _, idx := range order {
		if idx < 0 || idx >= N {
			continue
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d ranked twice", ErrInvalidCode, idx)
		}
		seen[idx] = true
		short = append(short, idx)
	}
	if len(short) < K {
		return nil, fmt.Errorf("%w: order ranks %d positions below N=%d, need K=%d", ErrInvalidCode, len(short), N, K)
	}
	return frozenFromOrder(short, N, K), nil
}

// FrozenFrom3GPP loads a reliability table and derives an (N, K) mask.
func FrozenFrom3GPP(path string, N, K int) ([]bool, error) {
	order, err := Load3GPPTable(path)
	if err != nil {
		return nil, err
	}
	return FrozenFromOrder(order, N, K)
}
