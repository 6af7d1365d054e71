package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scores returned by Match. Zero means the rule does not apply.
const (
	scoreStandard  = 1
	scoreRepLeft   = 19
	scoreRate0Left = 20
	scoreExact     = 49
)

// Rule is one catalog entry: a pattern plus the range of subtree sizes it
// may be applied to. A zero Min or Max leaves that side unbounded.
type Rule struct {
	Tag      Tag
	Min, Max int
}

// Match scores the rule against a node of the given height (a subtree of
// 2^height leaves) whose children are already specialized to left and right.
// Calling it on a leaf or on a node with an unspecialized child is a
// programmer error.
func (r Rule) Match(height int, left, right Tag) int {
	if height <= 0 {
		panic(fmt.Sprintf("pattern: match called at height %d", height))
	}
	if left == None || right == None {
		panic("pattern: match called before the children were specialized")
	}
	size := 1 << height
	if (r.Min > 0 && size < r.Min) || (r.Max > 0 && size > r.Max) {
		return 0
	}
	switch r.Tag {
	case Standard:
		return scoreStandard
	case Rate0Left:
		if left == Rate0 {
			return scoreRate0Left
		}
	case RepLeft:
		if left == Rep {
			return scoreRepLeft
		}
	case Rate0:
		if left == Rate0 && right == Rate0 {
			return scoreExact
		}
	case Rate1:
		if left == Rate1 && right == Rate1 {
			return scoreExact
		}
	case Rep:
		if left == Rate0 && (right == Rep || (height == 1 && right == Rate1)) {
			return scoreExact
		}
	case Spc:
		if right == Rate1 && (left == Spc || (height == 2 && left == Rep)) {
			return scoreExact
		}
	}
	return 0
}

func (r Rule) String() string {
	s := catalogNames[r.Tag]
	switch {
	case r.Min == 0 && r.Max == 0:
		return s
	case r.Min == r.Max:
		return fmt.Sprintf("%s_%d", s, r.Min)
	case r.Max == 0:
		return fmt.Sprintf("%s_%d+", s, r.Min)
	}
	return fmt.Sprintf("%s_%d-%d", s, r.Min, r.Max)
}

// Catalog is an ordered set of rules. When two rules score the same, the
// one declared first wins.
type Catalog struct {
	rules []Rule
}

// NewCatalog builds a catalog from rules in the given order. Unlike
// ParseCatalog it does not add a Standard fallback.
func NewCatalog(rules ...Rule) Catalog {
	for _, r := range rules {
		if r.Tag == None || r.Tag >= numTags {
			panic(fmt.Sprintf("pattern: rule for unassignable tag %d", uint8(r.Tag)))
		}
	}
	return Catalog{rules: append([]Rule(nil), rules...)}
}

// DefaultCatalog enables every pattern at every size.
func DefaultCatalog() Catalog {
	rules := make([]Rule, 0, numTags-1)
	for _, t := range All() {
		rules = append(rules, Rule{Tag: t})
	}
	return Catalog{rules: rules}
}

// Rules returns a copy of the rules in declaration order.
func (c Catalog) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

func (c Catalog) Len() int { return len(c.rules) }

func (c Catalog) String() string {
	parts := make([]string, len(c.rules))
	for i, r := range c.rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

var catalogNames = [numTags]string{
	Standard:  "STD",
	Rate0Left: "R0L",
	RepLeft:   "REPL",
	Rate0:     "R0",
	Rate1:     "R1",
	Rep:       "REP",
	Spc:       "SPC",
}

// ErrCatalog is returned for a malformed catalog description.
var ErrCatalog = errors.New("pattern: invalid catalog")

// ParseCatalog reads a description such as "{R0,R0L,R1,REP_2-8,REPL,SPC_4+}".
// Each entry is a pattern name with an optional size suffix: _A for exactly
// A, _A+ for A and above, _A-B for the closed range. Standard is prepended
// when the description does not list it.
func ParseCatalog(s string) (Catalog, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	var rules []Rule
	seen := make(map[Tag]bool)
	for _, field := range strings.Split(s, ",") {
		field = strings.ToUpper(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		r, err := parseRule(field)
		if err != nil {
			return Catalog{}, err
		}
		if seen[r.Tag] {
			return Catalog{}, fmt.Errorf("%w: %s listed twice", ErrCatalog, catalogNames[r.Tag])
		}
		seen[r.Tag] = true
		rules = append(rules, r)
	}
	if !seen[Standard] {
		rules = append([]Rule{{Tag: Standard}}, rules...)
	}
	return Catalog{rules: rules}, nil
}

func parseRule(field string) (Rule, error) {
	name, sizes, ranged := strings.Cut(field, "_")
	var r Rule
	for t := Standard; t < numTags; t++ {
		if catalogNames[t] == name {
			r.Tag = t
		}
	}
	if r.Tag == None {
		return r, fmt.Errorf("%w: unknown pattern %q", ErrCatalog, name)
	}
	if !ranged {
		return r, nil
	}
	var err error
	switch {
	case strings.HasSuffix(sizes, "+"):
		r.Min, err = parseSize(strings.TrimSuffix(sizes, "+"))
	case strings.Contains(sizes, "-"):
		lo, hi, _ := strings.Cut(sizes, "-")
		if r.Min, err = parseSize(lo); err == nil {
			r.Max, err = parseSize(hi)
		}
	default:
		r.Min, err = parseSize(sizes)
		r.Max = r.Min
	}
	if err != nil {
		return r, fmt.Errorf("%w: %s: %v", ErrCatalog, field, err)
	}
	if r.Max > 0 && r.Max < r.Min {
		return r, fmt.Errorf("%w: %s: empty size range", ErrCatalog, field)
	}
	return r, nil
}

func parseSize(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 2 || v&(v-1) != 0 {
		return 0, fmt.Errorf("size %d is not a power of two >= 2", v)
	}
	return v, nil
}
