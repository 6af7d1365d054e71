package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Observe-l/polarsc/polar/kernel"
)

func TestDescriptorSlots(t *testing.T) {
	for _, tag := range All() {
		f, g, h := tag.Slots()
		if tag.Terminal() {
			assert.Equal(t, kernel.None, f, "%s", tag)
			assert.Equal(t, kernel.None, g, "%s", tag)
			assert.Equal(t, kernel.FamilyDecide, h.Family(), "%s", tag)
			continue
		}
		assert.Equal(t, kernel.FamilyCombine, f.Family(), "%s", tag)
		// g0 needs no decided bits, so it shares the combine signature.
		assert.Contains(t, []kernel.Family{kernel.FamilyPropagate, kernel.FamilyCombine}, g.Family(), "%s", tag)
		assert.Equal(t, kernel.FamilyMerge, h.Family(), "%s", tag)
	}
}

func TestRate0LeftUsesG0(t *testing.T) {
	f, g, h := Rate0Left.Slots()
	assert.Equal(t, []kernel.Name{kernel.KF, kernel.KG0, kernel.KXO0}, []kernel.Name{f, g, h})
	_, g, _ = RepLeft.Slots()
	assert.Equal(t, kernel.KGR, g)
}

func TestParseTag(t *testing.T) {
	for _, tag := range All() {
		got, err := ParseTag(tag.String())
		require.NoError(t, err)
		assert.Equal(t, tag, got)
		got, err = ParseTag(tag.Short())
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}
	_, err := ParseTag("nope")
	assert.Error(t, err)
}

func TestMatchScores(t *testing.T) {
	tests := []struct {
		name        string
		rule        Rule
		height      int
		left, right Tag
		want        int
	}{
		{"standard always", Rule{Tag: Standard}, 3, Rate1, Spc, scoreStandard},
		{"rate0", Rule{Tag: Rate0}, 1, Rate0, Rate0, scoreExact},
		{"rate0 needs both", Rule{Tag: Rate0}, 1, Rate0, Rate1, 0},
		{"rate1", Rule{Tag: Rate1}, 4, Rate1, Rate1, scoreExact},
		{"rep base", Rule{Tag: Rep}, 1, Rate0, Rate1, scoreExact},
		{"rep base only at one bit", Rule{Tag: Rep}, 2, Rate0, Rate1, 0},
		{"rep grows", Rule{Tag: Rep}, 3, Rate0, Rep, scoreExact},
		{"spc base", Rule{Tag: Spc}, 2, Rep, Rate1, scoreExact},
		{"spc base only at four", Rule{Tag: Spc}, 3, Rep, Rate1, 0},
		{"spc grows", Rule{Tag: Spc}, 5, Spc, Rate1, scoreExact},
		{"rep left", Rule{Tag: RepLeft}, 3, Rep, Standard, scoreRepLeft},
		{"rep left needs rep", Rule{Tag: RepLeft}, 3, Spc, Standard, 0},
		{"rate0 left", Rule{Tag: Rate0Left}, 2, Rate0, Rate1, scoreRate0Left},
		{"below min", Rule{Tag: Rate1, Min: 8}, 2, Rate1, Rate1, 0},
		{"above max", Rule{Tag: Rate1, Max: 2}, 2, Rate1, Rate1, 0},
		{"inside range", Rule{Tag: Rate1, Min: 2, Max: 4}, 2, Rate1, Rate1, scoreExact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Match(tt.height, tt.left, tt.right))
		})
	}
}

func TestMatchAssertions(t *testing.T) {
	r := Rule{Tag: Standard}
	assert.Panics(t, func() { r.Match(0, Rate0, Rate0) })
	assert.Panics(t, func() { r.Match(-1, Rate0, Rate0) })
	assert.Panics(t, func() { r.Match(2, None, Rate0) })
	assert.Panics(t, func() { r.Match(2, Rate1, None) })
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog("{R0, R0L, r1, REP_2-8, REPL, SPC_4+}")
	require.NoError(t, err)
	assert.Equal(t, "STD,R0,R0L,R1,REP_2-8,REPL,SPC_4+", c.String())
	rules := c.Rules()
	require.Len(t, rules, 7)
	assert.Equal(t, Rule{Tag: Rep, Min: 2, Max: 8}, rules[4])
	assert.Equal(t, Rule{Tag: Spc, Min: 4}, rules[6])

	c, err = ParseCatalog("R1_2,STD")
	require.NoError(t, err)
	assert.Equal(t, "R1_2,STD", c.String())

	c, err = ParseCatalog(DefaultCatalog().String())
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().Rules(), c.Rules())

	for _, bad := range []string{"R2", "REP_3", "REP_8-2", "SPC_x+", "R0,R0", "REP_1"} {
		_, err := ParseCatalog(bad)
		assert.ErrorIs(t, err, ErrCatalog, bad)
	}
}

func TestNewCatalogRejectsNone(t *testing.T) {
	assert.Panics(t, func() { NewCatalog(Rule{Tag: None}) })
	c := NewCatalog(Rule{Tag: Rate0})
	assert.Equal(t, 1, c.Len())
}
