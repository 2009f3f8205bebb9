package dice_test

import (
	"testing"

	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

// seqSource replays vals in order, wrapping around. Each value is clamped to n-1.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	if v >= n {
		return n - 1
	}
	return v
}

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestRollResult_String_PanicsWithoutExpression(t *testing.T) {
	assert.Panics(t, func() { _ = dice.RollResult{}.String() })
}

func TestDice_Bounds(t *testing.T) {
	assert.Equal(t, 1, dice.D6(1).MinValue())
	assert.Equal(t, 6, dice.D6(1).MaxValue())
	assert.Equal(t, 2, dice.Dice{Count: 2, Sides: 3}.MinValue())
	assert.Equal(t, 6, dice.Dice{Count: 2, Sides: 3}.MaxValue())
	assert.Equal(t, "3d6", dice.D6(3).String())
}

func TestParse_Forms(t *testing.T) {
	cases := []struct {
		in                    string
		count, sides, modifer int
	}{
		{"d6", 1, 6, 0},
		{"2d6", 2, 6, 0},
		{"2d6+3", 2, 6, 3},
		{"1d6-1", 1, 6, -1},
		{"1D3 + 1", 1, 3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.modifer, e.Modifier)
			assert.Equal(t, tc.in, e.Raw)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "6", "0d6", "2d1", "2dx", "2d6+x"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "expected error for %q", in)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
}

func TestExpression_String(t *testing.T) {
	assert.Equal(t, "2d6 + 3", dice.MustParse("2d6+3").String())
	assert.Equal(t, "1d6 - 1", dice.MustParse("1d6-1").String())
	assert.Equal(t, "1d3 + 0", dice.MustParse("1d3").String())
}

func TestRoll_UsesSource(t *testing.T) {
	src := &seqSource{vals: []int{0, 5}}
	r := dice.Roll(dice.MustParse("2d6+1"), src)
	assert.Equal(t, []int{1, 6}, r.Dice)
	assert.Equal(t, 8, r.Total())
}

func TestRollExpr_ParseError(t *testing.T) {
	_, err := dice.RollExpr("bogus", dice.NewCryptoSource())
	assert.Error(t, err)
}

func TestRollDice_WithinBounds_Property(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		d := dice.Dice{
			Count: rapid.IntRange(1, 6).Draw(rt, "count"),
			Sides: rapid.IntRange(2, 20).Draw(rt, "sides"),
		}
		total := dice.RollDice(d, src).Total()
		assert.GreaterOrEqual(rt, total, d.MinValue())
		assert.LessOrEqual(rt, total, d.MaxValue())
	})
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.Intn(6), b.Intn(6))
	}
}

func TestCryptoSource_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(-1) })
}

func TestRoller_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := dice.NewLoggedRoller(&seqSource{vals: []int{2}}, zap.New(core))

	assert.Equal(t, 6, r.Sum(dice.D6(2)))
	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(6), entries[0].ContextMap()["total"])
}

func TestRoller_NilLogger(t *testing.T) {
	r := dice.NewLoggedRoller(&seqSource{vals: []int{0}}, nil)
	res, err := r.RollExpr("1d6+2")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total())
}

func TestRoller_Die(t *testing.T) {
	r := dice.NewLoggedRoller(&seqSource{vals: []int{0, 19}}, nil)
	assert.Equal(t, 1, r.Die(20))
	assert.Equal(t, 20, r.Die(20))
}
