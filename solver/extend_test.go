package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtendReconstructsBlockedClauseModel mirrors spec.md's R1 round-trip
// law on the smallest interesting case: a single blocked clause (a ∨ ¬b)
// eliminated with witness {a}, and a model of the reduced formula that
// leaves a false.
func TestExtendReconstructsBlockedClauseModel(t *testing.T) {
	s := New(2, DefaultOptions())
	a, b := IntToLit(1), IntToLit(2)
	s.PushBlock([]Lit{a, -b}, []Lit{a})

	reduced := []bool{false, false, true} // index 0 unused, a=false, b=true
	got := s.Extend(reduced)

	require.Len(t, got, 3)
	assert.True(t, got[1], "witness flip should have set a to true")
	assert.True(t, got[2], "b's value from the reduced model must be preserved")
	assert.False(t, reduced[1], "Extend must not mutate its input model")
	assert.EqualValues(t, 1, s.Stats.Extended)
}

// TestExtendLeavesSatisfiedBlockAlone checks the "satisfied" branch: when
// the reduced model already satisfies the weakened clause, no witness
// literal is flipped.
func TestExtendLeavesSatisfiedBlockAlone(t *testing.T) {
	s := New(2, DefaultOptions())
	a, b := IntToLit(1), IntToLit(2)
	s.PushBlock([]Lit{a, b}, []Lit{a})

	reduced := []bool{false, true, false} // a=true already satisfies the clause
	got := s.Extend(reduced)

	assert.True(t, got[1])
	assert.False(t, got[2])
	assert.Zero(t, s.Stats.Extended)
}

func TestExtendCountsWeakenedStats(t *testing.T) {
	s := New(3, DefaultOptions())
	s.PushBlock([]Lit{1, 2, 3}, []Lit{1})
	s.PushBlock([]Lit{-1, 2}, []Lit{-1})

	assert.EqualValues(t, 2, s.Stats.Weakened)
	assert.EqualValues(t, 5, s.Stats.WeakenedLen)
}

func TestTraverseWitnessesVisitsInOriginalOrder(t *testing.T) {
	s := New(2, DefaultOptions())
	a, b := IntToLit(1), IntToLit(2)
	s.PushBlock([]Lit{a, -b}, []Lit{a})

	var gotClause, gotWitness []Lit
	calls := 0
	never := func(Lit) int8 { return 0 }
	ok := s.TraverseWitnesses(never, func(clause, witness []Lit) bool {
		calls++
		gotClause = append([]Lit(nil), clause...)
		gotWitness = append([]Lit(nil), witness...)
		return true
	})

	require.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []Lit{a, -b}, gotClause)
	assert.Equal(t, []Lit{a}, gotWitness)
}

func TestTraverseWitnessesSkipsFixedSatisfiedBlocks(t *testing.T) {
	s := New(2, DefaultOptions())
	a, b := IntToLit(1), IntToLit(2)
	s.PushBlock([]Lit{a, -b}, []Lit{a})

	fixedTrue := func(l Lit) int8 {
		if l == a {
			return 1
		}
		return 0
	}
	calls := 0
	ok := s.TraverseWitnesses(fixedTrue, func(clause, witness []Lit) bool {
		calls++
		return true
	})

	require.True(t, ok)
	assert.Zero(t, calls, "a block already satisfied by a fixed literal must be skipped")
}

func TestTraverseWitnessesStopsEarly(t *testing.T) {
	s := New(2, DefaultOptions())
	a, b := IntToLit(1), IntToLit(2)
	s.PushBlock([]Lit{a, b}, []Lit{a})
	s.PushBlock([]Lit{-a, b}, []Lit{-a})

	calls := 0
	never := func(Lit) int8 { return 0 }
	ok := s.TraverseWitnesses(never, func(clause, witness []Lit) bool {
		calls++
		return false
	})

	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestExtensionStackReplayBracketsMultipleCoveredAdditions(t *testing.T) {
	stats := &Stats{}
	e := newExtensionStack(stats)

	// two raw "0 pivot body..." runs, as cover_clause would append for a
	// pivot plus one covered-literal-addition pivot
	raw := []Lit{0, 1, 2, 3, 0, -2, 3}
	e.replay(raw)

	assert.Equal(t, []Lit{0, 1, 0, 1, 2, 3, 0, -2, 0, -2, 3}, e.stack)
	assert.EqualValues(t, 2, stats.Weakened)
}
