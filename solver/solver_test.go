package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValIsZeroForUnassignedLiteral(t *testing.T) {
	s := New(3, DefaultOptions())
	assert.EqualValues(t, 0, s.Val(1))
	assert.EqualValues(t, 0, s.Val(-1))
}

func TestFreezeMelt(t *testing.T) {
	s := New(2, DefaultOptions())
	l := IntToLit(1)
	assert.False(t, s.Frozen(l))
	s.Freeze(l)
	assert.True(t, s.Frozen(l))
	assert.True(t, s.Frozen(-l), "freeze pins the variable, not one polarity")
	s.Melt(l)
	assert.False(t, s.Frozen(l))
}

func TestPropagateBinaryClauseForcesImpliedLiteral(t *testing.T) {
	s := New(2, DefaultOptions())
	s.AddClause(NewClause([]Lit{1}))
	s.AddClause(NewClause([]Lit{-1, 2}))

	ok := s.Propagate()

	require.True(t, ok)
	assert.EqualValues(t, 1, s.Val(2))
	assert.EqualValues(t, -1, s.Val(-2))
}

func TestPropagateLongClauseForcesLastUnassignedLiteral(t *testing.T) {
	s := New(3, DefaultOptions())
	s.AddClause(NewClause([]Lit{1, 2, 3}))
	s.assignUnit(-1)
	s.assignUnit(-2)

	ok := s.Propagate()

	require.True(t, ok)
	assert.EqualValues(t, 1, s.Val(3))
}

func TestPropagateDetectsConflictAndLatchesUnsat(t *testing.T) {
	s := New(2, DefaultOptions())
	s.AddClause(NewClause([]Lit{1}))
	s.AddClause(NewClause([]Lit{-1, 2}))
	s.AddClause(NewClause([]Lit{-1, -2}))

	ok := s.Propagate()

	assert.False(t, ok)
	assert.True(t, s.unsat)
	assert.False(t, s.Propagate(), "once latched unsat, Propagate must keep returning false")
}

func TestAssignUnitIsIdempotentWhenAlreadyTrue(t *testing.T) {
	s := New(2, DefaultOptions())
	s.assignUnit(1)
	s.assignUnit(1)
	assert.Equal(t, []Lit{1}, s.trail)
}

func TestAssignUnitPanicsOnContradiction(t *testing.T) {
	s := New(2, DefaultOptions())
	s.assignUnit(1)
	assert.Panics(t, func() { s.assignUnit(-1) })
}

// TestExtendCountsOneExtensionPerCallRegardlessOfFlips mirrors
// original_source extend.cpp's stats.extensions, incremented once per call
// to Extend independent of how many (or how few) literals it flips.
func TestExtendCountsOneExtensionPerCallRegardlessOfFlips(t *testing.T) {
	s := New(2, DefaultOptions())

	model := s.Extend([]bool{false, false, false})
	assert.Equal(t, []bool{false, false, false}, model, "no extension blocks recorded, nothing to flip")
	assert.EqualValues(t, 1, s.Stats.Extensions)
	assert.EqualValues(t, 0, s.Stats.Extended)

	s.Extend([]bool{false, false, false})
	assert.EqualValues(t, 2, s.Stats.Extensions, "each call counts once, even with an empty extension stack")
}
