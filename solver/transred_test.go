package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransRedRemovesTransitiveEdge covers the classic case: a -> b -> c
// already implies a -> c, so the direct edge (¬a ∨ c) is transitively
// redundant and gets marked garbage, while the two edges that make up the
// path it duplicates are left untouched.
func TestTransRedRemovesTransitiveEdge(t *testing.T) {
	s := New(3, DefaultOptions())
	ab := NewClause([]Lit{-1, 2}) // a -> b
	bc := NewClause([]Lit{-2, 3}) // b -> c
	ac := NewClause([]Lit{-1, 3}) // a -> c, redundant given the path above
	s.AddClause(ab)
	s.AddClause(bc)
	s.AddClause(ac)

	removed, err := s.TransRed()

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.False(t, ab.Garbage())
	assert.False(t, bc.Garbage())
	assert.True(t, ac.Garbage())
	assert.EqualValues(t, 1, s.Stats.Transitive)
	assert.EqualValues(t, 0, s.Stats.Failed)
}

// TestTransRedDetectsFailedLiteral covers the case where a single literal's
// BFS reaches both some literal and its negation through two independent
// binary clauses: a forces both b and ¬b, so ¬a is derived as a unit and no
// clause is removed.
func TestTransRedDetectsFailedLiteral(t *testing.T) {
	s := New(5, DefaultOptions())
	f := NewClause([]Lit{-1, 5})  // a -> z, the candidate whose src triggers the BFS
	d1 := NewClause([]Lit{-1, 2}) // a -> b
	d2 := NewClause([]Lit{-1, -2}) // a -> ¬b
	s.AddClause(f)
	s.AddClause(d1)
	s.AddClause(d2)

	removed, err := s.TransRed()

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.False(t, f.Garbage())
	assert.False(t, d1.Garbage())
	assert.False(t, d2.Garbage())
	assert.EqualValues(t, 1, s.Stats.Failed)
	assert.EqualValues(t, 1, s.Stats.TransRedUnits)
	assert.EqualValues(t, 0, s.Stats.Transitive)
	assert.EqualValues(t, -1, s.Val(1))
	assert.False(t, s.unsat)
}

// TestTransRedReturnsWrappedErrorOnInvariantViolation forces TransRed's own
// entry assertion (decision level must be 0) to fail and checks the panic
// is recovered at TransRed's boundary and returned as a wrapped error
// instead of propagating past the caller.
func TestTransRedReturnsWrappedErrorOnInvariantViolation(t *testing.T) {
	s := New(2, DefaultOptions())
	s.AddClause(NewClause([]Lit{-1, 2}))
	s.level = 1

	removed, err := s.TransRed()

	assert.Zero(t, removed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TransRed entered at nonzero decision level")
}

func TestTransRedIsNoopWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.TransRed = false
	s := New(3, opts)
	ab := NewClause([]Lit{-1, 2})
	bc := NewClause([]Lit{-2, 3})
	ac := NewClause([]Lit{-1, 3})
	s.AddClause(ab)
	s.AddClause(bc)
	s.AddClause(ac)

	removed, err := s.TransRed()

	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.False(t, ac.Garbage(), "TransRed must not run at all when disabled")
}

func TestTransRedNoopWhenUnsat(t *testing.T) {
	s := New(2, DefaultOptions())
	s.AddClause(NewClause([]Lit{-1, 2}))
	s.unsat = true

	removed, err := s.TransRed()

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestTransRedNoopWithoutClauses(t *testing.T) {
	s := New(2, DefaultOptions())
	removed, err := s.TransRed()
	require.NoError(t, err)
	assert.Zero(t, removed)
}
