package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoveredPropagateVacuouslyBlockedWhenNoResolvents covers the "first"
// branch: -lit occurs in no clause at all, so the resolvent intersection is
// vacuously the whole candidate clause and lit is trivially covered.
func TestCoveredPropagateVacuouslyBlockedWhenNoResolvents(t *testing.T) {
	s := New(3, DefaultOptions())
	lit, other := IntToLit(3), IntToLit(1)
	s.vals.set(-lit) // val(lit) < 0, precondition

	occ := newOccLists(3)
	cv := &coveror{clause: []Lit{lit, other}}

	got := s.coveredPropagate(lit, occ, cv)

	assert.True(t, got)
	assert.Equal(t, []Lit{0, lit, other}, cv.extend)
	assert.True(t, s.vals.marksClear())
}

// TestCoveredPropagateEmptiesIntersectionAndRotates covers the case where
// two occurring clauses share no common resolvent literal: the running
// intersection collapses to empty and the clause that emptied it is
// rotated to the front of the occurrence list for next time.
func TestCoveredPropagateEmptiesIntersectionAndRotates(t *testing.T) {
	s := New(6, DefaultOptions())
	lit := IntToLit(3)
	c0 := NewClause([]Lit{-lit, 5})
	c1 := NewClause([]Lit{-lit, 6})
	occ := newOccLists(6)
	occ.add(-lit, c0)
	occ.add(-lit, c1)
	s.vals.set(-lit)

	cv := &coveror{clause: []Lit{lit}}
	got := s.coveredPropagate(lit, occ, cv)

	assert.False(t, got)
	assert.Empty(t, cv.intersection)
	assert.True(t, s.vals.marksClear())
	require.Len(t, occ.at(-lit), 2)
	assert.Same(t, c1, occ.at(-lit)[0], "the clause that emptied the intersection is rotated to the front")
}

// TestCoveredPropagateAddsSurvivingIntersectionLiteral covers the default
// branch: a literal survives in every occurring clause's resolvent, so it
// gets covered-literal-added.
func TestCoveredPropagateAddsSurvivingIntersectionLiteral(t *testing.T) {
	s := New(9, DefaultOptions())
	s.level = 1
	lit := IntToLit(3)
	shared := IntToLit(5)
	c0 := NewClause([]Lit{-lit, shared})
	c1 := NewClause([]Lit{-lit, shared, 7})
	occ := newOccLists(9)
	occ.add(-lit, c0)
	occ.add(-lit, c1)
	s.vals.set(-lit)

	cv := &coveror{clause: []Lit{lit, 9}}
	got := s.coveredPropagate(lit, occ, cv)

	assert.False(t, got)
	assert.Equal(t, []Lit{shared}, cv.covered)
	assert.Equal(t, []Lit{shared}, cv.added)
	assert.Equal(t, []Lit{0, lit, Lit(9)}, cv.extend)
	assert.EqualValues(t, -1, s.Val(shared))
	assert.True(t, s.vals.marksClear())
}
