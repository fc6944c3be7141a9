package solver

// This file implements the "Literal/Clause store" component of spec.md
// §2: variable indexing and the arena that owns every clause. Watches and
// occurrences (watch.go, occurs.go) never own a Clause; they hold plain
// *Clause pointers into this arena, per spec.md §9's cyclic-reference note.

// AddClause adds an irredundant clause to the database and installs its
// watches (or, for a unit clause, assigns its literal at level 0 for
// Propagate to pick up; a unit whose literal is already false panics
// through assignUnit's assertion). Clauses of size 0 are
// rejected outright: the caller is expected to have caught the empty
// clause before reaching this API, matching spec.md §8's boundary case
// that unit clauses are "expected to have been propagated out" by the time
// inprocessing sees them.
func (s *Solver) AddClause(c *Clause) {
	assertf(c.Len() > 0, "solver: cannot add an empty clause")
	s.clauses = append(s.clauses, c)
	switch {
	case c.Len() == 1:
		s.assignUnit(c.First())
	default:
		s.wl.watch(c)
	}
}

// Clauses returns every clause ever added to the database, including ones
// already marked garbage. Callers may call Clause.MarkGarbage on entries
// (the "mutation rights (mark-garbage only)" spec.md §6 grants clause
// iterators) but must not otherwise mutate a clause found this way.
func (s *Solver) Clauses() []*Clause { return s.clauses }

// CollectGarbage compacts the clause arena, physically dropping every
// clause marked garbage. Garbage collection is deferred (spec.md §9):
// marking is cheap and happens throughout Cover/TransRed, compaction is
// this separate pass the embedder calls when it is convenient.
func (s *Solver) CollectGarbage() int {
	kept := s.clauses[:0]
	removed := 0
	for _, c := range s.clauses {
		if c.Garbage() {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	s.clauses = kept
	return removed
}

// active reports whether v currently carries a value-bearing role in the
// formula: unassigned and within the variable range the solver was built
// with. This core never eliminates or substitutes variables, so "active"
// reduces to "unassigned", unlike full CaDiCaL where it also excludes
// eliminated/substituted variables.
func (s *Solver) active(v Var) bool {
	return v >= 1 && int(v) <= s.maxVar && s.vals.val(v.Lit()) == 0
}

// ActiveVariables returns the number of currently unassigned variables,
// used to lower-bound the CCE and transitive-reduction effort budgets
// (spec.md §4.4: "at least 2 * active_variables").
func (s *Solver) ActiveVariables() int {
	n := 0
	for v := Var(1); int(v) <= s.maxVar; v++ {
		if s.active(v) {
			n++
		}
	}
	return n
}
