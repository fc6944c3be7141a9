package solver

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// coveror is the scoped, per-candidate-clause scratch state cover_clause
// needs while it hunts for a covering resolution: literals it has
// tentatively assigned (added), the candidate clause's own unassigned
// literals (clause), the covered literals discovered along the way
// (covered), the extension-block prefix being accumulated (extend), and
// the running resolvent-literal intersection (intersection) plus the two
// cursors into added that let asymmetric and covered propagation share the
// same worklist without either one racing ahead of the other. Grounded on
// original_source cover.cpp's Coveror struct; reused across every
// candidate in one Cover() call, cleared at the end of each coverClause.
type coveror struct {
	added        []Lit
	clause       []Lit
	extend       []Lit
	covered      []Lit
	intersection []Lit
	next         struct {
		asymmetric int
		covered    int
	}
}

// asymmetricLiteralAddition assumes lit is false (so -lit is true) at the
// synthetic decision level cover_clause runs at, and records it in
// coveror.added so both propagators will eventually visit it.
func (s *Solver) asymmetricLiteralAddition(lit Lit, cv *coveror) {
	assertf(s.vals.val(lit) == 0, "solver: asymmetric literal addition on already-assigned literal %d", lit.Int())
	s.vals.set(-lit)
	cv.added = append(cv.added, lit)
}

// coveredLiteralAddition records the extension-block prefix for lit, then
// assumes every literal in the current resolvent intersection false, the
// generalization asymmetric_literal_addition doesn't cover (spec.md §4.2
// "covered literal addition").
func (s *Solver) coveredLiteralAddition(lit Lit, cv *coveror) {
	assertf(s.level == 1, "solver: coveredLiteralAddition outside the synthetic decision level")
	pushCoverExtension(&cv.extend, lit, cv.clause, cv.covered)
	for _, other := range cv.intersection {
		assertf(s.vals.val(other) == 0, "solver: covered literal addition on already-assigned literal %d", other.Int())
		s.vals.set(-other)
		cv.covered = append(cv.covered, other)
		cv.added = append(cv.added, other)
	}
}

// pushCoverExtension writes the "0 lit body..." prefix of one extension
// block into scratch: lit itself as the witness, followed by every literal
// of clause and covered except lit (which must appear in their union
// exactly once). Grounded on original_source cover.cpp's
// Internal::cover_push_extension; the caller (coverClause) later replays
// one or more of these runs into properly bracketed blocks on the
// persistent extension stack via extensionStack.replay.
func pushCoverExtension(scratch *[]Lit, lit Lit, clause, covered []Lit) {
	*scratch = append(*scratch, 0, lit)
	found := false
	for _, other := range clause {
		if other == lit {
			assertf(!found, "solver: pivot literal %d appears twice while building an extension block", lit.Int())
			found = true
			continue
		}
		*scratch = append(*scratch, other)
	}
	for _, other := range covered {
		if other == lit {
			assertf(!found, "solver: pivot literal %d appears twice while building an extension block", lit.Int())
			found = true
			continue
		}
		*scratch = append(*scratch, other)
	}
	assertf(found, "solver: pivot literal %d not found among candidate clause or covered literals", lit.Int())
}

// coverClause tries to eliminate c as a covered (or plain asymmetric
// tautological) clause: it assumes every currently-unassigned literal of c
// false at synthetic decision level 1, then runs the asymmetric and
// covered propagators to a fixed point, interleaved through cv's two
// cursors. If the fixed point is tautological, c is marked garbage and its
// extension-block prefix is replayed onto the persistent stack. Grounded
// on original_source cover.cpp's Internal::cover_clause.
func (s *Solver) coverClause(c *Clause, wl *watchList, occ *occLists, cv *coveror) bool {
	assertf(!c.Garbage(), "solver: coverClause called on an already-garbage clause")

	satisfied := false
	for _, lit := range c.Lits() {
		if s.vals.val(lit) > 0 {
			satisfied = true
			break
		}
	}
	if satisfied {
		c.MarkGarbage()
		return false
	}

	assertf(len(cv.added) == 0 && len(cv.extend) == 0 && len(cv.clause) == 0 && len(cv.covered) == 0,
		"solver: coverClause entered with dirty coveror scratch state")
	assertf(s.level == 0, "solver: coverClause entered at nonzero decision level %d", s.level)
	s.level = 1
	defer func() { s.level = 0 }()

	for _, lit := range c.Lits() {
		if s.vals.val(lit) == 0 {
			s.asymmetricLiteralAddition(lit, cv)
			cv.clause = append(cv.clause, lit)
		}
	}

	tautological := false
	cv.next.asymmetric, cv.next.covered = 0, 0
loop:
	for !tautological {
		switch {
		case cv.next.asymmetric < len(cv.added):
			for !tautological && cv.next.asymmetric < len(cv.added) {
				lit := cv.added[cv.next.asymmetric]
				cv.next.asymmetric++
				tautological = s.asymmetricPropagate(lit, wl, c, cv)
			}
		case cv.next.covered < len(cv.added):
			lit := cv.added[cv.next.covered]
			cv.next.covered++
			tautological = s.coveredPropagate(lit, occ, cv)
		default:
			break loop
		}
	}

	if tautological {
		if len(cv.covered) == 0 {
			s.Stats.CoverAsymmetric++
		} else {
			s.Stats.CoverBlocked++
		}
		s.Stats.CoverTotal++
		c.MarkGarbage()
		s.ext.replay(cv.extend)
	}

	for _, lit := range cv.added {
		s.vals.unset(lit)
	}
	cv.covered = cv.covered[:0]
	cv.extend = cv.extend[:0]
	cv.clause = cv.clause[:0]
	cv.added = cv.added[:0]

	return tautological
}

// Cover runs one round of covered clause elimination: it schedules every
// not-yet-tried irredundant clause together with the previously tried ones
// (or, once every clause has been tried once, resets the tried flags and
// schedules every clause again) and calls coverClause on each until the
// effort budget or a terminator interrupt stops it. It returns the number
// of clauses eliminated this round. Grounded on original_source
// cover.cpp's Internal::cover.
func (s *Solver) Cover() (removed int, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*invariantError)
			if !ok {
				panic(r)
			}
			err = wrapf(ie, "solver: Cover round %d aborted on invariant violation", s.Stats.CoverCount+1)
		}
	}()

	if !s.opts.Cover {
		return 0, nil
	}
	if s.opts.RestoreFlush {
		// spec.md §9's open question: cover and restoreflush empirically
		// disagree about witness reconstruction in rare traces. The guard
		// is kept exactly as the source keeps it.
		return 0, nil
	}
	if s.unsat || s.terminating() {
		return 0, nil
	}

	if s.propagated < len(s.trail) {
		if !s.Propagate() {
			return 0, nil
		}
	}
	if s.unsat {
		return 0, nil
	}
	assertf(s.propagated == len(s.trail), "solver: Cover entered with a stale propagation cursor")

	s.Stats.CoverCount++

	wl := newWatchList(s.maxVar)
	for _, c := range s.clauses {
		if c.Garbage() || c.Redundant() || c.Len() < 2 {
			continue
		}
		wl.watch(c)
	}

	delta := int64(float64(s.Stats.SearchPropagations) * 1e-3 * float64(s.opts.CoverRelEff))
	if delta < s.opts.CoverMinEff {
		delta = s.opts.CoverMinEff
	}
	if delta > s.opts.CoverMaxEff {
		delta = s.opts.CoverMaxEff
	}
	if min := int64(2 * s.ActiveVariables()); delta < min {
		delta = min
	}
	limit := s.Stats.CoverPropagations + delta

	s.log.phase("cover", logrus.Fields{"round": s.Stats.CoverCount, "budget": delta},
		"covered clause elimination limit computed")

	occ := newOccLists(s.maxVar)
	var schedule []*Clause
	untried := 0

	for _, c := range s.clauses {
		if c.Garbage() || c.Redundant() {
			continue
		}
		satisfied, allFrozen := false, true
		for _, lit := range c.Lits() {
			if s.vals.val(lit) > 0 {
				satisfied = true
				break
			}
			if allFrozen && !s.Frozen(lit) {
				allFrozen = false
			}
		}
		if satisfied {
			c.MarkGarbage()
			continue
		}
		assertf(c.Len() > 1, "solver: unpropagated unit clause %s reached Cover scheduling", c)
		if allFrozen {
			c.SetFrozen(true)
			continue
		}
		for _, lit := range c.Lits() {
			occ.add(lit, c)
		}
		if c.Covered() {
			continue
		}
		schedule = append(schedule, c)
		untried++
	}

	if len(schedule) == 0 {
		s.log.trace("cover", nil, "no previously untried clause left")
		for _, c := range s.clauses {
			if c.Garbage() || c.Redundant() {
				continue
			}
			if c.Frozen() {
				c.SetFrozen(false)
				continue
			}
			c.SetCovered(false)
			schedule = append(schedule, c)
		}
	} else {
		for _, c := range s.clauses {
			if c.Garbage() || c.Redundant() {
				continue
			}
			if c.Frozen() {
				c.SetFrozen(false)
				continue
			}
			if !c.Covered() {
				continue
			}
			schedule = append(schedule, c)
		}
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		a, b := schedule[i], schedule[j]
		if a.Covered() != b.Covered() {
			return a.Covered()
		}
		return a.Len() < b.Len()
	})

	occ.sortBySize()

	scheduled := len(schedule)
	covered := 0
	cv := &coveror{}
	for !s.terminating() && len(schedule) > 0 && s.Stats.CoverPropagations < limit {
		c := schedule[len(schedule)-1]
		schedule = schedule[:len(schedule)-1]
		c.SetCovered(true)
		if s.coverClause(c, wl, occ, cv) {
			covered++
		}
	}

	tried := scheduled - len(schedule)
	s.log.phase("cover", logrus.Fields{
		"round":     s.Stats.CoverCount,
		"scheduled": scheduled,
		"untried":   untried,
		"tried":     tried,
		"covered":   covered,
		"remaining": len(schedule),
	}, "covered clause elimination round finished")

	return covered, nil
}
