package solver

import "github.com/sirupsen/logrus"

// TransRed runs one round of transitive reduction over the binary
// implication graph. For each not-yet-checked binary clause (¬src ∨ dst)
// that is not a redundant hyper binary, it searches, by BFS through the
// other binary clauses, for a different path from src to dst (starting from
// whichever of src and ¬dst has the longer outgoing watch list, src on a
// tie); using only irredundant edges when the
// candidate clause itself is irredundant. Finding such a path makes the
// clause transitively redundant; finding both a literal and its negation
// reachable from src along the way makes src a failed literal, and forces
// -src as a unit. Grounded on original_source transred.cpp's
// Internal::transred.
func (s *Solver) TransRed() (removed int, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*invariantError)
			if !ok {
				panic(r)
			}
			err = wrapf(ie, "solver: TransRed round %d aborted on invariant violation", s.Stats.TransReds+1)
		}
	}()

	if !s.opts.TransRed {
		return 0, nil
	}
	if s.unsat || s.terminating() {
		return 0, nil
	}
	if len(s.clauses) == 0 {
		return 0, nil
	}
	assertf(s.level == 0, "solver: TransRed entered at nonzero decision level %d", s.level)

	s.Stats.TransReds++

	limit := s.Stats.SearchPropagations - s.last.transredPropagations
	limit = int64(float64(limit) * 1e-3 * float64(s.opts.TransRedRelEff))
	if limit < s.opts.TransRedMinEff {
		limit = s.opts.TransRedMinEff
	}
	if limit > s.opts.TransRedMaxEff {
		limit = s.opts.TransRedMaxEff
	}
	s.log.phase("transred", logrus.Fields{"round": s.Stats.TransReds, "budget": limit},
		"transitive reduction limit computed")

	isCandidate := func(c *Clause) bool {
		return !c.Garbage() && c.Len() == 2 && !(c.Redundant() && c.Hyper())
	}

	// Find the first clause not yet checked this "epoch"; if every
	// candidate has already been checked, unmark them all and start over.
	start := 0
	for start < len(s.clauses) {
		c := s.clauses[start]
		if isCandidate(c) && !c.Transred() {
			break
		}
		start++
	}
	if start == len(s.clauses) {
		s.log.trace("transred", nil, "rescheduling all clauses since no clauses to check left")
		for _, c := range s.clauses {
			c.SetTransred(false)
		}
		start = 0
	}

	wl := newWatchList(s.maxVar)
	for _, c := range s.clauses {
		if c.Garbage() || c.Len() < 2 {
			continue
		}
		wl.watch(c)
	}
	wl.SortBinariesFirst()

	var work []Lit
	var propagations, units, removedCount int64

	idx := start
	for !s.unsat && idx < len(s.clauses) && !s.terminating() && propagations < limit {
		c := s.clauses[idx]
		idx++
		if !isCandidate(c) || c.Transred() {
			continue
		}
		c.SetTransred(true)

		src := -c.First()
		dst := c.Second()
		if s.vals.val(src) != 0 || s.vals.val(dst) != 0 {
			continue
		}
		if len(wl.at(-src)) < len(wl.at(dst)) {
			src, dst = -dst, -src
		}

		irredundant := !c.Redundant()

		work = work[:0]
		s.vals.setMark(src)
		work = append(work, src)

		transitive, failed := false, false
		j := 0
	bfs:
		for !transitive && !failed && j < len(work) {
			lit := work[j]
			j++
			propagations++
			for _, w := range wl.at(-lit) {
				if !w.binary() {
					break // watches are sorted binaries-first
				}
				d := w.Clause
				if d == c {
					continue
				}
				if irredundant && d.Redundant() {
					continue
				}
				if d.Garbage() {
					continue
				}
				other := w.Blit
				if other == dst {
					transitive = true
					break bfs
				}
				if s.vals.mark(other) > 0 {
					continue
				}
				if s.vals.mark(-other) > 0 {
					failed = true
					break bfs
				}
				s.vals.setMark(other)
				work = append(work, other)
			}
		}

		for _, lit := range work {
			s.vals.unmark(lit)
		}

		switch {
		case transitive:
			removedCount++
			s.Stats.Transitive++
			c.MarkGarbage()
		case failed:
			units++
			s.Stats.Failed++
			s.Stats.TransRedUnits++
			s.assignUnit(-src)
			if !s.Propagate() {
				s.unsat = true
			}
		}
	}

	s.last.transredPropagations = s.Stats.SearchPropagations
	s.Stats.TransRedPropagations += propagations

	s.log.phase("transred", logrus.Fields{
		"round":   s.Stats.TransReds,
		"removed": removedCount,
		"units":   units,
	}, "transitive reduction round finished")

	return int(removedCount), nil
}
