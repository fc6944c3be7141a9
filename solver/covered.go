package solver

// coveredPropagate runs one round of covered-literal propagation on lit
// (val(lit) < 0 required): it looks at every not-yet-garbage clause in
// occ's occurrence list of -lit and intersects, across all of them, the
// set of unassigned non-blocking literals they contain. A frozen lit is
// skipped outright (frozen literals never contribute new covered
// literals). Grounded on original_source cover.cpp's
// Internal::cover_propagate_covered; the mark/unmark bookkeeping that
// implements the running intersection is translated literally since it is
// the one part of this algorithm that is genuinely subtle.
func (s *Solver) coveredPropagate(lit Lit, occ *occLists, cv *coveror) bool {
	assertf(s.vals.val(lit) < 0, "solver: coveredPropagate precondition val(lit)<0 violated for %d", lit.Int())
	if s.Frozen(lit) {
		return false
	}
	s.Stats.CoverPropagations++
	assertf(len(cv.intersection) == 0, "solver: coveredPropagate entered with a dirty intersection scratch")

	os := occ.at(-lit)
	first := true
	rotateAt := -1

	for idx := 0; idx < len(os); idx++ {
		c := os[idx]
		if c.Garbage() {
			continue
		}
		blocked := false
		for _, other := range c.Lits() {
			if other == -lit {
				continue
			}
			tmp := s.vals.val(other)
			if tmp < 0 {
				continue
			}
			if tmp > 0 {
				blocked = true
				break
			}
			if first {
				cv.intersection = append(cv.intersection, other)
				s.vals.setMark(other)
			} else if s.vals.mark(other) > 0 {
				s.vals.unmark(other)
			}
		}
		if blocked {
			s.vals.unmarkAll(cv.intersection)
			cv.intersection = cv.intersection[:0]
			continue
		}
		if !first {
			j := 0
			for _, other := range cv.intersection {
				if s.vals.mark(other) > 0 {
					// still marked: not confirmed present in this clause, drop it
					s.vals.unmark(other)
					continue
				}
				s.vals.setMark(other)
				cv.intersection[j] = other
				j++
			}
			cv.intersection = cv.intersection[:j]
		}
		first = false
		if len(cv.intersection) == 0 {
			rotateAt = idx
			break
		}
	}
	if rotateAt >= 0 {
		occ.rotateToFront(-lit, rotateAt)
	}

	res := false
	switch {
	case first:
		pushCoverExtension(&cv.extend, lit, cv.clause, cv.covered)
		res = true
	case len(cv.intersection) == 0:
	default:
		s.coveredLiteralAddition(lit, cv)
	}

	s.vals.unmarkAll(cv.intersection)
	cv.intersection = cv.intersection[:0]
	return res
}
