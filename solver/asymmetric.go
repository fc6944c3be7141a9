package solver

// asymmetricPropagate runs one round of asymmetric literal propagation on
// lit (the caller guarantees val(lit) < 0), scanning wl's watch list of
// lit exactly the way propagateOn does, but specialized for CCE: it never
// touches the trail, it ignores the candidate clause itself, and finding a
// forced literal pushes it into cv.added instead of assigning it directly.
// It returns true the moment a genuine subsuming clause is found (a
// binary or long clause with its other watched literal already false).
// Grounded on original_source cover.cpp's cover_propagate_asymmetric,
// itself "copied and adapted from propagate" — the pos-cursor
// resume-then-wrap-to-2 search is preserved exactly.
func (s *Solver) asymmetricPropagate(lit Lit, wl *watchList, ignore *Clause, cv *coveror) bool {
	assertf(s.vals.val(lit) < 0, "solver: asymmetricPropagate precondition val(lit)<0 violated for %d", lit.Int())
	s.Stats.CoverPropagations++

	subsumed := false
	ws := wl.at(lit)
	i, j := 0, 0
	for !subsumed && i < len(ws) {
		w := ws[i]
		ws[j] = w
		i, j = i+1, j+1
		if w.Clause == ignore {
			continue
		}
		b := s.vals.val(w.Blit)
		if b > 0 {
			continue
		}
		c := w.Clause
		if c.Garbage() {
			j--
			continue
		}
		if c.Binary() {
			if b < 0 {
				subsumed = true
			} else {
				s.asymmetricLiteralAddition(-w.Blit, cv)
			}
			continue
		}

		lits := c.Lits()
		other := lits[0] ^ lits[1] ^ lit
		lits[0], lits[1] = other, lit
		u := s.vals.val(other)
		if u > 0 {
			ws[j-1].Blit = other
			continue
		}

		size := c.Len()
		pos := c.Pos()
		assertf(pos >= 2 && pos <= size, "solver: clause pos %d out of range [2,%d]", pos, size)
		k := pos
		var v int8 = -1
		var r Lit
		for k < size {
			r = lits[k]
			v = s.vals.val(r)
			if v >= 0 {
				break
			}
			k++
		}
		if v < 0 {
			k = 2
			for k < pos {
				r = lits[k]
				v = s.vals.val(r)
				if v >= 0 {
					break
				}
				k++
			}
		}
		c.SetPos(k)

		switch {
		case v > 0:
			ws[j-1].Blit = r
		case v == 0:
			lits[1] = r
			lits[k] = lit
			j--
			wl.add(r, c, lit)
		case u == 0:
			s.asymmetricLiteralAddition(-other, cv)
		default:
			subsumed = true
		}
	}
	for i < len(ws) {
		ws[j] = ws[i]
		i, j = i+1, j+1
	}
	wl.set(lit, ws[:j])
	return subsumed
}
