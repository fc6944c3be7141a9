package solver

// Stats are counters about inprocessing activity, provided for information
// purposes only, following the teacher's Stats struct convention
// (solver.go's Stats: exported fields, no accessors).
type Stats struct {
	// SearchPropagations is fed in by the embedding search loop (out of
	// scope here) so the CCE/transred effort budgets (spec.md §4.4, §4.6)
	// can be computed relative to overall search progress.
	SearchPropagations int64

	CoverCount      int64
	CoverPropagations int64
	CoverAsymmetric int64
	CoverBlocked    int64
	CoverTotal      int64

	TransReds             int64
	TransRedPropagations  int64
	Transitive            int64
	Failed                int64
	TransRedUnits         int64

	// Weakened and WeakenedLen count extension-stack pushes and their
	// total clause length (original_source extend.cpp's stats.weakened /
	// stats.weakenedlen, SPEC_FULL.md §4.3).
	Weakened    int64
	WeakenedLen int64
	Extensions  int64
	Extended    int64
}

// Solver owns every piece of mutable state spec.md §5 names: the
// assignment vector, the clause database, watch/occurrence lists (built on
// demand), the mark scratch array and the extension stack. Nothing here is
// safe for concurrent use, by design (spec.md §5).
type Solver struct {
	Stats Stats

	opts Options
	log  phaseLogger
	term Terminator

	maxVar int
	vals   *values
	frozen []bool // indexed by Var, 1..maxVar

	level int // synthetic decision level; 0 normally, 1 during cover_clause

	trail      []Lit
	propagated int // trail cursor already handed to propagateOn

	clauses []*Clause
	wl      *watchList // standing watch list used by Propagate/AddClause

	ext *extensionStack

	reluctant Reluctant

	unsat bool

	last struct {
		transredPropagations int64
	}
}

// New returns a Solver for a formula over variables 1..maxVar, using opts
// (DefaultOptions() if the caller wants CaDiCaL's published defaults).
func New(maxVar int, opts Options) *Solver {
	assertf(maxVar >= 0, "solver: maxVar must be non-negative, got %d", maxVar)
	s := &Solver{
		opts:   opts,
		log:    newPhaseLogger(&opts),
		term:   neverTerminate{},
		maxVar: maxVar,
		vals:   newValues(maxVar),
		frozen: make([]bool, maxVar+1),
		wl:     newWatchList(maxVar),
	}
	s.ext = newExtensionStack(&s.Stats)
	s.reluctant.Enable(opts.RestartPeriod, opts.RestartCeiling)
	return s
}

// SetTerminator installs the cooperative cancellation callback spec.md §5
// describes. A nil terminator restores the "never terminate" default.
func (s *Solver) SetTerminator(t Terminator) {
	if t == nil {
		t = neverTerminate{}
	}
	s.term = t
}

// terminating polls the installed Terminator; every loop in this package
// that spec.md marks as a "designated safe point" calls this, never the
// raw Terminator, so a nil terminator is never a special case at call
// sites.
func (s *Solver) terminating() bool { return s.term.Terminating() }

// Val returns {-1, 0, +1} for lit: the ternary assignment contract spec.md
// §6 names ("val(l) returns {-1, 0, +1}").
func (s *Solver) Val(lit Lit) int8 { return s.vals.val(lit) }

// Frozen reports whether lit's variable is pinned by the outside world
// (spec.md §6 "frozen(l) signals literals the outside world has pinned").
func (s *Solver) Frozen(lit Lit) bool { return s.frozen[lit.Var()] }

// Freeze pins lit's variable so CCE will never eliminate a clause that
// needs it, and Melt reverses that.
func (s *Solver) Freeze(lit Lit)   { s.frozen[lit.Var()] = true }
func (s *Solver) Melt(lit Lit)     { s.frozen[lit.Var()] = false }

// assignUnit assigns lit at level 0, per spec.md §6 "assign_unit(l) at
// level 0". It is the caller's responsibility to know lit is not already
// assigned to the contrary value: a unit whose literal is already false
// fails an assertion (panics) at once. Assigning an already-true lit is a
// no-op.
func (s *Solver) assignUnit(lit Lit) {
	assertf(s.vals.val(lit) == 0 || s.vals.val(lit) > 0,
		"solver: assignUnit(%d) contradicts existing assignment", lit.Int())
	if s.vals.val(lit) > 0 {
		return
	}
	s.vals.set(lit)
	s.trail = append(s.trail, lit)
}

// Propagate runs the standard CDCL unit-propagation contract spec.md §6
// names ("propagate() runs the standard CDCL propagator"), over every
// non-garbage clause regardless of redundancy. It returns false iff a
// conflict was derived (the empty clause), in which case the solver is
// latched unsat and every further inprocessing call becomes a no-op
// (spec.md §7, outcome 2).
func (s *Solver) Propagate() bool {
	if s.unsat {
		return false
	}
	conflict := s.propagateOn(s.wl)
	if conflict != nil {
		s.unsat = true
		return false
	}
	return true
}

// propagateOn runs unit propagation from s.propagated to the end of the
// trail against the given watch list, returning the conflicting clause (or
// nil). Grounded on original_source cover.cpp's cover_propagate_asymmetric
// (itself "copied and adapted from propagate"), generalized here to plain
// standard propagation: no ignored clause, and newly derived literals go
// straight onto the trail instead of coveror.added.
func (s *Solver) propagateOn(wl *watchList) *Clause {
	for s.propagated < len(s.trail) {
		lit := s.trail[s.propagated]
		s.propagated++
		f := -lit // the literal that just became false
		ws := wl.at(f)
		i, j := 0, 0
		var conflict *Clause
		for i < len(ws) {
			w := ws[i]
			ws[j] = w
			i, j = i+1, j+1
			if s.vals.val(w.Blit) > 0 {
				continue
			}
			c := w.Clause
			if c.Garbage() {
				j--
				continue
			}
			if c.Binary() {
				other := c.First() ^ c.Second() ^ f
				v := s.vals.val(other)
				if v < 0 {
					conflict = c
					break
				} else if v == 0 {
					ws[j-1].Blit = other
					s.trail = append(s.trail, other)
					s.vals.set(other)
				}
				continue
			}
			lits := c.Lits()
			other := lits[0] ^ lits[1] ^ f
			lits[0], lits[1] = other, f
			ov := s.vals.val(other)
			if ov > 0 {
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
				lits[k] = f
				j--
				wl.add(r, c, f)
			case ov == 0:
				s.trail = append(s.trail, other)
				s.vals.set(other)
			default:
				conflict = c
			}
			if conflict != nil {
				break
			}
		}
		if conflict != nil {
			for i < len(ws) {
				ws[j] = ws[i]
				i, j = i+1, j+1
			}
			wl.set(f, ws[:j])
			return conflict
		}
		wl.set(f, ws[:j])
	}
	return nil
}
