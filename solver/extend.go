package solver

// extensionStack is the append-only "0 witness 0 clause" log spec.md §3
// describes, built during CCE (and any future weakening pass) and
// traversed backward to recover a model of the original formula. Grounded
// on original_source extend.cpp's flat extension vector; kept as a plain
// []Lit slice rather than a struct-of-blocks for the same reason
// watchList/occLists stay flat slices (cache locality, teacher's style).
type extensionStack struct {
	stack []Lit
	stats *Stats
}

func newExtensionStack(stats *Stats) *extensionStack {
	return &extensionStack{stats: stats}
}

func (e *extensionStack) pushZero()          { e.stack = append(e.stack, 0) }
func (e *extensionStack) pushClauseLit(l Lit) { e.stack = append(e.stack, l) }
func (e *extensionStack) pushWitnessLit(l Lit) { e.stack = append(e.stack, l) }

// PushBlock appends one complete block built directly from a caller-
// supplied clause/witness pair, for collaborators that already hold both
// (e.g. a future variable-elimination pass) instead of building one
// literal at a time through cover_push_extension. Grounded on
// original_source extend.cpp's
// push_external_clause_and_witness_on_extension_stack.
func (e *extensionStack) PushBlock(clause, witness []Lit) {
	e.stats.Weakened++
	e.stats.WeakenedLen += int64(len(clause))
	e.pushZero()
	for _, l := range witness {
		e.pushWitnessLit(l)
	}
	e.pushZero()
	for _, l := range clause {
		e.pushClauseLit(l)
	}
}

// replay rewrites a raw run of cover_push_extension calls (repeated
// "0 pivot body..." segments, one per covered-literal addition) into
// properly bracketed "0 witness 0 clause" blocks and appends them to the
// persistent stack. Grounded on original_source cover.cpp's cover_clause
// replay loop (the "prev" tracking over coveror.extend).
func (e *extensionStack) replay(raw []Lit) {
	hadPrev, prevZero := false, false
	for _, other := range raw {
		if hadPrev && prevZero {
			e.pushZero()
			e.pushWitnessLit(other)
			e.pushZero()
			e.stats.Weakened++
		}
		if other != 0 {
			e.pushClauseLit(other)
			e.stats.WeakenedLen++
		}
		hadPrev = true
		prevZero = other == 0
	}
}

// modelVal reports the ternary value of l under model, indexed by Var.
func modelVal(model []bool, l Lit) int8 {
	if model[l.Var()] == l.IsPositive() {
		return 1
	}
	return -1
}

func reverseLits(lits []Lit) {
	for i, j := 0, len(lits)-1; i < j; i, j = i+1, j-1 {
		lits[i], lits[j] = lits[j], lits[i]
	}
}

// Extend reconstructs a model of the original formula from model, a
// satisfying assignment of the reduced formula (indexed by Var, 1..maxVar,
// same length convention as ActiveVariables' variable range). It returns a
// new slice; model is left untouched. Grounded on original_source
// extend.cpp's External::extend, which walks the stack from the end,
// leaving already-satisfied blocks alone and flipping every false witness
// literal of an unsatisfied block.
func (s *Solver) Extend(model []bool) []bool {
	assertf(len(model) == s.maxVar+1,
		"solver: Extend needs a model of length maxVar+1=%d, got %d", s.maxVar+1, len(model))
	s.Stats.Extensions++
	out := make([]bool, len(model))
	copy(out, model)

	stack := s.ext.stack
	i := len(stack)
	for i > 0 {
		satisfied := false
		for {
			assertf(i > 0, "solver: malformed extension stack (unterminated clause block)")
			i--
			lit := stack[i]
			if lit == 0 {
				break
			}
			if !satisfied && modelVal(out, lit) > 0 {
				satisfied = true
			}
		}
		if satisfied {
			for {
				assertf(i > 0, "solver: malformed extension stack (unterminated witness block)")
				i--
				if stack[i] == 0 {
					break
				}
			}
			continue
		}
		for {
			assertf(i > 0, "solver: malformed extension stack (unterminated witness block)")
			i--
			lit := stack[i]
			if lit == 0 {
				break
			}
			if modelVal(out, lit) < 0 {
				v := lit.Var()
				out[v] = !out[v]
				s.Stats.Extended++
			}
		}
	}
	return out
}

// TraverseWitnesses walks the extension stack backward the same way Extend
// does, but instead of mutating a model it hands each unsatisfied block's
// (clause, witness) pair to visit, in original literal order, skipping
// blocks already satisfied by literals fixed reports true for. Returning
// false from visit stops the traversal early. Grounded on original_source
// extend.cpp's External::traverse_witnesses, used by DRAT/witness
// exporters (named as an external collaborator, spec.md §6).
func (s *Solver) TraverseWitnesses(fixed func(Lit) int8, visit WitnessVisitor) bool {
	if s.unsat {
		return true
	}
	stack := s.ext.stack
	i := len(stack)
	var clause, witness []Lit
	for i > 0 {
		satisfied := false
		clause = clause[:0]
		for {
			assertf(i > 0, "solver: malformed extension stack (unterminated clause block)")
			i--
			lit := stack[i]
			if lit == 0 {
				break
			}
			if satisfied {
				continue
			}
			switch {
			case fixed(lit) < 0:
			case fixed(lit) > 0:
				satisfied = true
			default:
				clause = append(clause, lit)
			}
		}
		witness = witness[:0]
		for {
			assertf(i > 0, "solver: malformed extension stack (unterminated witness block)")
			i--
			lit := stack[i]
			if lit == 0 {
				break
			}
			if satisfied || fixed(lit) != 0 {
				continue
			}
			witness = append(witness, lit)
		}
		if !satisfied {
			reverseLits(clause)
			reverseLits(witness)
			if !visit(clause, witness) {
				return false
			}
		}
	}
	return true
}

// PushBlock exposes the extension stack's bulk-push entry point on the
// owning Solver, the shape collaborators outside this package see.
func (s *Solver) PushBlock(clause, witness []Lit) { s.ext.PushBlock(clause, witness) }
