package solver

import "fmt"

// clauseFlags packs the boolean flags spec.md §3 attaches to a clause into
// a single byte, mirroring the teacher's habit (clause.go's lbdValue) of
// keeping per-clause bookkeeping out of separate bool fields.
type clauseFlags uint8

const (
	flagGarbage clauseFlags = 1 << iota
	flagRedundant
	flagHyper
	flagFrozen
	flagCovered
	flagTransred
)

// A Clause is an ordered sequence of literals plus the flags and cursor
// spec.md §3 requires. The first two positions are the watched literals;
// the remaining positions are interchangeable. Size is always >= 1.
type Clause struct {
	lits  []Lit
	flags clauseFlags
	pos   int // resume cursor for the watched-literal search, 2 <= pos <= Len() (0 for a unit clause)
}

// NewClause returns a clause over the given literals. lits must have at
// least one element; the clause takes ownership of the slice, same
// convention as the teacher's NewClause.
func NewClause(lits []Lit) *Clause {
	if len(lits) == 0 {
		panic("solver: empty clause literal")
	}
	c := &Clause{lits: lits}
	if len(lits) >= 2 {
		c.pos = 2
	}
	return c
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Binary is true iff the clause has exactly two literals.
func (c *Clause) Binary() bool { return len(c.lits) == 2 }

// First returns the first watched literal.
func (c *Clause) First() Lit { return c.lits[0] }

// Second returns the second watched literal.
func (c *Clause) Second() Lit { return c.lits[1] }

// Get returns the ith literal of the clause.
func (c *Clause) Get(i int) Lit { return c.lits[i] }

// Set sets the ith literal of the clause.
func (c *Clause) Set(i int, l Lit) { c.lits[i] = l }

// Lits returns the clause's literals. The caller must not retain the slice
// past a mutation of the clause (swap/Set), same aliasing rule as the
// teacher's Clause.
func (c *Clause) Lits() []Lit { return c.lits }

// swap swaps the ith and jth literals of the clause.
func (c *Clause) swap(i, j int) { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }

// Pos returns the resume cursor used by the watched-literal search.
func (c *Clause) Pos() int { return c.pos }

// SetPos updates the resume cursor. Callers must maintain 2 <= pos <= Len().
func (c *Clause) SetPos(pos int) { c.pos = pos }

// Garbage reports whether the clause has been marked garbage.
func (c *Clause) Garbage() bool { return c.flags&flagGarbage != 0 }

// MarkGarbage marks the clause garbage. The transition is monotone: a
// clause is never un-marked once garbage (spec.md §3 Lifecycles).
func (c *Clause) MarkGarbage() { c.flags |= flagGarbage }

// Redundant reports whether the clause is a learned/redundant clause. The
// core never marks a clause redundant itself; it only ever reads the flag
// (CCE only runs over irredundant clauses; transitive reduction also checks
// redundant binaries, and searches through redundant binaries only when the
// candidate itself is redundant).
func (c *Clause) Redundant() bool { return c.flags&flagRedundant != 0 }

// SetRedundant sets or clears the redundant flag. Exposed for callers that
// build the clause database (the outer search owns this classification).
func (c *Clause) SetRedundant(v bool) { c.setFlag(flagRedundant, v) }

// Hyper reports whether the clause is the result of hyper binary
// resolution (a redundant hyper binary is never a transitive-reduction
// candidate).
func (c *Clause) Hyper() bool { return c.flags&flagHyper != 0 }

// SetHyper sets or clears the hyper flag.
func (c *Clause) SetHyper(v bool) { c.setFlag(flagHyper, v) }

// Frozen reports whether every literal of the clause is currently frozen,
// which excludes it from CCE scheduling (spec.md §4.4).
func (c *Clause) Frozen() bool { return c.flags&flagFrozen != 0 }

// SetFrozen sets or clears the frozen flag.
func (c *Clause) SetFrozen(v bool) { c.setFlag(flagFrozen, v) }

// Covered reports whether CCE has already tried this clause since the last
// full reschedule (spec.md §4.4).
func (c *Clause) Covered() bool { return c.flags&flagCovered != 0 }

// SetCovered sets or clears the covered flag.
func (c *Clause) SetCovered(v bool) { c.setFlag(flagCovered, v) }

// Transred reports whether transitive reduction has already checked this
// clause since the last full reschedule (spec.md §4.6).
func (c *Clause) Transred() bool { return c.flags&flagTransred != 0 }

// SetTransred sets or clears the transred flag.
func (c *Clause) SetTransred(v bool) { c.setFlag(flagTransred, v) }

func (c *Clause) setFlag(f clauseFlags, v bool) {
	if v {
		c.flags |= f
	} else {
		c.flags &^= f
	}
}

// CNF returns a DIMACS-style rendering of the clause, kept for debug
// logging the same way the teacher's Clause.CNF is used from OutputClause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}

func (c *Clause) String() string { return c.CNF() }
