package solver

// Terminator is the cooperative cancellation callback spec.md §5/§6
// describe: the core polls Terminating() at designated safe points
// (between schedule items, between propagation rounds) and returns
// cleanly if it reports true. A nil Terminator is treated as "never
// terminate".
type Terminator interface {
	Terminating() bool
}

// TerminatorFunc adapts a plain function to a Terminator, the same
// pattern net/http.HandlerFunc uses for single-method interfaces.
type TerminatorFunc func() bool

// Terminating implements Terminator.
func (f TerminatorFunc) Terminating() bool { return f() }

type neverTerminate struct{}

func (neverTerminate) Terminating() bool { return false }

// WitnessVisitor is the callback TraverseWitnesses invokes once per
// extension-stack block not already satisfied by fixed literals, in reverse
// traversal order. Returning false stops
// the traversal early, mirroring original_source extend.cpp's
// WitnessIterator::witness contract. clause and witness must not be
// retained past the call.
type WitnessVisitor func(clause, witness []Lit) bool
