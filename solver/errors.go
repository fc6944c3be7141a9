package solver

import (
	"fmt"

	"github.com/pkg/errors"
)

// invariantError is the kind-4 outcome from spec.md §7 ("Invariant
// violation ... treated as a fatal assertion"). It is always constructed
// through assertf below, which is the only place that panics with one.
// Cover and TransRed recover it at their own API boundary and hand it back
// wrapped through wrapf instead of letting it unwind past the caller.
type invariantError struct {
	err error
}

func (e *invariantError) Error() string { return e.err.Error() }
func (e *invariantError) Unwrap() error { return e.err }

// assertf panics with a wrapped *invariantError when cond is false. Used at
// every place spec.md documents an invariant (I1-I5) or a precondition
// (val(lit) < 0 before propagate_asymmetric/propagate_covered, and the
// clause-size-1 boundary case in scheduling) that must never be violated by
// a correct caller. Every exit path in this package restores the
// invariants it touches via defer before returning, so in practice this is
// a backstop, not a control-flow mechanism (SPEC_FULL.md §2.3).
func assertf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	panic(&invariantError{err: errors.Errorf(format, args...)})
}

// wrapf annotates err with additional context using pkg/errors, the same
// "attach a stack, don't swallow the cause" idiom the operator-framework
// example repo uses throughout (SPEC_FULL.md §2.3). Cover and TransRed are
// its call sites: both recover an *invariantError panic at their own return
// and hand it back through wrapf rather than letting it unwind further.
func wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, fmt.Sprintf(format, args...))
}
