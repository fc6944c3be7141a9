package solver

import "github.com/sirupsen/logrus"

// Options carries the knobs spec.md §6 lists as "options consumed" by the
// core. Following the teacher's convention of exported fields directly on
// the owning struct (Solver.Verbose, Solver.Certified, ...) rather than a
// registry: §1 explicitly places "the textual option registry" outside the
// core, so Options is just the values that registry would eventually set.
type Options struct {
	// Cover is the master enable for covered clause elimination.
	Cover bool
	// RestoreFlush disables Cover entirely when set (spec.md §9 open
	// question: the compatibility hazard is preserved, not fixed).
	RestoreFlush bool
	// CoverRelEff, CoverMinEff, CoverMaxEff shape the CCE effort budget
	// (spec.md §4.4).
	CoverRelEff int64
	CoverMinEff int64
	CoverMaxEff int64
	// TransRed is the master enable for transitive reduction.
	TransRed bool
	// TransRedRelEff, TransRedMinEff, TransRedMaxEff shape its effort
	// budget (spec.md §4.6).
	TransRedRelEff int64
	TransRedMinEff int64
	TransRedMaxEff int64
	// RestartPeriod and RestartCeiling parametrize the reluctant-doubling
	// restart trigger (spec.md §4.7); RestartCeiling <= 0 means unlimited.
	RestartPeriod  uint64
	RestartCeiling int64
	// Logger receives structured phase/debug reporting (§2.2 of
	// SPEC_FULL.md). Defaults to logrus.StandardLogger() when nil.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the option values CaDiCaL ships by default,
// carried over verbatim since spec.md never redefines them (spec.md §9,
// SPEC_FULL.md §2.1).
func DefaultOptions() Options {
	return Options{
		Cover:          true,
		RestoreFlush:   false,
		CoverRelEff:    10,
		CoverMinEff:    1 << 10,
		CoverMaxEff:    1 << 26,
		TransRed:       true,
		TransRedRelEff: 10,
		TransRedMinEff: 1 << 10,
		TransRedMaxEff: 1 << 26,
		RestartPeriod:  1,
		RestartCeiling: 0,
	}
}
