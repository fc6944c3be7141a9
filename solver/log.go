package solver

import "github.com/sirupsen/logrus"

// phaseLogger wraps the configured logrus.FieldLogger with the two
// reporting granularities CaDiCaL's PHASE/LOG macros give cover.cpp and
// transred.cpp: Info-level lines when an inprocessing round has computed
// its budget and when it finishes, and Debug-level lines when a round
// reschedules all clauses, gated by the logger's level rather than by a
// QUIET compile flag (SPEC_FULL.md §2.2). Per-clause findings are not
// logged.
type phaseLogger struct {
	log logrus.FieldLogger
}

func newPhaseLogger(opts *Options) phaseLogger {
	if opts.Logger != nil {
		return phaseLogger{log: opts.Logger}
	}
	return phaseLogger{log: logrus.StandardLogger()}
}

func (p phaseLogger) phase(name string, fields logrus.Fields, msg string) {
	p.log.WithFields(fields).WithField("phase", name).Info(msg)
}

func (p phaseLogger) trace(name string, fields logrus.Fields, msg string) {
	p.log.WithFields(fields).WithField("phase", name).Debug(msg)
}
