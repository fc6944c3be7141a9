package solver

// Reluctant implements Knuth's reluctant-doubling formulation of the Luby
// restart sequence: two counters (u, v) updated in place rather than the
// teacher's stateless recursive luby(i). Grounded on original_source
// reluctant.hpp, generalized only by naming (Tick/Triggered instead of
// tick/operator bool, since Go has no operator overloading).
type Reluctant struct {
	u, v, limit       uint64
	period, countdown uint64
	trigger, limited  bool
}

// Enable (re)starts the sequence with base interval period and, when
// ceiling is positive, an upper bound on how long any inactive
// sub-sequence may run before the whole sequence resets to its initial
// values.
func (r *Reluctant) Enable(period uint64, ceiling int64) {
	assertf(period > 0, "solver: reluctant period must be positive, got %d", period)
	r.u, r.v = 1, 1
	r.period, r.countdown = period, period
	r.trigger = false
	if ceiling <= 0 {
		r.limited = false
	} else {
		r.limited, r.limit = true, uint64(ceiling)
	}
}

// Disable turns the sequence off; Tick is then a no-op until the next
// Enable.
func (r *Reluctant) Disable() {
	r.period = 0
	r.trigger = false
}

// Tick advances the countdown by one and, once it reaches zero, performs
// Knuth's step ((u & -u) == v then u++, v=1, else v = 2v), rearms the
// countdown at v*period and raises the trigger.
func (r *Reluctant) Tick() {
	if r.period == 0 {
		return
	}
	if r.trigger {
		return
	}
	r.countdown--
	if r.countdown != 0 {
		return
	}
	if (r.u & -r.u) == r.v {
		r.u++
		r.v = 1
	} else {
		r.v *= 2
	}
	if r.limited && r.v >= r.limit {
		r.u, r.v = 1, 1
	}
	r.countdown = r.v * r.period
	r.trigger = true
}

// Triggered reports the one-shot trigger and clears it: the surrounding
// search loop calls this exactly once per iteration.
func (r *Reluctant) Triggered() bool {
	if !r.trigger {
		return false
	}
	r.trigger = false
	return true
}
