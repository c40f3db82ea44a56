package count

import "time"

// transition is a one-shot deferred action measured on the game clock.
// The controller owns it and drives it from Advance, so it never fires
// concurrently with a tap.
type transition struct {
	remaining time.Duration
	pending   bool
}

// schedule arms the transition to fire after d, replacing any pending one.
func (t *transition) schedule(d time.Duration) {
	t.remaining = d
	t.pending = true
}

// cancel disarms a pending transition. Cancelling an idle transition is a no-op.
func (t *transition) cancel() {
	t.remaining = 0
	t.pending = false
}

// advance moves the clock forward by dt and reports whether the transition
// fired during this step. It fires at most once per schedule.
func (t *transition) advance(dt time.Duration) bool {
	if !t.pending {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.cancel()
	return true
}

// Pending reports whether the transition is armed and how long until it fires.
func (t *transition) Pending() (time.Duration, bool) {
	return t.remaining, t.pending
}
