package count

import (
	"testing"
	"time"
)

func TestTransitionFiresOnce(t *testing.T) {
	var tr transition
	tr.schedule(100 * time.Millisecond)

	if tr.advance(60 * time.Millisecond) {
		t.Fatal("fired after 60ms of a 100ms delay")
	}
	if left, ok := tr.Pending(); !ok || left != 40*time.Millisecond {
		t.Errorf("Pending() = (%v, %v), expected (40ms, true)", left, ok)
	}
	if !tr.advance(40 * time.Millisecond) {
		t.Fatal("did not fire when the delay elapsed")
	}
	if tr.advance(time.Second) {
		t.Error("fired a second time")
	}
}

func TestTransitionCancel(t *testing.T) {
	var tr transition
	tr.schedule(50 * time.Millisecond)
	tr.cancel()

	if tr.advance(time.Second) {
		t.Error("cancelled transition fired")
	}
	if _, ok := tr.Pending(); ok {
		t.Error("cancelled transition still pending")
	}

	// Cancelling an idle transition is harmless
	tr.cancel()
}

func TestTransitionRescheduleReplaces(t *testing.T) {
	var tr transition
	tr.schedule(10 * time.Millisecond)
	tr.schedule(100 * time.Millisecond)

	if tr.advance(50 * time.Millisecond) {
		t.Error("fired on the replaced schedule")
	}
}
