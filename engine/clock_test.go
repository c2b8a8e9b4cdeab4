package engine

import (
	"testing"
	"time"
)

func TestClockExpiredHonorsDeadline(t *testing.T) {
	t.Parallel()
	c := NewClock()
	c.SetDeadline(time.Now().Add(-time.Second))
	if !c.Expired() {
		t.Errorf("expected a past deadline to be expired")
	}

	c.SetDeadline(time.Now().Add(time.Hour))
	if c.Expired() {
		t.Errorf("expected a future deadline not to be expired")
	}
}

func TestClockResetClearsDeadline(t *testing.T) {
	t.Parallel()
	c := NewClock()
	c.SetDeadline(time.Now().Add(-time.Second))
	c.Reset()
	if c.Expired() {
		t.Errorf("expected Reset to clear the expired deadline")
	}
}

func TestClockStopForcesExpiredRegardlessOfDeadline(t *testing.T) {
	t.Parallel()
	c := NewClock()
	c.SetDeadline(time.Now().Add(time.Hour))
	c.Stop()
	if !c.Expired() {
		t.Errorf("expected Stop to force Expired")
	}
}

func TestClockShouldYieldRequiresDeadline(t *testing.T) {
	t.Parallel()
	c := NewClock()
	if c.ShouldYield() {
		t.Errorf("expected no yield requirement without a deadline")
	}

	c.SetDeadline(time.Now().Add(time.Hour))
	if c.ShouldYield() {
		t.Errorf("expected no yield immediately after SetDeadline")
	}
}
