package engine

import (
	"testing"
	"time"
)

func newTestClock() (*PausableClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewPausableClock(mock), mock
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	clock, mock := newTestClock()
	start := clock.Now()

	mock.AdvanceMs(100)
	clock.Pause()
	frozen := clock.Now()
	if got := frozen.Sub(start); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms before pause, got %v", got)
	}

	mock.AdvanceMs(5000)
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected game time frozen at %v, got %v", frozen, clock.Now())
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected ongoing pause of 5s, got %v", got)
	}

	clock.Resume()
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected game time to resume from %v, got %v", frozen, clock.Now())
	}

	mock.AdvanceMs(16)
	if got := clock.Now().Sub(frozen); got != 16*time.Millisecond {
		t.Errorf("Expected 16ms after resume, got %v", got)
	}
}

func TestPausableClockIdempotentToggles(t *testing.T) {
	clock, mock := newTestClock()

	clock.Pause()
	mock.AdvanceMs(10)
	clock.Pause()
	if !clock.IsPaused() {
		t.Error("Expected clock to stay paused")
	}

	clock.Resume()
	clock.Resume()
	if clock.IsPaused() {
		t.Error("Expected clock to be running")
	}
	if got := clock.TotalPauseDuration(); got != 10*time.Millisecond {
		t.Errorf("Expected 10ms total pause, got %v", got)
	}
	if !clock.RealTime().Equal(mock.Now()) {
		t.Errorf("Expected real time to follow provider")
	}
}
