package timer

import (
	"math"
	"testing"
	"time"
)

// newTestTimer builds a running timer on a clock the test advances by hand.
func newTestTimer(start time.Time) (*Timer, *time.Time) {
	current := start
	t := &Timer{
		Running: true,
		Speed:   1.0,
		now:     func() time.Time { return current },
	}
	t.lastTick = current
	return t, &current
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTickScalesBySpeed(t *testing.T) {
	tm, now := newTestTimer(time.Unix(100, 0))
	tm.Speed = 2.0

	*now = now.Add(100 * time.Millisecond)
	tick := tm.Tick()
	if !almostEqual(tick.TotalTime, 0.2) {
		t.Errorf("TotalTime = %v, want 0.2", tick.TotalTime)
	}
	if !almostEqual(tick.FrameTime, 0.2) {
		t.Errorf("FrameTime = %v, want 0.2", tick.FrameTime)
	}

	*now = now.Add(100 * time.Millisecond)
	tick = tm.Tick()
	if !almostEqual(tick.TotalTime, 0.4) {
		t.Errorf("TotalTime after second tick = %v, want 0.4", tick.TotalTime)
	}
}

func TestPausedTicksAreNoops(t *testing.T) {
	tm, now := newTestTimer(time.Unix(100, 0))

	*now = now.Add(time.Second)
	tm.Tick()
	tm.Running = false

	for i := 0; i < 3; i++ {
		*now = now.Add(time.Minute)
		tick := tm.Tick()
		if !almostEqual(tick.TotalTime, 1.0) {
			t.Errorf("TotalTime while paused = %v, want 1.0", tick.TotalTime)
		}
		if tick.FrameTime != 0 {
			t.Errorf("FrameTime while paused = %v, want 0", tick.FrameTime)
		}
	}
}

func TestResumeDoesNotJump(t *testing.T) {
	tm, now := newTestTimer(time.Unix(100, 0))

	*now = now.Add(time.Second)
	tm.Tick()

	tm.Running = false
	*now = now.Add(time.Hour)
	tm.Tick()

	tm.Running = true
	*now = now.Add(100 * time.Millisecond)
	tick := tm.Tick()
	if !almostEqual(tick.TotalTime, 1.1) {
		t.Errorf("TotalTime after resume = %v, want 1.1", tick.TotalTime)
	}
}

func TestNegativeSpeedRunsBackwards(t *testing.T) {
	tm, now := newTestTimer(time.Unix(100, 0))
	tm.Speed = -1.0

	*now = now.Add(time.Second)
	tick := tm.Tick()
	if !almostEqual(tick.TotalTime, -1.0) {
		t.Errorf("TotalTime with speed -1 = %v, want -1.0", tick.TotalTime)
	}
}

func TestAdjustSpeedHasNoClamp(t *testing.T) {
	tm := New()
	tm.AdjustSpeed(-0.1)
	tm.AdjustSpeed(-1.0)
	if !almostEqual(tm.Speed, -0.1) {
		t.Errorf("Speed = %v, want -0.1", tm.Speed)
	}
}
