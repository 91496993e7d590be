package timer

import "time"

// Tick is the result of advancing the timer by one frame.
type Tick struct {
	TotalTime float64
	FrameTime float64
}

// Timer tracks shader playback time. It can be paused and its speed scaled,
// including negative speeds to run time backwards. Running and Speed are
// mutated directly by window input handling on the render thread.
type Timer struct {
	Running bool
	Speed   float64

	totalTime float64
	lastTick  time.Time
	now       func() time.Time
}

func New() *Timer {
	t := &Timer{
		Running: true,
		Speed:   1.0,
		now:     time.Now,
	}
	t.lastTick = t.now()
	return t
}

// Tick advances the timer to the current wall-clock instant. While running,
// the reported frame time is the elapsed interval scaled by Speed; while
// paused it is zero and the total is unchanged. The last tick instant is
// updated either way, so resuming after a pause does not jump the total.
func (t *Timer) Tick() Tick {
	now := t.now()
	diff := 0.0
	if t.Running {
		diff = now.Sub(t.lastTick).Seconds() * t.Speed
		t.totalTime += diff
	}
	t.lastTick = now
	return Tick{TotalTime: t.totalTime, FrameTime: diff}
}

// TogglePause flips between running and paused.
func (t *Timer) TogglePause() {
	t.Running = !t.Running
}

// AdjustSpeed changes the speed by the given step. No clamping is applied;
// speed may become negative.
func (t *Timer) AdjustSpeed(step float64) {
	t.Speed += step
}
