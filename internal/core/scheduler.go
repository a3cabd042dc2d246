package core

// Bounds for the number of ticks that make up one generation.
const (
	MinThreshold     = 2
	MaxThreshold     = 15
	DefaultThreshold = 4
)

// Scheduler runs a Stepper once every threshold ticks, so the simulation speed
// is independent of the caller's frame rate. Lower thresholds run faster.
type Scheduler struct {
	target    Stepper
	paused    bool
	counter   int
	threshold int
	initial   int
}

// NewScheduler returns a paused scheduler driving target. The threshold is
// clamped to [MinThreshold, MaxThreshold] and is restored by ResetSpeed.
func NewScheduler(target Stepper, threshold int) *Scheduler {
	threshold = clampThreshold(threshold)
	return &Scheduler{
		target:    target,
		paused:    true,
		threshold: threshold,
		initial:   threshold,
	}
}

// Tick counts one frame and steps the target when the threshold is reached.
// It reports whether a generation was advanced.
func (s *Scheduler) Tick() bool {
	if s.paused {
		return false
	}
	s.counter++
	if s.counter < s.threshold {
		return false
	}
	s.counter = 0
	if s.target != nil {
		s.target.Step()
	}
	return true
}

// SpeedUp shortens the number of ticks per generation.
func (s *Scheduler) SpeedUp() { s.threshold = clampThreshold(s.threshold - 1) }

// SlowDown lengthens the number of ticks per generation.
func (s *Scheduler) SlowDown() { s.threshold = clampThreshold(s.threshold + 1) }

// ResetSpeed restores the threshold the scheduler was created with.
func (s *Scheduler) ResetSpeed() { s.threshold = s.initial }

// Threshold returns the current ticks-per-generation.
func (s *Scheduler) Threshold() int { return s.threshold }

// Paused reports whether ticks are currently ignored.
func (s *Scheduler) Paused() bool { return s.paused }

// SetPaused pauses or resumes the scheduler.
func (s *Scheduler) SetPaused(paused bool) { s.paused = paused }

// TogglePause flips the paused state and returns the new value.
func (s *Scheduler) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func clampThreshold(v int) int {
	if v < MinThreshold {
		return MinThreshold
	}
	if v > MaxThreshold {
		return MaxThreshold
	}
	return v
}
