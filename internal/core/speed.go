package core

import "time"

const (
	// DefaultSpeed is the initial tick interval in milliseconds.
	DefaultSpeed = 100
	// DefaultMinSpeed is the shortest allowed tick interval.
	DefaultMinSpeed = 50
	// DefaultMaxSpeed is the longest allowed tick interval.
	DefaultMaxSpeed = 500
	// DefaultSpeedStep is the adjustment applied per key press.
	DefaultSpeedStep = 50
)

// SpeedLimits bounds a Speed and sets its adjustment step, all in
// milliseconds.
type SpeedLimits struct {
	Min  int
	Max  int
	Step int
}

// DefaultSpeedLimits returns the standard [50, 500] ms range with 50 ms steps.
func DefaultSpeedLimits() SpeedLimits {
	return SpeedLimits{Min: DefaultMinSpeed, Max: DefaultMaxSpeed, Step: DefaultSpeedStep}
}

// Speed holds the delay between generations. Adjustments saturate at the
// limits.
type Speed struct {
	ms     int
	limits SpeedLimits
}

// NewSpeed constructs a Speed starting at ms, clamped into limits.
func NewSpeed(ms int, limits SpeedLimits) *Speed {
	if limits.Min <= 0 {
		limits.Min = 1
	}
	if limits.Max < limits.Min {
		limits.Max = limits.Min
	}
	if limits.Step < 0 {
		limits.Step = 0
	}
	s := &Speed{limits: limits}
	s.set(ms)
	return s
}

func (s *Speed) set(ms int) {
	s.ms = min(max(ms, s.limits.Min), s.limits.Max)
}

// Millis returns the current interval in milliseconds.
func (s *Speed) Millis() int { return s.ms }

// Limits returns the configured bounds.
func (s *Speed) Limits() SpeedLimits { return s.limits }

// Interval returns the current interval as a duration.
func (s *Speed) Interval() time.Duration {
	return time.Duration(s.ms) * time.Millisecond
}

// Decrease shortens the interval by one step and returns the new value.
func (s *Speed) Decrease() int {
	s.set(s.ms - s.limits.Step)
	return s.ms
}

// Increase lengthens the interval by one step and returns the new value.
func (s *Speed) Increase() int {
	s.set(s.ms + s.limits.Step)
	return s.ms
}
