package engine

import "time"

// TimeProvider is the source of real time for the frame clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, including its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
