package render

import "time"

// FPSCounter measures frames per second over a sliding one second window
type FPSCounter struct {
	start  time.Time
	frames int
	value  float64
}

// Frame records one rendered frame at now and returns the current rate
func (f *FPSCounter) Frame(now time.Time) float64 {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.value = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.start = now
	}
	return f.value
}

func (f *FPSCounter) Value() float64 { return f.value }
