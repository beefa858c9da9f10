package scene

import (
	"sync"
	"time"
)

// RateWindow records event arrival times and answers rolling-rate queries.
// It is the one piece of state shared between the source goroutine (Record)
// and the render loop (CountSince), so it carries its own lock.
type RateWindow struct {
	mu    sync.Mutex
	times []time.Time
	cap   int
}

func NewRateWindow() *RateWindow {
	return &RateWindow{cap: RateBufferCap}
}

func (w *RateWindow) Record(t time.Time) {
	w.mu.Lock()
	if len(w.times) >= w.cap {
		// bounded buffer: drop the oldest
		copy(w.times, w.times[1:])
		w.times = w.times[:len(w.times)-1]
	}
	w.times = append(w.times, t)
	w.mu.Unlock()
}

// CountSince reports how many arrivals fall within d of now.
func (w *RateWindow) CountSince(now time.Time, d time.Duration) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for i := len(w.times) - 1; i >= 0; i-- {
		if now.Sub(w.times[i]) >= d {
			break // times are ordered, nothing older can match
		}
		n++
	}
	return n
}

func (w *RateWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.times)
}
