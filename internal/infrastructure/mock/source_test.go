package mock

import (
	"sync"
	"testing"
	"time"

	"logfunnel/internal/domain"
)

type countSink struct {
	mu sync.Mutex
	n  int
}

func (c *countSink) Push(ev domain.LogEvent) {
	if ev.Method != domain.MethodGet && ev.Method != domain.MethodPost && ev.Method != domain.MethodDelete {
		panic("unexpected method " + string(ev.Method))
	}
	if ev.Size < 0 || ev.Size > 100000 {
		panic("size out of range")
	}
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *countSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func TestStartProducesSteadily(t *testing.T) {
	sink := &countSink{}
	New().Start(sink)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sink.count() >= 5 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("only %d events after 2s, want at least 5", sink.count())
}
