// Package queue provides the unbounded FIFO between the event source
// goroutine and the render loop.
package queue

import (
	"sync"

	"logfunnel/internal/domain"
)

// Queue is a thread-safe unbounded FIFO of LogEvents. Producers Push from
// their own goroutine; the render loop drains with TryPop once per frame.
type Queue struct {
	mu    sync.Mutex
	items []domain.LogEvent
}

func New() *Queue {
	return &Queue{}
}

func (q *Queue) Push(ev domain.LogEvent) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
}

// TryPop removes and returns the oldest event, or ok=false when empty.
// Never blocks.
func (q *Queue) TryPop() (domain.LogEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return domain.LogEvent{}, false
	}
	ev := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil // let the backing array go once drained
	}
	return ev, true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
