package tail

import (
	"strings"
	"sync"
	"testing"
	"time"

	"logfunnel/internal/domain"
)

type collectSink struct {
	mu     sync.Mutex
	events []domain.LogEvent
	done   chan struct{}
	want   int
}

func (c *collectSink) Push(ev domain.LogEvent) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	if len(c.events) == c.want {
		close(c.done)
	}
	c.mu.Unlock()
}

func TestStartParsesAndSkips(t *testing.T) {
	input := strings.Join([]string{
		`1.2.3.4 - - [x] "GET /a?q=1 HTTP/1.1" 200 100`,
		`not a log line`,
		`1.2.3.4 - - [x] "POST /b HTTP/1.1" 201 -`,
		``,
		`1.2.3.4 - - [x] "DELETE /c HTTP/1.1" 404 7`,
	}, "\n")

	sink := &collectSink{done: make(chan struct{}), want: 3}
	New(strings.NewReader(input)).Start(sink)

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	want := []domain.LogEvent{
		{Method: "GET", URL: "/a", Status: 200, Size: 100},
		{Method: "POST", URL: "/b", Status: 201, Size: 0},
		{Method: "DELETE", URL: "/c", Status: 404, Size: 7},
	}
	for i, ev := range sink.events {
		if ev != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, ev, want[i])
		}
	}
}

func TestStartReturnsImmediately(t *testing.T) {
	// a reader that never yields must not block Start
	r, _ := neverReader()
	done := make(chan struct{})
	go func() {
		New(r).Start(&collectSink{done: make(chan struct{}), want: 1})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start blocked on a stalled reader")
	}
}

func neverReader() (*blockingReader, chan struct{}) {
	ch := make(chan struct{})
	return &blockingReader{ch: ch}, ch
}

type blockingReader struct{ ch chan struct{} }

func (b *blockingReader) Read(p []byte) (int, error) {
	<-b.ch
	return 0, nil
}
