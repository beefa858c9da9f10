// Package mock synthesizes traffic for demoing without a log stream.
package mock

import (
	"math/rand"
	"time"

	"logfunnel/internal/domain"
)

var (
	methods  = []domain.Method{domain.MethodGet, domain.MethodPost, domain.MethodDelete}
	statuses = []int{200, 404}
	urls     = []string{"/page1", "/page2", "/api/data", "/images/img.jpg", "/login", "/logout"}
)

type Source struct {
	rnd *rand.Rand
}

func New() *Source {
	return &Source{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Start emits 15-20 events per second forever: the sleep between events is
// sampled uniformly from [50ms, 66ms].
func (s *Source) Start(sink domain.EventSink) {
	go func() {
		for {
			time.Sleep(time.Duration(50+s.rnd.Intn(17)) * time.Millisecond)
			sink.Push(domain.LogEvent{
				Method: methods[s.rnd.Intn(len(methods))],
				URL:    urls[s.rnd.Intn(len(urls))],
				Status: statuses[s.rnd.Intn(len(statuses))],
				Size:   int64(s.rnd.Intn(100001)),
			})
		}
	}()
}
