// Package tail feeds the visualizer from a live line-oriented log stream,
// normally a command piped to stdin.
package tail

import (
	"bufio"
	"io"

	"logfunnel/help"
	"logfunnel/internal/domain"
	"logfunnel/internal/parse"
)

type Source struct {
	r io.Reader
}

func New(r io.Reader) *Source {
	return &Source{r: r}
}

// Start consumes lines until end-of-stream. Lines that don't parse are
// skipped; EOF or a read error just ends production, the render loop keeps
// going on whatever is already queued.
func (s *Source) Start(sink domain.EventSink) {
	go func() {
		sc := bufio.NewScanner(s.r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			if ev, ok := parse.Line(sc.Text()); ok {
				sink.Push(ev)
			}
		}
		if err := sc.Err(); err != nil {
			help.Dbg("log stream closed: %v", err)
		}
	}()
}
