package domain

// EventSink accepts parsed events from a producer. Implementations must be
// safe to call from a goroutine other than the render loop's.
type EventSink interface {
	Push(LogEvent)
}

// EventSource produces LogEvents into a sink for the life of the process.
// Start must return immediately; production happens on the source's own
// goroutine, which is never joined (daemon semantics).
type EventSource interface {
	Start(sink EventSink)
}
