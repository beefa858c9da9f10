package domain

// Method is the HTTP verb extracted from an access-log request token.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodDelete Method = "DELETE"
)

// LogEvent is one parsed access-log line. Immutable after parsing.
type LogEvent struct {
	Method Method
	URL    string // query string stripped
	Status int
	Size   int64 // response bytes, 0 when the log had "-"
}

// ShapeKind selects the silhouette an event gets in the funnel.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeArrow
	ShapeCross
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeArrow:
		return "arrow"
	case ShapeCross:
		return "cross"
	}
	return "unknown"
}

// KindFor maps an event to its silhouette: POST renders as an arrow, DELETE
// as an "X", 404 as a square, everything else as a circle.
func KindFor(ev LogEvent) ShapeKind {
	switch {
	case ev.Method == MethodPost:
		return ShapeArrow
	case ev.Method == MethodDelete:
		return ShapeCross
	case ev.Status == 404:
		return ShapeSquare
	default:
		return ShapeCircle
	}
}
