package domain

import "testing"

func TestKindFor(t *testing.T) {
	tests := []struct {
		name string
		ev   LogEvent
		want ShapeKind
	}{
		{"post wins over 404", LogEvent{Method: MethodPost, Status: 404}, ShapeArrow},
		{"delete wins over 404", LogEvent{Method: MethodDelete, Status: 404}, ShapeCross},
		{"get 404", LogEvent{Method: MethodGet, Status: 404}, ShapeSquare},
		{"get 200", LogEvent{Method: MethodGet, Status: 200}, ShapeCircle},
		{"unknown method 200", LogEvent{Method: "PATCH", Status: 200}, ShapeCircle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindFor(tt.ev); got != tt.want {
				t.Fatalf("KindFor(%+v)=%v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
