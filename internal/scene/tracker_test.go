package scene

import (
	"fmt"
	"testing"
)

func TestTrackerOffsets(t *testing.T) {
	var tr Tracker
	const n = 5
	for i := 0; i < n; i++ {
		tr.Push(fmt.Sprintf("/page%d", i), int64(i))
	}

	entries := tr.Visible()
	if len(entries) != n {
		t.Fatalf("visible=%d, want %d", len(entries), n)
	}
	// oldest first; each entry's offset equals entries-added-after-it * line height
	for i, e := range entries {
		want := float64(n-1-i) * LineSpacing
		if e.Offset != want {
			t.Errorf("entry %d (%s) offset=%v, want %v", i, e.Label, e.Offset, want)
		}
	}
	if entries[len(entries)-1].Offset != 0 {
		t.Error("newest entry must sit at offset 0")
	}
}

func TestTrackerDropsScrolledOut(t *testing.T) {
	var tr Tracker
	total := int(ScrollAreaHeight/LineSpacing) + 1 // one more than fits
	for i := 0; i < total; i++ {
		tr.Push("/x", 1)
	}
	if got, want := len(tr.Visible()), total-1; got != want {
		t.Fatalf("visible=%d, want %d", got, want)
	}
	for _, e := range tr.Visible() {
		if e.Offset >= ScrollAreaHeight {
			t.Fatalf("entry at offset %v should have been dropped", e.Offset)
		}
	}
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 1},
		{FadeStartY - 1, 1},
		{FadeStartY, 1},
		{(FadeStartY + FadeEndY) / 2, 0.5},
		{FadeEndY, 0},
		{FadeEndY + 50, 0},
	}
	for _, tt := range tests {
		if got := Alpha(tt.offset); got != tt.want {
			t.Errorf("Alpha(%v)=%v, want %v", tt.offset, got, tt.want)
		}
	}
}
