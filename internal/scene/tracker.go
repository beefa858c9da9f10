package scene

// Entry is one row of the scrolling recent-requests list.
type Entry struct {
	Label  string
	Size   int64
	Offset float64 // vertical offset from the top of the scroll area
}

// Tracker keeps the scrolling list: every push shifts existing entries down
// one line and drops the ones that scrolled past the area. Offsets only ever
// grow while an entry lives.
type Tracker struct {
	entries []Entry
}

func (t *Tracker) Push(label string, size int64) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		e.Offset += LineSpacing
		if e.Offset >= ScrollAreaHeight {
			continue
		}
		kept = append(kept, e)
	}
	t.entries = append(kept, Entry{Label: label, Size: size, Offset: 0})
}

// Visible returns the live entries, oldest first (largest offset last is the
// newest at the top, offset ordering is descending with age).
func (t *Tracker) Visible() []Entry { return t.entries }

// Alpha returns the entry's opacity in [0,1]: fully opaque until FadeStartY,
// then linear to zero at FadeEndY.
func Alpha(offset float64) float64 {
	if offset < FadeStartY {
		return 1
	}
	if offset >= FadeEndY {
		return 0
	}
	a := 1 - (offset-FadeStartY)/(FadeEndY-FadeStartY)
	if a < 0 {
		a = 0
	}
	return a
}
