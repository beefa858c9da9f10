package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"logfunnel/help"
	"logfunnel/internal/domain"
	"logfunnel/internal/physics"
	"logfunnel/internal/queue"
	"logfunnel/internal/scene"
	"logfunnel/internal/ui/canvas"
	"logfunnel/internal/ui/styles"
)

const (
	frameRate     = 30
	frameInterval = time.Second / frameRate
	panelWidth    = 36

	// canvas style slots past the object palette
	styleWall = scene.PaletteSize
)

type tickMsg time.Time

type keyMap struct {
	Quit  key.Binding
	Reset key.Binding
}

var defaultKeys = keyMap{
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset scale")),
}

// intake is the sink handed to the event source: queue the event and stamp
// its arrival. Runs on the source goroutine.
type intake struct {
	q     *queue.Queue
	rates *scene.RateWindow
}

func (i intake) Push(ev domain.LogEvent) {
	i.q.Push(ev)
	i.rates.Record(time.Now())
}

// Model is the render loop: sole consumer of the queue and sole owner of
// scene, tracker, and canvas state.
type Model struct {
	src   domain.EventSource
	q     *queue.Queue
	rates *scene.RateWindow
	sc    *scene.Scene
	track scene.Tracker
	keys  keyMap

	width, height int
}

func New(src domain.EventSource) Model {
	return Model{
		src:   src,
		q:     queue.New(),
		rates: scene.NewRateWindow(),
		sc:    scene.New(),
		keys:  defaultKeys,
	}
}

func (m Model) Init() tea.Cmd {
	// daemon producer: never joined, dies with the process
	m.src.Start(intake{q: m.q, rates: m.rates})
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.drain()
		m.sc.Step(1.0 / frameRate)
		m.sc.Reap()
		return m, frameTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.sc.ResetScale()
			return m, nil
		}
	}
	return m, nil
}

// drain empties the queue into the scene. Events rejected at capacity are
// dropped, not re-queued.
func (m *Model) drain() {
	for {
		ev, ok := m.q.TryPop()
		if !ok {
			return
		}
		if m.sc.Spawn(ev) {
			m.track.Push(ev.URL, ev.Size)
		}
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	head := styles.Header.Render("logfunnel │ live request funnel") +
		styles.Footer.Render("   [r] reset scale  [q] quit")
	foot := styles.Footer.Render(fmt.Sprintf("%d live objects • %d queued",
		len(m.sc.Objects()), m.q.Len()))

	rows := m.height - 2 // header + footer
	mainCols := m.width - panelWidth
	if rows < 4 || mainCols < 10 {
		return "window too small"
	}

	main := m.renderMain(mainCols, rows)
	panel := styles.Panel.Height(rows).Width(panelWidth - 2).Render(m.renderPanel(rows))
	body := lipgloss.JoinHorizontal(lipgloss.Top, main, panel)

	return lipgloss.JoinVertical(lipgloss.Left, head, body, foot)
}

func (m Model) renderMain(cols, rows int) string {
	cv := canvas.New(cols, rows, scene.MainAreaWidth, scene.ScreenHeight)

	fn := m.sc.Funnel()
	cv.Line(fn.Left.A, fn.Left.B, '█', styleWall)
	cv.Line(fn.Right.A, fn.Right.B, '█', styleWall)

	for _, o := range m.sc.Objects() {
		for _, sh := range o.Shapes() {
			switch s := sh.(type) {
			case *physics.Circle:
				cv.CircleOutline(o.Position(), s.Radius, o.Color)
			case *physics.Poly:
				cv.Polygon(s.Vertices(), o.Color)
			}
		}
	}
	// labels after shapes so the status stays readable on top
	for _, o := range m.sc.Objects() {
		cv.Text(o.Position(), strconv.Itoa(o.Event.Status), styleWall)
	}

	return cv.String(func(style int, s string) string {
		switch {
		case style == canvas.StyleNone:
			return s
		case style == styleWall:
			return styles.Wall.Render(s)
		default:
			return styles.Palette[style%len(styles.Palette)].Render(s)
		}
	})
}

func (m Model) renderPanel(rows int) string {
	statLines := 3
	scrollRows := rows - statLines - 1
	if scrollRows < 1 {
		scrollRows = 1
	}
	lines := make([]string, scrollRows)

	inner := panelWidth - 4 // panel border + padding
	for _, e := range m.track.Visible() {
		alpha := scene.Alpha(e.Offset)
		if alpha <= 0 {
			continue
		}
		row := int(e.Offset / scene.ScrollAreaHeight * float64(scrollRows))
		if row < 0 || row >= scrollRows {
			continue
		}

		label := e.Label
		if len(label) > scene.MaxLabelLen {
			label = label[:scene.MaxLabelLen] + "..."
		}
		size := help.FormatSize(e.Size)
		gap := inner - len(label) - len(size)
		if gap < 1 {
			keep := len(label) + gap - 1
			if keep < 1 {
				keep = 1
			}
			label = label[:keep]
			gap = 1
		}

		labelSt, sizeSt := styles.Stat, styles.SizeGreen
		if alpha < 0.75 {
			labelSt = styles.Fade(alpha)
			sizeSt = labelSt
		}
		lines[row] = labelSt.Render(label) + strings.Repeat(" ", gap) + sizeSt.Render(size)
	}

	now := time.Now()
	stats := []string{
		styles.Stat.Render("Max Size: " + help.FormatSize(m.sc.LargestSeen())),
		styles.Stat.Render(fmt.Sprintf("Requests/min: %d", m.rates.CountSince(now, time.Minute))),
		styles.Stat.Render(fmt.Sprintf("Requests/sec: %d", m.rates.CountSince(now, time.Second))),
	}

	return strings.Join(lines, "\n") + "\n\n" + strings.Join(stats, "\n")
}
