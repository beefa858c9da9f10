// Package canvas is the drawing surface: a rune grid addressed in world
// coordinates. The scene decides what and where; the canvas turns that into
// cells, and the caller styles them.
package canvas

import (
	"math"
	"strings"

	"logfunnel/internal/physics"
)

// StyleNone marks cells drawn without a palette color.
const StyleNone = -1

type Cell struct {
	R     rune
	Style int
}

type Canvas struct {
	cols, rows     int
	worldW, worldH float64
	cells          []Cell
}

// New creates a canvas of cols x rows cells mapping the given world extent.
func New(cols, rows int, worldW, worldH float64) *Canvas {
	c := &Canvas{cols: cols, rows: rows, worldW: worldW, worldH: worldH}
	c.cells = make([]Cell, cols*rows)
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{R: ' ', Style: StyleNone}
	}
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

// At returns the cell at grid coordinates, for tests.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return Cell{R: ' ', Style: StyleNone}
	}
	return c.cells[y*c.cols+x]
}

func (c *Canvas) set(x, y int, r rune, style int) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.cells[y*c.cols+x] = Cell{R: r, Style: style}
}

// cell converts world coordinates to grid coordinates.
func (c *Canvas) cell(p physics.Vec) (int, int) {
	x := int(p.X / c.worldW * float64(c.cols))
	y := int(p.Y / c.worldH * float64(c.rows))
	return x, y
}

// Line draws a straight segment between two world points.
func (c *Canvas) Line(a, b physics.Vec, r rune, style int) {
	x0, y0 := c.cell(a)
	x1, y1 := c.cell(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// CircleOutline draws the circle's rim.
func (c *Canvas) CircleOutline(center physics.Vec, radius float64, style int) {
	// enough samples that adjacent rim cells touch
	rimCells := radius / c.worldW * float64(c.cols)
	steps := int(2*math.Pi*rimCells) * 2
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		p := physics.Vec{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
		x, y := c.cell(p)
		c.set(x, y, '•', style)
	}
}

// Polygon draws the outline of a closed polygon given in world coordinates.
func (c *Canvas) Polygon(verts []physics.Vec, style int) {
	n := len(verts)
	for i := 0; i < n; i++ {
		c.Line(verts[i], verts[(i+1)%n], '▪', style)
	}
}

// Text writes s centered on the given world point.
func (c *Canvas) Text(center physics.Vec, s string, style int) {
	x, y := c.cell(center)
	x -= len(s) / 2
	for i, r := range s {
		c.set(x+i, y, r, style)
	}
}

// String renders the grid, batching same-styled runs through render.
// render receives StyleNone for unstyled text.
func (c *Canvas) String(render func(style int, s string) string) string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.rows; y++ {
		runStyle := StyleNone
		run.Reset()
		for x := 0; x < c.cols; x++ {
			cl := c.cells[y*c.cols+x]
			if cl.Style != runStyle && run.Len() > 0 {
				out.WriteString(render(runStyle, run.String()))
				run.Reset()
			}
			runStyle = cl.Style
			run.WriteRune(cl.R)
		}
		if run.Len() > 0 {
			out.WriteString(render(runStyle, run.String()))
		}
		if y < c.rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
