package viz

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lorenz/internal/engine"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille dot grid. Each cell holds 2x4 dots and the color of
// the last dot drawn into it. It implements engine.Surface in dot
// coordinates, so a Width x Height canvas is a (2*Width) x (4*Height) viewport.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.RGBA
	pen           color.RGBA
}

var _ engine.Surface = (*Canvas)(nil)

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.RGBA, h),
		pen:    engine.White,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
	}
	c.Clear()
	return c
}

// Dots is the viewport size in dots.
func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) SetDrawColor(col color.RGBA) { c.pen = col }

// Set lights the dot at (x, y). Out-of-range dots are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = c.pen
}

func (c *Canvas) DrawPoint(x, y int) { c.Set(x, y) }

// Clear blanks every cell. The pen color is kept.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = color.RGBA{}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. The segment is first
// clipped to the viewport, so the walk never leaves the canvas.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	w, h := c.Dots()
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, w-1, h-1)
	if !ok {
		return
	}

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Lit counts the dots currently set.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := r - blank; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

// String renders the grid without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the grid with each run of same-colored cells styled once.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			run := string(row[start:j])
			if col := c.Colors[i][start]; col.A != 0 {
				run = lipgloss.NewStyle().Foreground(HexColor(col)).Render(run)
			}
			b.WriteString(run)
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// HexColor converts c to a lipgloss "#rrggbb" color.
func HexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(x, y, xmax, ymax float64) int {
	code := 0
	if x < 0 {
		code |= outLeft
	} else if x > xmax {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y > ymax {
		code |= outBottom
	}
	return code
}

// clipLine clips a segment to [0, xmax] x [0, ymax] (Cohen-Sutherland).
func clipLine(ix0, iy0, ix1, iy1, xmax, ymax int) (int, int, int, int, bool) {
	if xmax < 0 || ymax < 0 {
		return 0, 0, 0, 0, false
	}
	x0, y0, x1, y1 := float64(ix0), float64(iy0), float64(ix1), float64(iy1)
	fx, fy := float64(xmax), float64(ymax)
	c0, c1 := outcode(x0, y0, fx, fy), outcode(x1, y1, fx, fy)

	for c0|c1 != 0 {
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x, y = x0+(x1-x0)*(fy-y0)/(y1-y0), fy
		case out&outTop != 0:
			x, y = x0+(x1-x0)*(0-y0)/(y1-y0), 0
		case out&outRight != 0:
			x, y = fx, y0+(y1-y0)*(fx-x0)/(x1-x0)
		default:
			x, y = 0, y0+(y1-y0)*(0-x0)/(x1-x0)
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = outcode(x0, y0, fx, fy)
		} else {
			x1, y1 = x, y
			c1 = outcode(x1, y1, fx, fy)
		}
	}

	return int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
