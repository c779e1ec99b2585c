package visualizer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// levels are the eighth-block glyphs, from empty to full.
var levels = []rune(" ▁▂▃▄▅▆▇█")

// Canvas is a grid of terminal cells bars are drawn onto. Row 0 is the top.
type Canvas struct {
	width, height int
	glyphs        []rune
	colors        []lipgloss.Color
}

// NewCanvas creates a cleared canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.glyphs = make([]rune, c.width*c.height)
	c.colors = make([]lipgloss.Color, c.width*c.height)
	c.Clear()
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.glyphs {
		c.glyphs[i] = ' '
		c.colors[i] = ""
	}
}

// FillBar draws a bar of the given width starting at column x, rising
// eighths eighth-cells from the bottom. Out-of-range parts are clipped.
func (c *Canvas) FillBar(x, width, eighths int, color lipgloss.Color) {
	eighths = min(eighths, c.height*8)
	for col := max(x, 0); col < min(x+width, c.width); col++ {
		for row := range c.height {
			fromBottom := c.height - 1 - row
			fill := min(max(eighths-fromBottom*8, 0), 8)
			if fill == 0 {
				continue
			}
			i := row*c.width + col
			c.glyphs[i] = levels[fill]
			c.colors[i] = color
		}
	}
}

// Cell returns the glyph and color at column x, row y.
func (c *Canvas) Cell(x, y int) (rune, lipgloss.Color) {
	i := y*c.width + x
	return c.glyphs[i], c.colors[i]
}

// String renders the canvas, styling runs of equally colored cells together.
func (c *Canvas) String() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	var b strings.Builder
	for row := range c.height {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := row * c.width
		start := 0
		for col := 1; col <= c.width; col++ {
			if col < c.width && c.colors[line+col] == c.colors[line+start] {
				continue
			}
			run := string(c.glyphs[line+start : line+col])
			if color := c.colors[line+start]; color != "" {
				run = lipgloss.NewStyle().Foreground(color).Render(run)
			}
			b.WriteString(run)
			start = col
		}
	}
	return b.String()
}
