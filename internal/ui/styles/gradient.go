package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// GradientText renders text with one color per grapheme, ramping from
// from to to. A single grapheme takes from.
func GradientText(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	ramp := Ramp(from, to, len(clusters))
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Bold(bold).Render(cluster))
	}
	return b.String()
}

// Ramp returns n colors from from to to, blended in HCL space. The ends are
// from and to unchanged; ANSI index ends blend as the theme's muted gray.
func Ramp(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	c1, c2 := rampEnd(from), rampEnd(to)
	out := make([]lipgloss.Color, n)
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	out[0], out[n-1] = from, to
	return out
}

func rampEnd(c lipgloss.Color) colorful.Color {
	if col, ok := ToColorful(c); ok {
		return col
	}
	col, _ := ToColorful(T().FgMuted)
	return col
}
