package styles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a CSS-like color: "#rgb", "#rrggbb", "rgb(r, g, b)" or
// "rgba(r, g, b, a)". Channels are 0-255 and alpha is 0-1. Colors without
// alpha are opaque.
func ParseColor(s string) (colorful.Color, float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		if len(s) != 7 {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, 1, nil
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseFunc(args string, want int) (colorful.Color, float64, error) {
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return colorful.Color{}, 0, fmt.Errorf("%w: want %d components, got %d", ErrInvalidColor, want, len(parts))
	}
	var ch [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return colorful.Color{}, 0, fmt.Errorf("%w: channel %q", ErrInvalidColor, parts[i])
		}
		ch[i] = v / 255
	}
	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return colorful.Color{}, 0, fmt.Errorf("%w: alpha %q", ErrInvalidColor, parts[3])
		}
		alpha = a
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, nil
}

// Blend composites fg over bg with the given opacity in [0, 1].
func Blend(fg, bg colorful.Color, opacity float64) colorful.Color {
	opacity = min(max(opacity, 0), 1)
	return bg.BlendRgb(fg, opacity).Clamped()
}

// ToColorful converts a hex lipgloss color. ANSI palette indices and
// unparsable values give ok == false.
func ToColorful(c lipgloss.Color) (colorful.Color, bool) {
	col, alpha, err := ParseColor(string(c))
	if err != nil {
		return colorful.Color{}, false
	}
	if alpha < 1 {
		bg, _, _ := ParseColor(string(T().BgBase))
		col = Blend(col, bg, alpha)
	}
	return col, true
}

// AccentColor turns a genre color string into an opaque terminal color,
// flattening translucent colors over the theme background. Empty or
// invalid input returns "".
func AccentColor(s string) lipgloss.Color {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	col, ok := ToColorful(lipgloss.Color(s))
	if !ok {
		return ""
	}
	return lipgloss.Color(col.Hex())
}
