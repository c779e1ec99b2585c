package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the fixed dark palette spectra draws with. The genre color, when
// known, takes over from Primary as the accent.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color // rate badge

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase  lipgloss.Color // visualizer background
	BgTrack lipgloss.Color // unfilled slider track

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Error       lipgloss.Color

	once   sync.Once
	styles Styles
}

// Styles are the text styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Accent  lipgloss.Style
	Focused lipgloss.Style // label of the focused slider
	Badge   lipgloss.Style
	Error   lipgloss.Style
}

var dark = Theme{
	Primary:     "#a78bfa",
	Secondary:   "#f1a208",
	FgBase:      "#c0c0c0",
	FgMuted:     "#808080",
	FgSubtle:    "#585858",
	BgBase:      "#1a1a1a",
	BgTrack:     "#303030",
	Border:      "#585858",
	BorderFocus: "#a78bfa",
	Error:       "#ff5555",
}

// T returns the active theme.
func T() *Theme { return &dark }

// S returns the theme's styles, built on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
		t.styles = Styles{
			Base:    fg(t.FgBase),
			Muted:   fg(t.FgMuted),
			Subtle:  fg(t.FgSubtle),
			Title:   fg(t.FgBase).Bold(true),
			Accent:  fg(t.Primary).Bold(true),
			Focused: fg(t.BorderFocus).Underline(true),
			Badge:   fg(t.Secondary).Bold(true),
			Error:   fg(t.Error),
		}
	})
	return &t.styles
}

// AccentOr returns c, or Primary when c is empty.
func (t *Theme) AccentOr(c lipgloss.Color) lipgloss.Color {
	if c == "" {
		return t.Primary
	}
	return c
}
