// Package playerbar renders the transport surface of the mounted player.
package playerbar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spectra/internal/timefmt"
	"github.com/llehouerou/spectra/internal/transport"
	"github.com/llehouerou/spectra/internal/ui"
	"github.com/llehouerou/spectra/internal/ui/render"
	"github.com/llehouerou/spectra/internal/ui/slider"
	"github.com/llehouerou/spectra/internal/ui/styles"
)

// Focus is the player control that owns the keyboard.
type Focus int

const (
	FocusNone Focus = iota
	FocusSeek
	FocusVolume
)

const (
	skipBackSymbol    = "«"
	playSymbol        = "▶"
	pauseSymbol       = "⏸"
	skipForwardSymbol = "»"

	volumeBarWidth = 10
	separator      = "   "
)

// State holds everything needed to render the player bar.
type State struct {
	transport.Snapshot
	Accent     lipgloss.Color
	Genre      string
	Confidence float64 // Confidence of Genre, 0 when unknown
	Focus      Focus
	Focused    bool     // Panel border takes the accent color
	Message    string   // Overrides the transport message when set
	OpenKeys   []string // Keys of the open prompt, hinted while idle
}

// Height returns the total height of the player bar.
func Height() int {
	return ui.PlayerRows + ui.BorderHeight
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	inner := max(width-ui.BorderWidth, 0)
	rows := []string{
		render.Fit(header(s, inner), inner),
		render.Fit(controls(s, inner), inner),
		render.Fit(status(s), inner),
		render.Fit(message(s, inner), inner),
	}
	return styles.PanelStyle(s.Focused, s.Accent).
		Padding(0, 1).
		Width(max(width-2, 0)).
		Render(strings.Join(rows, "\n"))
}

func header(s State, width int) string {
	t := styles.T()
	if s.State == transport.StateIdle {
		if len(s.OpenKeys) == 0 {
			return t.S().Muted.Render("No file loaded")
		}
		return t.S().Muted.Render("Press " + strings.Join(s.OpenKeys, "/") + " to open a WAV or MP3 file")
	}

	title := s.Info.Title
	if title == "" {
		title = "Unknown Track"
	}
	left := t.S().Title.Render(render.Sanitize(title))
	if s.Info.Artist != "" {
		left += t.S().Muted.Render(" · " + render.Sanitize(s.Info.Artist))
	}

	right := GenreBadge(s.Genre, s.Confidence, s.Accent)
	if right == "" {
		return render.TruncateStyled(left, width)
	}
	return render.Row(left, right, width)
}

// GenreBadge renders "jazz 81.00%" in the accent color, or "" without a genre.
func GenreBadge(genre string, confidence float64, accent lipgloss.Color) string {
	if genre == "" {
		return ""
	}
	text := genre
	if confidence > 0 {
		text += " " + FormatConfidence(confidence)
	}
	return lipgloss.NewStyle().
		Foreground(styles.T().AccentOr(accent)).
		Bold(true).
		Render(text)
}

// FormatConfidence formats a [0, 1] confidence as a percentage with two
// decimals.
func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.2f%%", c*100)
}

func controls(s State, width int) string {
	t := styles.T()
	ready := s.State.Ready()

	button := t.S().Base
	if !ready {
		button = t.S().Subtle
	}
	play := playSymbol
	playStyle := button
	if s.IsPlaying {
		play = pauseSymbol
		playStyle = lipgloss.NewStyle().Foreground(t.AccentOr(s.Accent)).Bold(true)
	}
	buttons := button.Render(skipBackSymbol) + " " +
		playStyle.Render(play) + " " +
		button.Render(skipForwardSymbol)

	pos := timefmt.Format(s.CurrentTime)
	dur := timefmt.Format(s.Duration)
	fixed := lipgloss.Width(buttons) + len(separator) + len(pos) + len(dur) + 2
	barWidth := max(width-fixed, ui.MinProgressBarWidth)

	return buttons + separator +
		t.S().Base.Render(pos) + " " +
		slider.Track(s.Progress(), barWidth, s.Accent, s.Focus == FocusSeek) + " " +
		t.S().Muted.Render(dur)
}

func status(s State) string {
	t := styles.T()

	label := fmt.Sprintf("VOL %3d%%", int(s.Volume*100+0.5))
	if s.IsMuted {
		label = "MUTE    "
	}
	volume := t.S().Muted.Render(label) + " " +
		slider.Track(effectiveVolume(s.Session), volumeBarWidth, s.Accent, s.Focus == FocusVolume)

	parts := []string{volume, t.S().Badge.Render(FormatRate(s.PlaybackRate))}
	if label := stateLabel(s.State); label != "" {
		parts = append(parts, t.S().Subtle.Render(label))
	}
	return strings.Join(parts, separator)
}

func effectiveVolume(s transport.Session) float64 {
	if s.IsMuted {
		return 0
	}
	return s.Volume
}

// FormatRate formats a playback rate as "1.5x".
func FormatRate(r float64) string {
	if r <= 0 {
		r = 1
	}
	return strconv.FormatFloat(r, 'f', -1, 64) + "x"
}

func stateLabel(st transport.State) string {
	switch st {
	case transport.StateLoading:
		return "Loading…"
	case transport.StatePaused:
		return "Paused"
	case transport.StatePlaying:
		return "Playing"
	case transport.StateEnded:
		return "Ended"
	default:
		return ""
	}
}

func message(s State, width int) string {
	msg := s.Message
	if msg == "" {
		msg = s.Snapshot.Message()
	}
	if msg == "" {
		return ""
	}
	return styles.T().S().Error.Render(render.Truncate(msg, width))
}
