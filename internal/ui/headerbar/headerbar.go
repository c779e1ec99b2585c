// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spectra/internal/ui/render"
	"github.com/llehouerou/spectra/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// appName is rendered as a gradient from the accent to the secondary color.
const appName = "spectra"

var separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Render returns the header bar for the given width: the app name on the
// left and the open file name on the right. file is "" when nothing is
// loaded.
func Render(file string, accent lipgloss.Color, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	name := styles.GradientText(appName, t.AccentOr(accent), t.Secondary, true)

	right := t.S().Muted.Render("no file")
	if file != "" {
		right = t.S().Base.Render(render.Sanitize(file))
	}
	left := name + separatorStyle.Render(" │")
	right = render.TruncateStyled(right, width-lipgloss.Width(left)-1)
	return render.Row(left, right, width)
}
