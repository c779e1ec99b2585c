// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which secondary lines (genre
// scores) are hidden.
const NarrowThreshold = 60

// ContentOpts contains the heights of the fixed sections around the
// visualizer.
type ContentOpts struct {
	HeaderHeight    int
	PlayerBarHeight int
	ScoresHeight    int // 0 if no classification result
	PromptHeight    int // 0 if the prompt is closed
	HelpHeight      int
}

// ContentHeight calculates the height left for the visualizer panel,
// borders included. This is the terminal height minus every fixed section.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.PlayerBarHeight
	height -= opts.ScoresHeight
	height -= opts.PromptHeight
	height -= opts.HelpHeight
	return max(height, 0)
}

// VisualizerHeight returns the number of bar rows to draw: the configured
// height, shrunk to what fits inside a bordered panel of contentHeight.
// Zero means the panel is not shown.
func VisualizerHeight(contentHeight, configured, borderHeight int) int {
	rows := min(configured, contentHeight-borderHeight)
	if rows <= 0 {
		return 0
	}
	return rows
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}
