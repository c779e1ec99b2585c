// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a bordered, padded panel.
	BorderWidth = 4

	// PlayerRows is the number of content rows of the player panel.
	PlayerRows = 4

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// MinVisualizerWidth is the narrowest terminal the visualizer draws in.
	MinVisualizerWidth = 16
)
