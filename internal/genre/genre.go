// Package genre holds the ten genre keys the classifier predicts, their
// accent colors, and the classification result type.
package genre

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Keys are the predicted genres, in display order.
var Keys = []string{
	"blues", "classical", "country", "disco", "hiphop",
	"jazz", "metal", "pop", "reggae", "rock",
}

var defaultColors = map[string]string{
	"blues":     "#1e40af",
	"classical": "#0ea5e9",
	"country":   "#92400e",
	"disco":     "#db2777",
	"hiphop":    "#f97316",
	"jazz":      "#8b5cf6",
	"metal":     "#334155",
	"pop":       "#ec4899",
	"reggae":    "#65a30d",
	"rock":      "#e11d48",
}

// Known reports whether key is one of Keys.
func Known(key string) bool {
	return lo.Contains(Keys, normalize(key))
}

// Palette maps genres to color strings.
type Palette struct {
	colors map[string]string
}

// NewPalette returns the default palette with overrides applied. Override
// keys are case-insensitive; empty values are ignored.
func NewPalette(overrides map[string]string) Palette {
	colors := make(map[string]string, len(defaultColors))
	for k, v := range defaultColors {
		colors[k] = v
	}
	for k, v := range overrides {
		if v = strings.TrimSpace(v); v != "" {
			colors[normalize(k)] = v
		}
	}
	return Palette{colors: colors}
}

// Color returns the color for key, or "" for unknown genres.
func (p Palette) Color(key string) string {
	return p.colors[normalize(key)]
}

// Color returns the default color for key, or "" for unknown genres.
func Color(key string) string {
	return defaultColors[normalize(key)]
}

func normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	// "hip-hop" and "hip hop" are common spellings of the GTZAN key
	return strings.NewReplacer("-", "", " ", "").Replace(key)
}

// Result is a classification result.
type Result struct {
	Filename    string             `json:"filename,omitempty"`
	Genre       string             `json:"genre"`
	Confidence  map[string]float64 `json:"confidence"`
	Spectrogram string             `json:"spectrogram"`
}

// Score is one genre's confidence.
type Score struct {
	Genre      string
	Confidence float64
}

// Top returns the confidence of the predicted genre.
func (r Result) Top() float64 {
	return r.Confidence[r.Genre]
}

// Ranked returns all scores, highest first; ties sort by genre.
func (r Result) Ranked() []Score {
	scores := lo.MapToSlice(r.Confidence, func(g string, c float64) Score {
		return Score{Genre: g, Confidence: c}
	})
	slices.SortFunc(scores, func(a, b Score) int {
		if c := cmp.Compare(b.Confidence, a.Confidence); c != 0 {
			return c
		}
		return strings.Compare(a.Genre, b.Genre)
	})
	return scores
}
