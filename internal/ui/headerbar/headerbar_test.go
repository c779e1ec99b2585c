package headerbar

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		width int
		want  []string
	}{
		{"no file", "", 40, []string{"spectra", "no file"}},
		{"file", "song.mp3", 40, []string{"spectra", "song.mp3"}},
		{"long file is truncated", "a-very-long-file-name-that-does-not-fit.wav", 30, []string{"spectra", "…"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.file, "", tt.width)
			plain := ansi.Strip(got)
			for _, w := range tt.want {
				assert.Contains(t, plain, w)
			}
			assert.Equal(t, tt.width, ansi.StringWidth(got))
		})
	}
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render("song.mp3", "", 10))
}
