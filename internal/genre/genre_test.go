package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	assert.Len(t, Keys, 10)
	for _, k := range Keys {
		assert.NotEmpty(t, Color(k), k)
	}
	assert.Equal(t, "#e11d48", Color("Rock"))
	assert.Equal(t, "#f97316", Color("hip-hop"))
	assert.Empty(t, Color("polka"))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("jazz"))
	assert.True(t, Known(" Hip Hop "))
	assert.False(t, Known("polka"))
}

func TestPalette_Overrides(t *testing.T) {
	p := NewPalette(map[string]string{
		"ROCK":  "rgb(0, 0, 255)",
		"jazz":  " ",
		"polka": "#123456",
	})

	assert.Equal(t, "rgb(0, 0, 255)", p.Color("rock"))
	assert.Equal(t, "#8b5cf6", p.Color("jazz"), "blank override keeps default")
	assert.Equal(t, "#123456", p.Color("polka"))
	assert.Equal(t, "#e11d48", Color("rock"), "defaults are not modified")
}

func TestResult_Ranked(t *testing.T) {
	r := Result{
		Genre: "jazz",
		Confidence: map[string]float64{
			"blues": 0.1,
			"jazz":  0.7,
			"rock":  0.1,
			"pop":   0.05,
		},
	}

	assert.Equal(t, 0.7, r.Top())
	assert.Equal(t, []Score{
		{"jazz", 0.7},
		{"blues", 0.1},
		{"rock", 0.1},
		{"pop", 0.05},
	}, r.Ranked())
}

func TestResult_TopUnknownGenre(t *testing.T) {
	assert.Zero(t, Result{Genre: "jazz"}.Top())
}
