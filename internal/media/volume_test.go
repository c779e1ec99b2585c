package media

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1, 0},
		{2, 0},
		{0.5, -1},
		{0.25, -2},
		{0, silentVolume},
		{-1, silentVolume},
		{0.0001, silentVolume},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, levelToVolume(tt.level), 1e-9, "level %v", tt.level)
	}
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 0.0, clampLevel(-0.2))
	assert.Equal(t, 1.0, clampLevel(1.3))
	assert.Equal(t, 0.4, clampLevel(0.4))
	assert.Equal(t, 0.0, clampLevel(math.NaN()))
}
