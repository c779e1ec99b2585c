package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine returns n samples of a sine landing exactly on FFT bin k.
func sine(n, k int, amp float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = amp * math.Sin(2*math.Pi*float64(k)*float64(i)/float64(n))
	}
	return s
}

func TestNewAnalyzer_Defaults(t *testing.T) {
	a, err := NewAnalyzer(Options{})
	require.NoError(t, err)
	assert.Equal(t, 256, a.FFTSize())
	assert.Equal(t, 128, a.BinCount())
	assert.Equal(t, DefaultSmoothing, a.opts.Smoothing)
	assert.Equal(t, DefaultMinDecibels, a.opts.MinDecibels)
	assert.Equal(t, DefaultMaxDecibels, a.opts.MaxDecibels)
}

func TestNewAnalyzer_Rejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"not power of two", Options{FFTSize: 300}},
		{"too small", Options{FFTSize: 16}},
		{"too large", Options{FFTSize: 65536}},
		{"inverted decibels", Options{MinDecibels: -20, MaxDecibels: -40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalyzer(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestValidFFTSize(t *testing.T) {
	assert.True(t, ValidFFTSize(32))
	assert.True(t, ValidFFTSize(2048))
	assert.True(t, ValidFFTSize(32768))
	assert.False(t, ValidFFTSize(0))
	assert.False(t, ValidFFTSize(100))
}

func TestByteFrequencyData_Silence(t *testing.T) {
	a, err := NewAnalyzer(Options{})
	require.NoError(t, err)

	dst := make([]byte, a.BinCount())
	for i := range dst {
		dst[i] = 99
	}
	a.ByteFrequencyData(dst, make([]float64, 256))

	assert.Equal(t, make([]byte, 128), dst)
}

func TestByteFrequencyData_PeakAtToneBin(t *testing.T) {
	a, err := NewAnalyzer(Options{})
	require.NoError(t, err)
	a.opts.Smoothing = 0

	dst := make([]byte, a.BinCount())
	a.ByteFrequencyData(dst, sine(256, 20, 0.5))

	assert.Equal(t, byte(255), dst[20])
	assert.Less(t, dst[60], dst[20])
	assert.Less(t, dst[100], byte(100))
}

func TestByteFrequencyData_SmoothingCarriesOver(t *testing.T) {
	a, err := NewAnalyzer(Options{})
	require.NoError(t, err)

	dst := make([]byte, a.BinCount())
	a.ByteFrequencyData(dst, sine(256, 20, 0.5))
	first := dst[20]
	a.ByteFrequencyData(dst, make([]float64, 256))
	decayed := dst[20]

	assert.Positive(t, decayed, "previous frame should still contribute")
	assert.LessOrEqual(t, decayed, first)

	a.Reset()
	a.ByteFrequencyData(dst, make([]float64, 256))
	assert.Zero(t, dst[20])
}

func TestByteFrequencyData_ShortInputAndDst(t *testing.T) {
	a, err := NewAnalyzer(Options{})
	require.NoError(t, err)

	dst := make([]byte, 10)
	assert.NotPanics(t, func() {
		a.ByteFrequencyData(dst, []float64{0.1, 0.2})
		a.ByteFrequencyData(dst, nil)
		a.ByteFrequencyData(dst, make([]float64, 1024))
	})
}

func TestToByte(t *testing.T) {
	assert.Equal(t, byte(0), toByte(math.Inf(-1)))
	assert.Equal(t, byte(0), toByte(-0.5))
	assert.Equal(t, byte(127), toByte(0.5))
	assert.Equal(t, byte(255), toByte(1.2))
}
