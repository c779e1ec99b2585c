// Package spectrum turns captured audio samples into frequency snapshots:
// one unsigned byte magnitude per FFT bin, scaled the way browser analyser
// nodes do it so bar heights look familiar.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Defaults match the usual analyser node settings.
const (
	DefaultFFTSize     = 256
	DefaultSmoothing   = 0.8
	DefaultMinDecibels = -100.0
	DefaultMaxDecibels = -30.0

	MinFFTSize = 32
	MaxFFTSize = 32768
)

var ErrInvalidFFTSize = errors.New("fft size must be a power of two in [32, 32768]")

// Options configures an Analyzer. Zero values take the defaults.
type Options struct {
	FFTSize     int
	Smoothing   float64
	MinDecibels float64
	MaxDecibels float64
}

func (o Options) withDefaults() Options {
	if o.FFTSize == 0 {
		o.FFTSize = DefaultFFTSize
	}
	if o.Smoothing <= 0 || o.Smoothing >= 1 || math.IsNaN(o.Smoothing) {
		o.Smoothing = DefaultSmoothing
	}
	if o.MinDecibels == 0 && o.MaxDecibels == 0 {
		o.MinDecibels = DefaultMinDecibels
		o.MaxDecibels = DefaultMaxDecibels
	}
	return o
}

// ValidFFTSize reports whether n can be used as an FFT size.
func ValidFFTSize(n int) bool {
	return n >= MinFFTSize && n <= MaxFFTSize && bits.OnesCount(uint(n)) == 1
}

// Analyzer computes byte frequency data from time-domain samples.
// It keeps the smoothed spectrum of the previous frame, so it is not safe
// for concurrent use.
type Analyzer struct {
	opts Options

	fft      *fourier.FFT
	window   []float64
	windowed []float64
	coeffs   []complex128
	smoothed []float64
}

// NewAnalyzer creates an analyzer. Smoothing outside (0, 1) falls back to
// DefaultSmoothing.
func NewAnalyzer(opts Options) (*Analyzer, error) {
	opts = opts.withDefaults()
	if !ValidFFTSize(opts.FFTSize) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, opts.FFTSize)
	}
	if opts.MinDecibels >= opts.MaxDecibels {
		return nil, fmt.Errorf("min decibels %g must be below max decibels %g",
			opts.MinDecibels, opts.MaxDecibels)
	}

	n := opts.FFTSize
	return &Analyzer{
		opts:     opts,
		fft:      fourier.NewFFT(n),
		window:   blackman(n),
		windowed: make([]float64, n),
		coeffs:   make([]complex128, n/2+1),
		smoothed: make([]float64, n/2),
	}, nil
}

// FFTSize is the number of time-domain samples consumed per frame.
func (a *Analyzer) FFTSize() int { return a.opts.FFTSize }

// BinCount is the length of a frequency snapshot: half the FFT size.
func (a *Analyzer) BinCount() int { return a.opts.FFTSize / 2 }

// Reset forgets the smoothing history.
func (a *Analyzer) Reset() {
	clear(a.smoothed)
}

// ByteFrequencyData writes the current snapshot into dst, overwriting it in
// place. samples holds the most recent audio, oldest first; only the last
// FFTSize samples are used and missing ones count as silence. It writes
// min(len(dst), BinCount()) values.
func (a *Analyzer) ByteFrequencyData(dst []byte, samples []float64) {
	n := a.opts.FFTSize
	if len(samples) > n {
		samples = samples[len(samples)-n:]
	}
	pad := n - len(samples)
	for i := range n {
		v := 0.0
		if i >= pad {
			v = samples[i-pad]
		}
		a.windowed[i] = v * a.window[i]
	}

	a.coeffs = a.fft.Coefficients(a.coeffs, a.windowed)

	tau := a.opts.Smoothing
	scale := 1 / float64(n)
	rangeDB := a.opts.MaxDecibels - a.opts.MinDecibels
	count := min(len(dst), len(a.smoothed))
	for k := range a.smoothed {
		c := a.coeffs[k]
		mag := math.Hypot(real(c), imag(c)) * scale
		s := tau*a.smoothed[k] + (1-tau)*mag
		if math.IsNaN(s) || math.IsInf(s, 0) {
			s = 0
		}
		a.smoothed[k] = s
		if k >= count {
			continue
		}
		db := 20 * math.Log10(s)
		dst[k] = toByte((db - a.opts.MinDecibels) / rangeDB)
	}
}

// toByte maps [0, 1] onto [0, 255], clamping outside values. -Inf (silence)
// maps to 0.
func toByte(v float64) byte {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v * 255)
}

// blackman returns the classic Blackman window (alpha 0.16).
func blackman(n int) []float64 {
	const (
		a0 = 0.42
		a1 = 0.5
		a2 = 0.08
	)
	w := make([]float64, n)
	for i := range w {
		x := 2 * math.Pi * float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(x) + a2*math.Cos(2*x)
	}
	return w
}
