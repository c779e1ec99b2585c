// Package visualizer draws live frequency bars for the playing source.
//
// A Model owns at most one analyzer tap on its media session, attached on
// the first Start and kept across pause and resume until Close. Each Start
// opens a render loop identified by a token; Stop and Close invalidate the
// token synchronously, so frames scheduled by an earlier loop are dropped
// on arrival instead of scheduling more frames.
package visualizer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/spectra/internal/media"
	"github.com/llehouerou/spectra/internal/spectrum"
	"github.com/llehouerou/spectra/internal/ui/styles"
)

// DefaultBars is the default number of bars.
const DefaultBars = 64

// Opacity range of a bar: silent bars are drawn at minOpacity, full-scale
// bars at 1.
const minOpacity = 0.3

// Options configures a Model.
type Options struct {
	Bars      int
	Spectrum  spectrum.Options
	Scheduler Scheduler // defaults to a TickScheduler at DefaultFPS
	Color     lipgloss.Color
}

// Model is the visualizer component.
type Model struct {
	id        string
	opts      Options
	scheduler Scheduler

	tap         media.Tap
	analyzer    *spectrum.Analyzer
	unavailable bool
	closed      bool

	token  uint64 // live loop token, 0 when no loop runs
	issued uint64

	bins   []byte
	bars   []byte
	cols   []byte // bars bucketed to the canvas width
	canvas *Canvas

	color colorful.Color
	bg    colorful.Color
}

// New creates a visualizer. id must be unique among live visualizers.
func New(id string, opts Options) *Model {
	if opts.Bars <= 0 {
		opts.Bars = DefaultBars
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewTickScheduler(DefaultFPS)
	}
	m := &Model{
		id:        id,
		opts:      opts,
		scheduler: opts.Scheduler,
		bars:      make([]byte, opts.Bars),
		canvas:    NewCanvas(0, 0),
	}
	m.bg, _ = styles.ToColorful(styles.T().BgBase)
	m.SetColor(opts.Color)
	return m
}

// ID returns the instance id carried by this visualizer's frames.
func (m *Model) ID() string { return m.id }

// Token returns the live loop token, 0 when stopped.
func (m *Model) Token() uint64 { return m.token }

// Active reports whether a render loop is running.
func (m *Model) Active() bool { return m.token != 0 }

// Unavailable reports whether the analyzer could not be set up. The
// visualizer then stays blank for the rest of its life.
func (m *Model) Unavailable() bool { return m.unavailable }

// Start begins a render loop, attaching the analyzer tap on first use.
// It returns nil when a loop is already running, when the analyzer is
// unavailable or after Close.
func (m *Model) Start(s media.Session) tea.Cmd {
	if m.closed || m.unavailable || m.token != 0 {
		return nil
	}
	if m.tap == nil && !m.attach(s) {
		return nil
	}
	m.issued++
	m.token = m.issued
	log.Debug().Str("id", m.id).Uint64("token", m.token).Msg("visualizer: start loop")
	return m.scheduler.Next(FrameMsg{ID: m.id, Token: m.token})
}

func (m *Model) attach(s media.Session) bool {
	analyzer, err := spectrum.NewAnalyzer(m.opts.Spectrum)
	if err == nil {
		m.tap, err = s.AttachTap(analyzer.FFTSize())
	}
	if err != nil {
		log.Debug().Err(err).Str("id", m.id).Msg("visualizer: analyzer unavailable")
		m.unavailable = true
		return false
	}
	m.analyzer = analyzer
	m.bins = make([]byte, analyzer.BinCount())
	log.Debug().Str("id", m.id).Int("fft_size", analyzer.FFTSize()).Msg("visualizer: tap attached")
	return true
}

// Stop cancels the render loop. The last frame stays on screen.
func (m *Model) Stop() {
	if m.token != 0 {
		log.Debug().Str("id", m.id).Uint64("token", m.token).Msg("visualizer: stop loop")
	}
	m.token = 0
}

// Reset stops the loop and clears the bars and the smoothing history, for a
// source change.
func (m *Model) Reset() {
	m.Stop()
	clear(m.bars)
	if m.analyzer != nil {
		m.analyzer.Reset()
	}
	m.canvas.Clear()
}

// Close stops the loop and detaches the tap. The Model cannot be
// restarted.
func (m *Model) Close() {
	m.Stop()
	m.closed = true
	if m.tap != nil {
		if err := m.tap.Close(); err != nil {
			log.Debug().Err(err).Str("id", m.id).Msg("visualizer: detach tap")
		}
		m.tap = nil
		log.Debug().Str("id", m.id).Msg("visualizer: tap detached")
	}
}

// Update handles a frame: it samples the spectrum and schedules the next
// frame. Frames for another instance or a cancelled loop are dropped.
func (m *Model) Update(msg FrameMsg) tea.Cmd {
	if msg.ID != m.id || m.token == 0 || msg.Token != m.token || m.tap == nil {
		return nil
	}
	samples := m.tap.Samples(m.analyzer.FFTSize())
	m.analyzer.ByteFrequencyData(m.bins, samples)
	spectrum.BucketInto(m.bars, m.bins)
	return m.scheduler.Next(msg)
}

// Bars returns the current bar magnitudes.
func (m *Model) Bars() []byte { return m.bars }

// SetColor sets the bar color. An empty or unparsable color selects the
// theme accent.
func (m *Model) SetColor(c lipgloss.Color) {
	col, ok := styles.ToColorful(styles.T().AccentOr(c))
	if !ok {
		col, _ = styles.ToColorful(styles.T().Primary)
	}
	m.color = col
}

// SetSize sets the drawing surface size in cells.
func (m *Model) SetSize(width, height int) {
	if width == m.canvas.Width() && height == m.canvas.Height() {
		return
	}
	m.canvas.Resize(width, height)
}

// View draws the current bars. Nothing is drawn when the analyzer is
// unavailable.
func (m *Model) View() string {
	if m.unavailable {
		return ""
	}
	m.draw()
	return m.canvas.String()
}

// draw spreads the bars over the full canvas width, bar i spanning columns
// [i*W/n, (i+1)*W/n). A canvas narrower than the bar count averages
// neighbouring bars down to one per column.
func (m *Model) draw() {
	c := m.canvas
	c.Clear()
	w := c.Width()
	if w == 0 || c.Height() == 0 {
		return
	}
	bars := m.bars
	if len(bars) > w {
		if len(m.cols) != w {
			m.cols = make([]byte, w)
		}
		spectrum.BucketInto(m.cols, bars)
		bars = m.cols
	}
	n := len(bars)
	for i, v := range bars {
		x0, x1 := i*w/n, (i+1)*w/n
		eighths := int(float64(v) / 255 * float64(c.Height()*8))
		if eighths == 0 || x1 <= x0 {
			continue
		}
		opacity := minOpacity + (1-minOpacity)*float64(v)/255
		color := lipgloss.Color(styles.Blend(m.color, m.bg, opacity).Hex())
		c.FillBar(x0, x1-x0, eighths, color)
	}
}
