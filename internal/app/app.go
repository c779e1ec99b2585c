// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spectra/internal/classify"
	"github.com/llehouerou/spectra/internal/config"
	"github.com/llehouerou/spectra/internal/genre"
	"github.com/llehouerou/spectra/internal/keymap"
	"github.com/llehouerou/spectra/internal/media"
	"github.com/llehouerou/spectra/internal/transport"
	"github.com/llehouerou/spectra/internal/ui/prompt"
	"github.com/llehouerou/spectra/internal/ui/styles"
	"github.com/llehouerou/spectra/internal/visualizer"
)

// FocusTarget is the element that owns the keyboard.
type FocusTarget int

const (
	FocusNone FocusTarget = iota
	FocusPrompt
	FocusSeek
	FocusVolume
)

// keymapFocus maps app focus onto the shortcut dispatcher's focus kinds.
func (f FocusTarget) keymapFocus() keymap.Focus {
	switch f {
	case FocusPrompt:
		return keymap.FocusText
	case FocusSeek, FocusVolume:
		return keymap.FocusRange
	default:
		return keymap.FocusNone
	}
}

// Remote receives transport snapshots for an external controller (MPRIS).
type Remote interface {
	Publish(transport.Snapshot)
}

// Options configures the root model.
type Options struct {
	Config *config.Config

	// NewSession creates the media session of each mounted player.
	// Defaults to media.NewPlayer.
	NewSession func() media.Session

	// Scheduler overrides the visualizer frame scheduler.
	Scheduler visualizer.Scheduler

	// Source is opened on start when set.
	Source string

	// Genre and GenreColor preset the accent; GenreColor wins over Genre.
	Genre      string
	GenreColor string

	Remote Remote
}

// Model is the root application model.
type Model struct {
	cfg        *config.Config
	newSession func() media.Session
	scheduler  visualizer.Scheduler
	remote     Remote
	classifier *classify.Client
	palette    genre.Palette

	player *Player
	focus  FocusTarget
	prompt prompt.Model
	help   help.Model

	showHelp   bool
	source     string // file path of the mounted player
	sourceSize int64

	genre       string
	result      *genre.Result
	fixedAccent lipgloss.Color // from --genre-color, never replaced
	accent      lipgloss.Color

	message    string
	msgVersion int

	width, height int
}

// New creates the root model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	newSession := opts.NewSession
	if newSession == nil {
		newSession = func() media.Session { return media.NewPlayer() }
	}

	m := Model{
		cfg:        cfg,
		newSession: newSession,
		scheduler:  opts.Scheduler,
		remote:     opts.Remote,
		palette:    genre.NewPalette(cfg.Genres),
		prompt:     prompt.New(),
		help:       help.New(),
		source:     opts.Source,
	}
	if cfg.HasClassifier() {
		m.classifier = classify.NewClient(cfg.Classifier.URL, cfg.Classifier.Timeout)
	}
	if opts.GenreColor != "" {
		m.fixedAccent = styles.AccentColor(opts.GenreColor)
	}
	m.setGenre(opts.Genre)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{WatchStderr()}
	if m.source != "" {
		cmds = append(cmds, OpenFileCmd(m.source))
	}
	return tea.Batch(cmds...)
}

// Player returns the mounted player, or nil.
func (m Model) Player() *Player { return m.player }

// Focus returns the element owning the keyboard.
func (m Model) Focus() FocusTarget { return m.focus }

// Accent returns the current accent color, "" for the theme default.
func (m Model) Accent() lipgloss.Color { return m.accent }

// Message returns the inline message.
func (m Model) Message() string { return m.message }

// setGenre sets the displayed genre and derives the accent from it.
func (m *Model) setGenre(key string) {
	m.genre = key
	m.accent = m.fixedAccent
	if m.accent == "" && key != "" {
		m.accent = styles.AccentColor(m.palette.Color(key))
	}
	if m.player != nil {
		m.player.SetAccent(m.accent)
	}
}

func (m *Model) playerOptions() PlayerOptions {
	c := m.cfg
	vis := visualizer.Options{
		Bars:      c.Visualizer.Bars,
		Spectrum:  c.SpectrumOptions(),
		Scheduler: m.scheduler,
	}
	if vis.Scheduler == nil {
		vis.Scheduler = visualizer.NewTickScheduler(c.Visualizer.FPS)
	}
	opts := PlayerOptions{
		Volume:     c.DefaultVolume,
		SeekStep:   c.SeekStep,
		SkipStep:   c.SkipStep,
		Autoplay:   c.Autoplay,
		Visualizer: vis,
		Accent:     m.accent,
	}
	if m.player != nil {
		snap := m.player.Snapshot()
		opts.Volume, opts.Muted = snap.Volume, snap.IsMuted
	}
	return opts
}

func (m *Model) publish(s transport.Snapshot) {
	if m.remote != nil {
		m.remote.Publish(s)
	}
}
