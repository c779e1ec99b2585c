package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/spectra/internal/app"
	"github.com/llehouerou/spectra/internal/config"
	"github.com/llehouerou/spectra/internal/errmsg"
	"github.com/llehouerou/spectra/internal/mpris"
	"github.com/llehouerou/spectra/internal/stderr"
)

type flags struct {
	genre       string
	genreColor  string
	configPath  string
	debug       bool
	logFile     string
	autoplay    bool
	classifyURL string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "spectra [file]",
		Short:         "Terminal audio player with a live spectrum visualizer",
		Version:       appVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			if err := run(cmd, f, source); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.genre, "genre", "", "genre whose color tints the player (e.g. jazz)")
	fl.StringVar(&f.genreColor, "genre-color", "", "explicit accent color (#rrggbb, rgb() or rgba())")
	fl.StringVarP(&f.configPath, "config", "c", "", "additional config file")
	fl.BoolVar(&f.debug, "debug", false, "write a debug log")
	fl.StringVar(&f.logFile, "log-file", "", "debug log path (default $XDG_STATE_HOME/spectra/debug.log)")
	fl.BoolVar(&f.autoplay, "autoplay", false, "start playing as soon as the file is ready")
	fl.StringVar(&f.classifyURL, "classify-url", "", "genre classification server URL")
	return cmd
}

func run(cmd *cobra.Command, f flags, source string) error {
	closeLog, err := setupLogging(f.debug, f.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if cmd.Flags().Changed("autoplay") {
		cfg.Autoplay = f.autoplay
	}
	if f.classifyURL != "" {
		cfg.Classifier.URL = f.classifyURL
		cfg.Normalize()
	}

	// Capture before the audio output opens so ALSA noise stays off screen.
	if err := stderr.Start(); err != nil {
		log.Debug().Err(err).Msg("main: stderr capture unavailable")
	}
	defer stderr.Stop()

	opts := app.Options{
		Config:     cfg,
		Source:     source,
		Genre:      f.genre,
		GenreColor: f.genreColor,
	}

	var remote *mpris.Adapter
	if cfg.MPRISEnabled() {
		remote, err = mpris.New()
		if err != nil {
			log.Debug().Err(err).Msg("main: mpris unavailable")
		} else {
			defer remote.Close()
			opts.Remote = remote
		}
	}

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	if remote != nil {
		remote.Attach(p)
	}
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

// setupLogging routes the global zerolog logger to a file when enabled
// and disables it otherwise.
func setupLogging(enabled bool, path string) (func(), error) {
	if !enabled {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return func() {}, nil
	}
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join("spectra", "debug.log"))
		if err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(file).With().Timestamp().Logger()
	log.Debug().Str("version", appVersion()).Msg("main: start")
	return func() { file.Close() }, nil
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}
	return bi.Main.Version
}
