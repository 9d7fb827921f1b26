package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/studioboard/internal/config"
	"github.com/five82/studioboard/internal/prefs"
	"github.com/five82/studioboard/internal/state"
	"github.com/five82/studioboard/internal/studio"
	"github.com/five82/studioboard/internal/ui"
)

// Options configure the studioboard application. Non-empty fields override
// the matching config file setting.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/studioboard/prefs.toml
	DataFile   string
	StartRoute string
	PollEvery  int // seconds; zero uses the config value
	LogOutput  string
	Debug      bool
}

// Run boots the studioboard TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogFile, opts.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	source, err := newSource(cfg)
	if err != nil {
		return fmt.Errorf("init client source: %w", err)
	}

	store := &state.Store{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	logger.Info("starting",
		"source", describeSource(cfg),
		"route", cfg.StartRoute,
		"poll", interval,
		"theme", userPrefs.Theme,
	)

	// Start background poller
	StartPoller(ctx, logger, store, source, interval)

	// Do initial refresh to populate store before UI starts
	_ = refresh(ctx, logger, store, source)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		Logger:    logger,
		PollTick:  ui.DefaultUIInterval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if v := strings.TrimSpace(opts.DataFile); v != "" {
		path, err := config.ExpandPath(v)
		if err != nil {
			return fmt.Errorf("resolve data file: %w", err)
		}
		cfg.DataFile = path
	}
	if v := strings.TrimSpace(opts.StartRoute); v != "" {
		cfg.StartRoute = v
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if v := strings.TrimSpace(opts.LogOutput); v != "" {
		path, err := config.ExpandPath(v)
		if err != nil {
			return fmt.Errorf("resolve log output: %w", err)
		}
		cfg.LogFile = path
	}
	return nil
}

// newSource prefers the local data file and falls back to the HTTP API.
func newSource(cfg config.Config) (studio.Source, error) {
	if cfg.UsesDataFile() {
		src, err := studio.NewFileSource(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	client, err := studio.NewClient(cfg.APIBind)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func describeSource(cfg config.Config) string {
	if cfg.UsesDataFile() {
		return "file:" + cfg.DataFile
	}
	return "api:" + cfg.APIBind
}

// openLogger writes text records to path. The TUI owns the terminal, so an
// empty path discards logs rather than writing to stderr.
func openLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.TrimSpace(path) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, opts))
	return logger, func() { _ = file.Close() }, nil
}
