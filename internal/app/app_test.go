package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/studioboard/internal/config"
	"github.com/five82/studioboard/internal/studio"
)

func TestApplyOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	err := applyOverrides(&cfg, Options{
		DataFile:   "~/clients.yaml",
		StartRoute: "/sales-analytics",
		PollEvery:  9,
		LogOutput:  "~/board.log",
	})
	if err != nil {
		t.Fatalf("applyOverrides returned error: %v", err)
	}
	if cfg.DataFile != filepath.Join(home, "clients.yaml") {
		t.Fatalf("DataFile = %q, want it under HOME", cfg.DataFile)
	}
	if cfg.StartRoute != "/sales-analytics" || cfg.PollSeconds != 9 {
		t.Fatalf("StartRoute/PollSeconds = %q/%d", cfg.StartRoute, cfg.PollSeconds)
	}
	if cfg.LogFile != filepath.Join(home, "board.log") {
		t.Fatalf("LogFile = %q, want it under HOME", cfg.LogFile)
	}
}

func TestApplyOverrides_EmptyKeepsConfig(t *testing.T) {
	cfg := config.Default()
	want := cfg
	if err := applyOverrides(&cfg, Options{}); err != nil {
		t.Fatalf("applyOverrides returned error: %v", err)
	}
	if cfg != want {
		t.Fatalf("applyOverrides changed config: %+v", cfg)
	}
}

func TestNewSource(t *testing.T) {
	cfg := config.Default()
	src, err := newSource(cfg)
	if err != nil {
		t.Fatalf("newSource returned error: %v", err)
	}
	if _, ok := src.(*studio.Client); !ok {
		t.Fatalf("newSource = %T, want *studio.Client", src)
	}

	cfg.DataFile = filepath.Join(t.TempDir(), "clients.yaml")
	src, err = newSource(cfg)
	if err != nil {
		t.Fatalf("newSource returned error: %v", err)
	}
	fileSrc, ok := src.(*studio.FileSource)
	if !ok {
		t.Fatalf("newSource = %T, want *studio.FileSource", src)
	}
	if fileSrc.Path() != cfg.DataFile {
		t.Fatalf("FileSource.Path = %q, want %q", fileSrc.Path(), cfg.DataFile)
	}
	if !strings.HasPrefix(describeSource(cfg), "file:") {
		t.Fatalf("describeSource = %q, want file: prefix", describeSource(cfg))
	}
}

func TestOpenLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "studioboard.log")
	logger, closeLog, err := openLogger(path, true)
	if err != nil {
		t.Fatalf("openLogger returned error: %v", err)
	}
	logger.Debug("poll", "count", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "msg=poll") || !strings.Contains(string(data), "count=3") {
		t.Fatalf("log file = %q, want the debug record", string(data))
	}
}

func TestOpenLogger_EmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := openLogger("  ", false)
	if err != nil {
		t.Fatalf("openLogger returned error: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}
