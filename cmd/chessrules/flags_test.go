package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Mode != config.ModePerft {
		t.Errorf("Mode = %q; want %q", cfg.Mode, config.ModePerft)
	}
	if cfg.Perft.Depth != 4 || cfg.Perft.Workers != 1 {
		t.Errorf("Perft = %+v; want depth 4, 1 worker", cfg.Perft)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v; want nil", err)
	}
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(mode, "play")()
	defer saveRestoreString(moves, "e2e4 e7e5")()
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreInt(depth, 6)()
	defer saveRestoreInt(workers, 0)()
	defer saveRestoreBool(divide, true)()
	defer saveRestoreBool(verify, true)()
	defer saveRestoreInt(hashMax, 5000)()
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(showBoard, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Mode != config.ModePlay {
		t.Errorf("Mode = %q; want play", cfg.Mode)
	}
	if cfg.Moves != "e2e4 e7e5" {
		t.Errorf("Moves = %q; want %q", cfg.Moves, "e2e4 e7e5")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want debug", cfg.LogLevel)
	}
	want := config.PerftConfig{Depth: 6, Divide: true, Workers: 0, Verify: true, HashEntries: 5000}
	if cfg.Perft != want {
		t.Errorf("Perft = %+v; want %+v", cfg.Perft, want)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.ShowBoard {
		t.Errorf("Output = %+v; want JSON and board enabled", cfg.Output)
	}
}
