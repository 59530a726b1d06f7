// Package config provides configuration for the chessrules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Mode selects what the command does.
type Mode string

const (
	ModePerft Mode = "perft" // count the move tree
	ModePlay  Mode = "play"  // read moves from the input and report the game state
	ModeBoard Mode = "board" // print the position after the setup moves
)

// Config holds all program configuration.
type Config struct {
	Mode Mode

	// Moves is a whitespace separated list of coordinate moves played from
	// the starting position before the mode runs.
	Moves string

	// LogLevel is an apex/log level name.
	LogLevel string

	Perft  PerftConfig
	Output OutputConfig

	// Streams
	OutputFile io.Writer
	LogFile    io.Writer
	InputFile  io.Reader
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       ModePerft,
		LogLevel:   "info",
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		InputFile:  os.Stdin,
	}
}

// Validate checks every section and returns the first problem, wrapped in
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModePerft, ModePlay, ModeBoard:
	default:
		return fmt.Errorf("unknown mode %q: %w", c.Mode, errors.ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if _, err := notation.ParseMoves(c.Moves); err != nil {
		return fmt.Errorf("setup moves: %v: %w", err, errors.ErrInvalidConfig)
	}
	if c.Mode == ModePerft {
		return c.Perft.Validate()
	}
	return nil
}
