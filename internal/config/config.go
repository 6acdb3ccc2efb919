// Package config provides YAML-based configuration loading for tile-merge.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tile-merge/internal/grid"
	"github.com/vovakirdan/tile-merge/internal/session"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all tile-merge configuration.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Undo    UndoConfig    `yaml:"undo"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// RulesConfig defines the game rules.
type RulesConfig struct {
	WinTile           int     `yaml:"win_tile"`
	Spawn4Probability float64 `yaml:"spawn4_probability"`
	InitialTiles      int     `yaml:"initial_tiles"`
}

// UndoConfig defines undo history behaviour.
type UndoConfig struct {
	Limit          int  `yaml:"limit"`
	SkipNoop       bool `yaml:"skip_noop"`
	RecomputeFlags bool `yaml:"recompute_flags"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that every value is in range.
func (c Config) Validate() error {
	w := c.Rules.WinTile
	if w < 4 || w&(w-1) != 0 {
		return fmt.Errorf("%w: rules.win_tile must be a power of two >= 4, got %d", ErrInvalidConfig, w)
	}
	if p := c.Rules.Spawn4Probability; p < 0 || p > 1 {
		return fmt.Errorf("%w: rules.spawn4_probability must be in [0, 1], got %g", ErrInvalidConfig, p)
	}
	if n := c.Rules.InitialTiles; n < 1 || n > grid.Size*grid.Size {
		return fmt.Errorf("%w: rules.initial_tiles must be in [1, %d], got %d", ErrInvalidConfig, grid.Size*grid.Size, n)
	}
	if c.Undo.Limit < 0 {
		return fmt.Errorf("%w: undo.limit must not be negative, got %d", ErrInvalidConfig, c.Undo.Limit)
	}
	if c.Log.Level != "" && !logLevels[c.Log.Level] {
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// SessionOptions maps the rules and undo sections onto session options.
func (c Config) SessionOptions(seed int64) session.Options {
	return session.Options{
		Seed:                 seed,
		Spawn4:               c.Rules.Spawn4Probability,
		WinTile:              c.Rules.WinTile,
		InitialTiles:         c.Rules.InitialTiles,
		UndoLimit:            c.Undo.Limit,
		SkipNoopUndo:         c.Undo.SkipNoop,
		RecomputeFlagsOnUndo: c.Undo.RecomputeFlags,
	}
}
