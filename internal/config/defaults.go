package config

import (
	_ "embed"

	"github.com/vovakirdan/tile-merge/internal/grid"
	"github.com/vovakirdan/tile-merge/internal/session"
)

//go:embed defaults/tilemerge.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			WinTile:           session.DefaultWinTile,
			Spawn4Probability: grid.DefaultSpawn4,
			InitialTiles:      2,
		},
		Storage: StorageConfig{
			DBPath: "~/.tilemerge/tilemerge.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
