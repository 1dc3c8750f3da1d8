package types

import "time"

// EngineConfig holds settings for the external conversion engine.
type EngineConfig struct {
	// Path is an explicit path to the soffice binary. Empty means
	// auto-detect (bundled tools/ locations, then PATH).
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// OutputDir is the directory all PDFs are written to. Empty means each
	// PDF lands next to its source file.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Workers is the number of conversions run in parallel (default 1,
	// i.e. sequential).
	Workers int `json:"workers" yaml:"workers"`

	// Timeout is the per-file conversion timeout. Zero disables it.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig holds settings for the session store.
type SessionConfig struct {
	// Path is the location of the session database. Empty means the
	// per-user config directory.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Config groups all stage configurations.
type Config struct {
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Session SessionConfig `json:"session" yaml:"session"`
}
