// Package config loads the scene host configuration from YAML.
package config

import (
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/scene/internal/core/observability/log"
)

var ErrInvalidConfig = eris.New("invalid config")

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Engine EngineConfig `yaml:"engine"`
	Bridge BridgeConfig `yaml:"bridge"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type EngineConfig struct {
	// IDs selects the entity and component id scheme: "sequential" or "uuid".
	IDs      string        `yaml:"ids"`
	TickRate time.Duration `yaml:"tick_rate"`
	// Ticks bounds the run. Zero runs until cancelled.
	Ticks int `yaml:"ticks"`
}

type BridgeConfig struct {
	Codec string `yaml:"codec"`
	Delta bool   `yaml:"delta"`
	// Output is "stdout", "discard" or a file path.
	Output string `yaml:"output"`
	// Input is empty, "stdin" or a file path of newline-delimited envelopes.
	Input string `yaml:"input,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	lc := log.DefaultConfig()
	return Config{
		Log: LogConfig{
			Level:      lc.Level.String(),
			Encoding:   lc.Encoding,
			MaxSizeMB:  lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAgeDays: lc.MaxAgeDays,
		},
		Engine: EngineConfig{
			IDs:      "sequential",
			TickRate: 100 * time.Millisecond,
			Ticks:    10,
		},
		Bridge: BridgeConfig{
			Codec:  "json",
			Output: "stdout",
		},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, eris.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads path, or returns the defaults when path is empty.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, eris.Wrapf(err, "failed to open config %q", path)
	}
	defer f.Close()
	return Load(f)
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return eris.Wrap(ErrInvalidConfig, err.Error())
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return eris.Wrapf(ErrInvalidConfig, "log.encoding %q", c.Log.Encoding)
	}
	switch c.Engine.IDs {
	case "sequential", "uuid":
	default:
		return eris.Wrapf(ErrInvalidConfig, "engine.ids %q", c.Engine.IDs)
	}
	if c.Engine.TickRate <= 0 {
		return eris.Wrapf(ErrInvalidConfig, "engine.tick_rate must be positive, got %s", c.Engine.TickRate)
	}
	if c.Engine.Ticks < 0 {
		return eris.Wrapf(ErrInvalidConfig, "engine.ticks must not be negative, got %d", c.Engine.Ticks)
	}
	switch c.Bridge.Codec {
	case "json", "structpb":
	default:
		return eris.Wrapf(ErrInvalidConfig, "bridge.codec %q", c.Bridge.Codec)
	}
	if c.Bridge.Output == "" {
		return eris.Wrap(ErrInvalidConfig, "bridge.output is required")
	}
	return nil
}

// Logger converts the log section for log.NewWithConfig.
func (c LogConfig) Logger() log.Config {
	level, _ := log.ParseLevel(c.Level)
	return log.Config{
		Level:      level,
		Encoding:   c.Encoding,
		File:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}
