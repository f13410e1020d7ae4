package injector

import (
	"io"
	"os"

	"github.com/google/wire"
	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/bridge"
	"github.com/zeusync/scene/internal/config"
	"github.com/zeusync/scene/internal/core/observability/log"
	"github.com/zeusync/scene/internal/runtime"
)

// ConfigPath is the YAML file to load. Empty means defaults.
type ConfigPath string

// Overrides adjusts the loaded config before validation, typically from
// command line flags. Nil leaves it unchanged.
type Overrides func(*config.Config)

var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideSink,
	runtime.New,
)

func ProvideConfig(path ConfigPath, overrides Overrides) (config.Config, error) {
	cfg, err := config.LoadFile(string(path))
	if err != nil {
		return config.Config{}, err
	}
	if overrides == nil {
		return cfg, nil
	}
	overrides(&cfg)
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func ProvideLogger(cfg config.Config) (log.Log, func()) {
	l := log.NewWithConfig(cfg.Log.Logger())
	return l, func() { _ = l.Sync() }
}

// ProvideSink opens the configured output. The cleanup closes files it
// opened.
func ProvideSink(cfg config.Config) (bridge.Sink, func(), error) {
	codec, err := bridge.CodecByName(cfg.Bridge.Codec)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer
	cleanup := func() {}
	switch cfg.Bridge.Output {
	case "stdout":
		w = os.Stdout
	case "discard":
		w = io.Discard
	default:
		f, err := os.Create(cfg.Bridge.Output)
		if err != nil {
			return nil, nil, eris.Wrapf(err, "failed to open output %q", cfg.Bridge.Output)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	}
	return bridge.NewWriterSink(w, codec), cleanup, nil
}
