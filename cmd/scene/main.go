package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/zeusync/scene/internal/config"
	"github.com/zeusync/scene/internal/core/observability/log"
	"github.com/zeusync/scene/internal/injector"
	"github.com/zeusync/scene/internal/runtime"
)

type flags struct {
	config   string
	ticks    int
	codec    string
	output   string
	input    string
	logLevel string
	delta    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "scene",
		Short:         "Run the demo scene and stream renderer bridge messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "path to a YAML config file")
	fs.IntVar(&f.ticks, "ticks", 0, "number of ticks to run, 0 runs until interrupted")
	fs.StringVar(&f.codec, "codec", "", "bridge codec: json or structpb")
	fs.StringVarP(&f.output, "output", "o", "", `bridge output: "stdout", "discard" or a file path`)
	fs.StringVarP(&f.input, "input", "i", "", `renderer events: "stdin" or a file path`)
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn, error or silent")
	fs.BoolVar(&f.delta, "delta", false, "attach JSON patches to component updates")
	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene, cleanup, err := injector.InitializeScene(injector.ConfigPath(f.config), f.apply(cmd))
	if err != nil {
		return err
	}
	defer cleanup()

	if err = runtime.BuildDemo(scene); err != nil {
		return eris.Wrap(err, "failed to build demo scene")
	}

	if scene.Input() != "" {
		in, closeInput, err := openInput(scene.Input())
		if err != nil {
			return err
		}
		defer closeInput()
		go func() {
			if err := scene.Dispatcher.ReadFrom(ctx, in); err != nil && !eris.Is(err, context.Canceled) {
				scene.Logger().Warn("renderer input stopped", log.Error(err))
			}
		}()
	}

	return scene.Run(ctx)
}

// apply copies the flags the user set over the loaded config.
func (f *flags) apply(cmd *cobra.Command) injector.Overrides {
	changed := cmd.Flags().Changed
	return func(cfg *config.Config) {
		if changed("ticks") {
			cfg.Engine.Ticks = f.ticks
		}
		if changed("codec") {
			cfg.Bridge.Codec = f.codec
		}
		if changed("output") {
			cfg.Bridge.Output = f.output
		}
		if changed("input") {
			cfg.Bridge.Input = f.input
		}
		if changed("log-level") {
			cfg.Log.Level = f.logLevel
		}
		if changed("delta") {
			cfg.Bridge.Delta = f.delta
		}
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "stdin" {
		return os.Stdin, func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "failed to open input %q", path)
	}
	return file, func() { _ = file.Close() }, nil
}
