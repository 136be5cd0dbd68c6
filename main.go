// main.go - SortSonic entry point

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/convox/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/intuitionamiga/SortSonic/synth"
)

func boilerPlate() {
	color.New(color.FgHiMagenta, color.Bold).Println("\nS O R T S O N I C")
	fmt.Println("Pancake sort, one flip per frame, one tone per flip.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/SortSonic")
	fmt.Println("License: GPLv3 or later")
	fmt.Println()
}

// rootOptions holds flags that are not part of Config.
type rootOptions struct {
	configPath string
	noHUD      bool
	noBanner   bool
	version    bool
}

func newRootCommand() *cobra.Command {
	cfg := DefaultConfig()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sortsonic",
		Short: "Audible, visible pancake sort",
		Long: `Shuffle 1..N, then pancake sort it one step per frame while a square wave
plays the index of each flip. Once sorted, a rising sweep confirms completion.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.version {
				writeVersion(cmd.OutOrStdout())
				return nil
			}
			if opts.configPath != "" {
				fileCfg := DefaultConfig()
				if err := LoadConfigFile(opts.configPath, &fileCfg); err != nil {
					return err
				}
				mergeFlags(cmd, &cfg, fileCfg)
			}
			if opts.noHUD {
				cfg.HUD = false
			}
			if opts.noBanner {
				cfg.Banner = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (flags override it)")
	f.IntVarP(&cfg.Size, "size", "n", cfg.Size, "number of values to sort (1-1000)")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed, 0 for time-based")
	f.Float64Var(&cfg.MaxFrequency, "max-frequency", cfg.MaxFrequency, "tone for the last index, in Hz")
	f.IntVar(&cfg.SweepStep, "sweep-step", cfg.SweepStep, "completion sweep increment per frame")
	f.Float64Var(&cfg.Volume, "volume", cfg.Volume, "square wave amplitude (0-1)")
	f.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	f.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	f.IntVar(&cfg.TPS, "tps", cfg.TPS, "sort steps per second (1-1000)")
	f.BoolVar(&opts.noHUD, "no-hud", false, "hide the status bar")
	f.BoolVar(&opts.noBanner, "no-banner", false, "skip the startup banner")
	f.BoolVar(&opts.version, "version", false, "print version and compiled features")

	return cmd
}

// mergeFlags takes every value from fileCfg except those set on the
// command line.
func mergeFlags(cmd *cobra.Command, cfg *Config, fileCfg Config) {
	f := cmd.Flags()
	if !f.Changed("size") {
		cfg.Size = fileCfg.Size
	}
	if !f.Changed("seed") {
		cfg.Seed = fileCfg.Seed
	}
	if !f.Changed("max-frequency") {
		cfg.MaxFrequency = fileCfg.MaxFrequency
	}
	if !f.Changed("sweep-step") {
		cfg.SweepStep = fileCfg.SweepStep
	}
	if !f.Changed("volume") {
		cfg.Volume = fileCfg.Volume
	}
	if !f.Changed("width") {
		cfg.Width = fileCfg.Width
	}
	if !f.Changed("height") {
		cfg.Height = fileCfg.Height
	}
	if !f.Changed("tps") {
		cfg.TPS = fileCfg.TPS
	}
	cfg.HUD = fileCfg.HUD
	cfg.Banner = fileCfg.Banner
}

func run(ctx context.Context, cfg Config) error {
	if cfg.Banner {
		boilerPlate()
	}
	log := logger.New("ns=sortsonic")

	stream := synth.NewStream(cfg.StreamConfig())
	audio, err := NewOtoPlayer(stream)
	if err != nil {
		return err
	}
	defer audio.Close()

	demo := NewDemo(cfg, stream, log)
	video, err := NewVideoOutput(cfg.DisplayConfig(), demo, audio)
	if err != nil {
		return err
	}

	audio.Start()
	log.At("start").Logf("width=%d height=%d tps=%d sample_rate=%d", cfg.Width, cfg.Height, cfg.TPS, stream.SampleRate())

	if err := video.Run(ctx); err != nil {
		return err
	}
	if demo.Done() {
		log.At("summary").Successf("%q", demo.Summary())
	}
	return nil
}

// execute runs the command line and returns the exit status. Errors are
// logged to w once, here.
func execute(ctx context.Context, args []string, w io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.NewWriter("ns=sortsonic", w).Error(err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}
