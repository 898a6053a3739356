package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/audio"
	"go.jacobcolvin.com/asciiplay/config"
	"go.jacobcolvin.com/asciiplay/distance"
	"go.jacobcolvin.com/asciiplay/log"
	"go.jacobcolvin.com/asciiplay/player"
	"go.jacobcolvin.com/asciiplay/profile"
	"go.jacobcolvin.com/asciiplay/sink"
	"go.jacobcolvin.com/asciiplay/transition"
)

func newPlayCmd(logCfg *log.Config, profCfg *profile.Config) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the interactive player",
		Long: `play runs the player loop: the idle clip loops until a request arrives,
either typed on stdin (a clip path, "idle", or "q" to quit) or produced by
the configured distance sensor, and every clip change is bridged with the
configured transition.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPlay(configPath, logCfg, profCfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "asciiplay.yaml", "player configuration file")

	return cmd
}

func runPlay(configPath string, logCfg *log.Config, profCfg *profile.Config) error {
	logger, err := newLogger(logCfg, os.Stderr)
	if err != nil {
		return err
	}

	prof := profCfg.NewProfiler()

	err = prof.Start()
	if err != nil {
		return err
	}
	defer func() {
		stopErr := prof.Stop()
		if stopErr != nil {
			logger.Error("stopping profiler", "error", stopErr)
		}
	}()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	spec, err := cfg.Spec()
	if err != nil {
		return err
	}

	rast := ascii.NewRasterizer(nil)
	snk := sink.NewTerminal(os.Stdout, rast)

	opts := []player.Option{
		player.WithLogger(logger),
		player.WithTransitionEngine(transition.NewEngine(snk,
			transition.WithScanSpeed(cfg.Transition.ScanSpeed))),
	}

	if cfg.Sensor.Port != "" {
		port, err := distance.OpenSerial(cfg.Sensor.Port, cfg.Sensor.Baud)
		if err != nil {
			return err
		}
		sig := distance.NewSignal(port,
			distance.WithCeiling(cfg.Sensor.Ceiling),
			distance.WithWindowSize(cfg.Sensor.Window),
			distance.WithLogger(logger),
		)

		sig.Start()

		// The sampling loop may be parked in a serial read; closing the port
		// unblocks it, so the port must go down before Stop joins the loop.
		defer func() {
			_ = port.Close()
			sig.Stop()
		}()

		opts = append(opts, player.WithDistance(sig, cfg.Bands))

		logger.Info("distance sensor attached",
			"port", cfg.Sensor.Port,
			"bands", len(cfg.Bands),
		)
	}

	if cfg.Audio.Bed != "" {
		bed, err := audio.OpenBed(cfg.Audio.Bed)
		if err != nil {
			return err
		}
		defer bed.Close()

		err = bed.Start()
		if err != nil {
			return err
		}
	}

	eng := player.NewEngine(cfg.Idle, snk, spec, opts...)

	go readControl(eng, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		eng.Stop()
	}()

	err = snk.Clear()
	if err != nil {
		return err
	}

	err = eng.Start()
	if err != nil {
		return fmt.Errorf("running player: %w", err)
	}

	return nil
}

// readControl turns stdin lines into player requests: a path enqueues a
// clip, "idle" returns to the idle loop, and "q" or "quit" stops the
// engine. EOF on stdin leaves the player running on sensor input alone.
func readControl(eng *player.Engine, logger *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
		case "q", "quit":
			eng.Stop()

			return
		case "idle":
			eng.EnqueueIdle()
		default:
			eng.Enqueue(line)
		}
	}

	err := scanner.Err()
	if err != nil {
		logger.Warn("reading control input", "error", err)
	}
}
