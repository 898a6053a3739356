// Command asciiplay plays video clips as ASCII art in the terminal.
//
// The player idles on a configured clip, switches clips on requests typed
// on stdin or driven by a serial distance sensor, and bridges every switch
// with a configurable transition. Clips can also be exported as replay
// shell scripts or JSON captures, or previewed interactively.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiplay/log"
	"go.jacobcolvin.com/asciiplay/profile"
	"go.jacobcolvin.com/asciiplay/version"
)

func main() {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "asciiplay",
		Short:         "ASCII art video player",
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
	} {
		completionErr := register(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	rootCmd.AddCommand(
		newPlayCmd(logCfg, profCfg),
		newExportCmd(),
		newPreviewCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger from CLI flags, writing to w.
func newLogger(cfg *log.Config, w io.Writer) (*slog.Logger, error) {
	handler, err := cfg.NewHandler(w)
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}

	return slog.New(handler), nil
}
