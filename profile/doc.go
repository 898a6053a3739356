// Package profile provides pprof profile capture for CLI applications.
//
// It wires CPU, heap, and goroutine profile flags into a [Config] and runs
// capture through a [Profiler]. A render loop that drops frames is a CPU
// problem first, so the flags default to off and add no overhead unless set.
//
// Typical usage:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return profiler.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return profiler.Stop()
//	    },
//	}
package profile
