package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls the lifecycle of runtime profiling sessions.
//
// Call [Profiler.Start] before entering the render loop and [Profiler.Stop]
// after it exits to write all enabled profiles.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start configures the memory profile rate and starts CPU profiling if
// enabled. Call [Profiler.Stop] when profiling is complete to write snapshot
// profiles.
func (p *Profiler) Start() error {
	runtime.MemProfileRate = p.MemProfileRate

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	p.cpuFile = f

	err = pprof.StartCPUProfile(f)
	if err != nil {
		_ = p.cpuFile.Close()
		p.cpuFile = nil

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	return nil
}

// Stop stops CPU profiling and writes all enabled snapshot profiles.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	snapshots := []struct {
		name string
		path string
	}{
		{"heap", p.HeapProfile},
		{"goroutine", p.GoroutineProfile},
	}

	for _, s := range snapshots {
		if s.path == "" {
			continue
		}

		err := writeProfile(s.name, s.path)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeProfile writes a named pprof profile to the given file path.
func writeProfile(name, path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	prof := pprof.Lookup(name)
	if prof == nil {
		_ = f.Close()

		return fmt.Errorf("unknown profile: %s", name)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("write %s profile: %w", name, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("write %s profile: %w", name, err)
	}

	return nil
}
