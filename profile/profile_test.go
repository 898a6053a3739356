package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/profile"
)

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cmd := &cobra.Command{Use: "test"}

	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	assert.Empty(t, cfg.CPUProfile)
	assert.Equal(t, 524288, cfg.MemProfileRate)

	require.NoError(t, cmd.Flags().Set("cpu-profile", "cpu.out"))
	assert.Equal(t, "cpu.out", cfg.CPUProfile)
}

func TestProfilerDisabled(t *testing.T) {
	t.Parallel()

	p := profile.NewConfig().NewProfiler()

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
}

func TestProfilerWritesProfiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPUProfile = filepath.Join(dir, "cpu.out")
	cfg.HeapProfile = filepath.Join(dir, "heap.out")
	cfg.MemProfileRate = 524288

	p := cfg.NewProfiler()

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.CPUProfile, cfg.HeapProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
