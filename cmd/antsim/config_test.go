package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/stretchr/testify/require"
)

// TestDefaultRunOptions_MirrorsEngineDefaults guards against drift between
// the driver defaults and the engine's documented constants.
func TestDefaultRunOptions_MirrorsEngineDefaults(t *testing.T) {
	opts := defaultRunOptions()

	require.Equal(t, colony.DefaultNodeCount, opts.Nodes)
	require.Equal(t, colony.DefaultAntCount, opts.Ants)
	require.Equal(t, colony.DefaultAlpha, opts.Alpha)
	require.Equal(t, colony.DefaultBeta, opts.Beta)
	require.Equal(t, colony.DefaultRho, opts.Rho)
	require.Equal(t, colony.DefaultQ, opts.Q)
	require.Equal(t, colony.DefaultTau0, opts.Tau0)
	require.Equal(t, colony.DefaultSeed, opts.Seed)
}

// TestApplyFile_PartialOverlay verifies that a file may set only some keys:
// present keys overlay, absent keys keep the current values.
func TestApplyFile_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antsim.yaml")
	body := "nodes: 12\nrho: 0.8\ninterval: 50ms\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	opts := defaultRunOptions()
	require.NoError(t, opts.applyFile(path))

	require.Equal(t, 12, opts.Nodes)
	require.Equal(t, 0.8, opts.Rho)
	require.Equal(t, duration(50*time.Millisecond), opts.Interval)

	// Untouched keys keep their defaults.
	require.Equal(t, colony.DefaultAntCount, opts.Ants)
	require.Equal(t, colony.DefaultBeta, opts.Beta)
	require.Equal(t, defaultGenerations, opts.Generations)
}

// TestApplyFile_Errors covers missing and malformed files.
func TestApplyFile_Errors(t *testing.T) {
	opts := defaultRunOptions()
	require.Error(t, opts.applyFile(filepath.Join(t.TempDir(), "absent.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("nodes: [not an int"), 0o644))
	require.Error(t, opts.applyFile(bad))
}

// TestEngineConfig_RoundTrip checks the options → engine Config mapping.
func TestEngineConfig_RoundTrip(t *testing.T) {
	opts := defaultRunOptions()
	opts.Nodes = 7
	opts.Seed = 42

	cfg := opts.engineConfig()
	require.Equal(t, 7, cfg.NodeCount)
	require.Equal(t, int64(42), cfg.Seed)

	sim, err := colony.NewFromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, 7, sim.NodeCount())
}

// TestRunCmd_FlagPrecedence verifies defaults → file → changed flags.
func TestRunCmd_FlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: 12\nants: 3\n"), 0o644))

	cmd := newRunCmd()
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("ants", "5"))

	opts := defaultRunOptions()
	require.NoError(t, opts.applyFile(path))
	applyChangedFlags(cmd, &opts)

	require.Equal(t, 12, opts.Nodes, "file value must survive an untouched flag")
	require.Equal(t, 5, opts.Ants, "explicit flag must win over the file")
}
