package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePresetsTOML = `
[preset.light-load]
target_credits = 12.0
max_candidates = 100

[preset.heavy-load]
target_credits = 24.0

[preset.heavy-load.weights]
w_mandatory = -20000

[preset.zeroed-out]
target_credits = 0.0

[preset.zeroed-out.weights]
w_contiguous_reward = 0.0
`

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(samplePresetsTOML), 0o644))

	require.NoError(t, LoadPresets(path))

	light, ok := Presets["light-load"]
	require.True(t, ok)
	assert.Equal(t, 12.0, light.TargetCredits)
	assert.Equal(t, 100, light.MaxCandidates)
	// Unset fields fall back to the package defaults.
	assert.Equal(t, 10000.0, light.Weights.HardOverlap)

	heavy, ok := Presets["heavy-load"]
	require.True(t, ok)
	assert.Equal(t, 24.0, heavy.TargetCredits)
	assert.Equal(t, -20000.0, heavy.Weights.Mandatory)

	// An explicit 0 must be distinguishable from "not set": target_credits
	// and w_contiguous_reward are driven to 0 here rather than falling
	// back to the package defaults.
	zeroed, ok := Presets["zeroed-out"]
	require.True(t, ok)
	assert.Equal(t, 0.0, zeroed.TargetCredits)
	assert.Equal(t, 0.0, zeroed.Weights.ContiguousReward)
	// Unset fields in this preset still fall back to defaults.
	assert.Equal(t, 10000.0, zeroed.Weights.HardOverlap)
}

func TestLoadPresets_MissingFile(t *testing.T) {
	err := LoadPresets("/nonexistent/presets.toml")
	assert.Error(t, err)
}
