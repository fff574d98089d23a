package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/focusgate/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, "127.0.0.1:4817", cfg.Addr())
	assert.False(t, cfg.UseFakeBridge)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "5919")
	t.Setenv("HOST", "localhost")
	t.Setenv("DB_PATH", "/tmp/gate.db")
	t.Setenv("USE_FAKE_BRIDGE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost:5919", cfg.Addr())
	assert.Equal(t, "/tmp/gate.db", cfg.DBPath)
	assert.True(t, cfg.UseFakeBridge)
}

func TestLoad_RejectsNonLoopbackHost(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")

	_, err := Load()
	assert.ErrorContains(t, err, "loopback")
}

func TestLoad_RejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := Load()
	assert.ErrorContains(t, err, "invalid PORT")

	t.Setenv("PORT", "70000")
	_, err = Load()
	assert.ErrorContains(t, err, "out of range")
}

func TestLoadTierConfigs_EmptyPath(t *testing.T) {
	tiers, err := LoadTierConfigs("")
	require.NoError(t, err)
	assert.Nil(t, tiers)
}

func TestLoadTierConfigs_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tiers:
  - tier: easy
    label: Gentle
    allowance_options: [1, 2]
    cooldown_minutes: {min: 0, max: 0}
    require_challenge: true
  - tier: medium
    label: Medium
    allowance_options: [5, 10]
    cooldown_minutes: {min: 1, max: 3}
  - tier: hard
    label: Hard
    allowance_options: [5]
    cooldown_minutes: {min: 5, max: 10}
    require_challenge: true
    require_spend: true
    max_fails_before_lockout: 2
`), 0o600))

	tiers, err := LoadTierConfigs(path)
	require.NoError(t, err)
	require.Len(t, tiers, 3)
	assert.Equal(t, "Gentle", tiers[0].Label)
	assert.Equal(t, []int{1, 2}, tiers[0].AllowanceOptions)
	assert.Equal(t, domain.CooldownRange{Min: 1, Max: 3}, tiers[1].CooldownMinutes)
	assert.Equal(t, 2, tiers[2].MaxFailsBeforeLockout)
}

func TestLoadTierConfigs_Invalid(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "absent.yaml")
	_, err := LoadTierConfigs(missing)
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tiers: {not: a list}"), 0o600))
	_, err = LoadTierConfigs(bad)
	assert.ErrorContains(t, err, "failed to parse")

	// Unknown tier name fails struct validation.
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte(`
tiers:
  - tier: nightmare
    label: Nope
    allowance_options: [5]
    cooldown_minutes: {min: 0, max: 0}
`), 0o600))
	_, err = LoadTierConfigs(unknown)
	assert.ErrorContains(t, err, "invalid tiers config")
}
