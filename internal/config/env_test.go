package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultEnv(), cfg)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("CLINIC_LOGIN_LATENCY", "250ms")
	t.Setenv("CLINIC_MOBILE_BREAKPOINT", "600")
	t.Setenv("CLINIC_DIRECTORY_FILE", "/etc/clinic/accounts.yaml")
	t.Setenv("CLINIC_LANGUAGE", "pt")
	t.Setenv("CLINIC_VERBOSE", "true")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.LoginLatency)
	assert.Equal(t, float32(600), cfg.MobileBreakpoint)
	assert.Equal(t, "/etc/clinic/accounts.yaml", cfg.DirectoryFile)
	assert.Equal(t, "pt", cfg.Language)
	assert.True(t, cfg.Verbose)
}

func TestLoadEnv_NormalizesOutOfRange(t *testing.T) {
	t.Setenv("CLINIC_LOGIN_LATENCY", "-5s")
	t.Setenv("CLINIC_MOBILE_BREAKPOINT", "0")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), cfg.LoginLatency)
	assert.Equal(t, float32(DefaultMobileBreakpoint), cfg.MobileBreakpoint)
}

func TestLoadEnv_InvalidValue(t *testing.T) {
	t.Setenv("CLINIC_LOGIN_LATENCY", "soon")

	cfg, err := LoadEnv()
	require.Error(t, err)
	assert.Equal(t, DefaultEnv(), cfg)
}
