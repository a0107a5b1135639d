package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 180, cfg.MatchUnits)
	assert.Equal(t, 4, cfg.CadenceUnits)
	assert.Equal(t, 2, cfg.LockUnits)
	assert.Equal(t, time.Second, cfg.TimeUnit)
	assert.Equal(t, 1.5, cfg.AutopilotUnits)
	assert.Equal(t, 1500*time.Millisecond, cfg.AutopilotDelay())
	assert.True(t, cfg.Autopilot)
	assert.NoError(t, cfg.Rules().Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARENA_MATCH_UNITS", "30")
	t.Setenv("ARENA_TIME_UNIT", "100ms")
	t.Setenv("ARENA_SEED", "99")
	t.Setenv("ARENA_BOMB_CHANCE", "0.2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.MatchUnits)
	assert.Equal(t, 100*time.Millisecond, cfg.TimeUnit)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 150*time.Millisecond, cfg.AutopilotDelay(), "autopilot delay follows the time unit")

	r := cfg.Rules()
	assert.Equal(t, 30, r.MatchUnits)
	assert.Equal(t, 0.2, r.BombChance)
	assert.Equal(t, 100, r.FortBonus, "scoring keeps its defaults")

	opts := cfg.Options(logrus.New())
	assert.Equal(t, 100*time.Millisecond, opts.TimeUnit)
	assert.Equal(t, uint64(99), opts.Seed)
	assert.Len(t, opts.Rivals, 3)
}

func TestLoadBadValue(t *testing.T) {
	t.Setenv("ARENA_MATCH_UNITS", "many")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.env")
	require.NoError(t, os.WriteFile(path, []byte("ARENA_CADENCE_UNITS=7\nARENA_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("ARENA_CADENCE_UNITS")
		os.Unsetenv("ARENA_LOG_FORMAT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.CadenceUnits)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = NewLogger(Config{LogLevel: "loud", LogFormat: "text"})
	assert.Error(t, err)
	_, err = NewLogger(Config{LogLevel: "info", LogFormat: "xml"})
	assert.Error(t, err)
}
