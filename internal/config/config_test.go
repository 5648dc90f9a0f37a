package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brickout.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800.0, cfg.Window.Width)
	assert.Equal(t, 600.0, cfg.Window.Height)
	assert.Equal(t, 0.5, cfg.PowerUp.Chance)
	assert.Equal(t, 3*time.Second, cfg.PowerUp.PiercingDuration)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[ball]
speed = 320.0

[power_up]
chance = 1.0
piercing_duration = "5s"

[logging]
level = "debug"
file = "game.log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 320.0, cfg.Ball.Speed)
	assert.Equal(t, 10.0, cfg.Ball.Radius, "unset keys keep their defaults")
	assert.Equal(t, 1.0, cfg.PowerUp.Chance)
	assert.Equal(t, 5*time.Second, cfg.PowerUp.PiercingDuration)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "game.log", cfg.Logging.File)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "[ball\nspeed = 1"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "[power_up]\nchance = 2.0\n"))
	assert.ErrorContains(t, err, "chance")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Ball.Radius = 0
	cfg.Paddle.Width = 2000
	cfg.Server.Port = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ball radius")
	assert.Contains(t, err.Error(), "paddle")
	assert.Contains(t, err.Error(), "server port")
}
