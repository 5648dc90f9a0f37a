// Package config loads the game's TOML configuration. Every field has a
// default matching the classic 800x600 layout, so a config file only
// needs the values it changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Ball    BallConfig    `toml:"ball"`
	Paddle  PaddleConfig  `toml:"paddle"`
	Brick   BrickConfig   `toml:"brick"`
	PowerUp PowerUpConfig `toml:"power_up"`
	Game    GameConfig    `toml:"game"`
	Input   InputConfig   `toml:"input"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Server  ServerConfig  `toml:"server"`
}

// WindowConfig is the play field in world units. The renderer scales it
// to whatever terminal size is available.
type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Border float64 `toml:"border"` // wall thickness
}

type BallConfig struct {
	Radius float64 `toml:"radius"`
	Speed  float64 `toml:"speed"` // units per second
}

type PaddleConfig struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	Speed          float64 `toml:"speed"`
	BorderDistance float64 `toml:"border_distance"` // gap between paddle and bottom edge
}

type BrickConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PowerUpConfig struct {
	Chance           float64       `toml:"chance"` // 0.0-1.0 per destroyed brick
	Speed            float64       `toml:"speed"`
	Size             float64       `toml:"size"`
	PiercingDuration time.Duration `toml:"piercing_duration"`
}

type GameConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	MaxStep  time.Duration `toml:"max_step"` // longest dt fed to one frame
	Level    string        `toml:"level"`   // layout file; empty = built-in classic
	Seed     int64         `toml:"seed"`    // 0 = time based
	RunLog   bool          `toml:"run_log"`  // append finished rounds to runs.jsonl
}

// InputConfig tunes key handling. Terminals report key presses and
// auto-repeats but never releases, so a key counts as held until
// HoldWindow passes without a repeat.
type InputConfig struct {
	HoldWindow time.Duration `toml:"hold_window"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty disables logging
}

type ServerConfig struct {
	Port        int    `toml:"port"`
	HostKey     string `toml:"host_key"`
	MaxSessions int    `toml:"max_sessions"`
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 600, Border: 15},
		Ball:   BallConfig{Radius: 10, Speed: 500},
		Paddle: PaddleConfig{
			Width:          150,
			Height:         20,
			Speed:          600,
			BorderDistance: 20,
		},
		Brick: BrickConfig{Width: 55, Height: 20},
		PowerUp: PowerUpConfig{
			Chance:           0.5,
			Speed:            150,
			Size:             20,
			PiercingDuration: 3 * time.Second,
		},
		Game: GameConfig{
			TickRate: time.Second / 60,
			MaxStep:  50 * time.Millisecond,
		},
		Input: InputConfig{HoldWindow: 150 * time.Millisecond},
		Audio: AudioConfig{Enabled: true, Volume: 0.3},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Port:        2222,
			HostKey:     ".ssh/brickout_host_key",
			MaxSessions: 16,
		},
	}
}

// Validate rejects configurations the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %gx%g", c.Window.Width, c.Window.Height)
	check(c.Window.Border >= 0, "window border must not be negative")
	check(c.Ball.Radius > 0, "ball radius must be positive")
	check(c.Ball.Speed > 0, "ball speed must be positive")
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive")
	check(c.Paddle.Width < c.Window.Width-2*c.Window.Border, "paddle (%g) does not fit between the walls", c.Paddle.Width)
	check(c.Brick.Width > 0 && c.Brick.Height > 0, "brick size must be positive")
	check(c.PowerUp.Chance >= 0 && c.PowerUp.Chance <= 1, "power_up chance %g out of range [0,1]", c.PowerUp.Chance)
	check(c.PowerUp.Size > 0, "power_up size must be positive")
	check(c.PowerUp.PiercingDuration > 0, "power_up piercing_duration must be positive")
	check(c.Game.TickRate > 0, "game tick_rate must be positive")
	check(c.Game.MaxStep >= c.Game.TickRate, "game max_step must be at least tick_rate")
	check(c.Input.HoldWindow > 0, "input hold_window must be positive")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume %g out of range [0,1]", c.Audio.Volume)
	check(c.Server.Port > 0 && c.Server.Port < 65536, "server port %d out of range", c.Server.Port)
	check(c.Server.MaxSessions >= 0, "server max_sessions must not be negative")
	return errors.Join(errs...)
}
