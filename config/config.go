package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/collecta/engine"
	"github.com/lixenwraith/collecta/entity"
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/vmath"
)

type Config struct {
	Game      GameConfig      `toml:"game"`
	Player    PlayerConfig    `toml:"player"`
	Loot      LootConfig      `toml:"loot"`
	Audio     AudioConfig     `toml:"audio"`
	Logging   LoggingConfig   `toml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Debug     DebugConfig     `toml:"debug"`
}

type GameConfig struct {
	LevelsDir  string        `toml:"levels_dir"`
	StartLevel int           `toml:"start_level"`
	Scale      int           `toml:"scale"` // level file units to world pixels
	Tick       time.Duration `toml:"tick"`
	Countdown  time.Duration `toml:"countdown"`
	MaxCatchUp int           `toml:"max_catch_up"` // steps per frame, 0 = unbounded
	Frame      time.Duration `toml:"frame"`
	KeysFile   string        `toml:"keys_file"`
}

type PlayerConfig struct {
	Speed     float64 `toml:"speed"` // px/s
	CellSize  int     `toml:"cell_size"`
	WorldSize int     `toml:"world_size"`
	Bounce    bool    `toml:"bounce"`
	Threshold float64 `toml:"threshold"` // analog deflection (0.0-1.0)
}

type LootConfig struct {
	Gravity        float64 `toml:"gravity"`
	Damping        float64 `toml:"damping"`
	LaunchVelocity float64 `toml:"launch_velocity"`
	PopHeight      int     `toml:"pop_height"`
	Proximity      int     `toml:"proximity"`
}

type AudioConfig struct {
	Enabled       bool    `toml:"enabled"`
	MasterVolume  float64 `toml:"master_volume"` // 0.0-1.0 for all volumes
	DropVolume    float64 `toml:"drop_volume"`
	CollectVolume float64 `toml:"collect_volume"`
	MusicVolume   float64 `toml:"music_volume"`
	MusicFile     string  `toml:"music_file"` // WAV, looped; empty uses the generated beat
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Path   string `toml:"path"`
}

type TelemetryConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	Buffer  int    `toml:"buffer"` // per-client send queue
}

type DebugConfig struct {
	Overlay bool `toml:"overlay"`
	FPS     bool `toml:"fps"`
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := defaults()
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

// Default returns the built-in configuration
func Default() *Config { return defaults() }

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			LevelsDir:  "levels",
			StartLevel: 0,
			Scale:      parameter.LevelScale,
			Tick:       parameter.TickInterval,
			Countdown:  parameter.CountdownDuration,
			MaxCatchUp: 10,
			Frame:      parameter.FrameUpdateInterval,
			KeysFile:   "",
		},
		Player: PlayerConfig{
			Speed:     parameter.PlayerSpeedFloat,
			CellSize:  parameter.PlayerCellSize,
			WorldSize: parameter.WorldSize,
			Bounce:    parameter.PlayerBounce,
			Threshold: parameter.AnalogThresholdFloat,
		},
		Loot: LootConfig{
			Gravity:        parameter.LootGravityFloat,
			Damping:        parameter.LootDampingFloat,
			LaunchVelocity: parameter.LootLaunchVelocityFloat,
			PopHeight:      parameter.LootPopHeight,
			Proximity:      parameter.LootProximity,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MasterVolume:  1.0,
			DropVolume:    parameter.DropVolume,
			CollectVolume: parameter.CollectVolume,
			MusicVolume:   parameter.MusicVolume,
			MusicFile:     "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Path:   "collecta.log",
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
			Addr:    "127.0.0.1:7070",
			Buffer:  64,
		},
		Debug: DebugConfig{
			Overlay: false,
			FPS:     true,
		},
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Game.Scale <= 0 {
		errs = append(errs, fmt.Errorf("game.scale must be positive, got %d", c.Game.Scale))
	}
	if c.Game.Tick <= 0 {
		errs = append(errs, fmt.Errorf("game.tick must be positive, got %s", c.Game.Tick))
	}
	if c.Game.Frame <= 0 {
		errs = append(errs, fmt.Errorf("game.frame must be positive, got %s", c.Game.Frame))
	}
	if c.Player.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("player.cell_size must be positive, got %d", c.Player.CellSize))
	}
	if c.Player.WorldSize <= 0 || (c.Player.CellSize > 0 && c.Player.WorldSize%c.Player.CellSize != 0) {
		errs = append(errs, fmt.Errorf("player.world_size %d must be a positive multiple of cell_size", c.Player.WorldSize))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %g", c.Player.Speed))
	}
	if c.Player.Threshold < 0 || c.Player.Threshold >= 1 {
		errs = append(errs, fmt.Errorf("player.threshold must be in [0, 1), got %g", c.Player.Threshold))
	}
	if c.Loot.Damping < 0 || c.Loot.Damping >= 1 {
		errs = append(errs, fmt.Errorf("loot.damping must be in [0, 1), got %g", c.Loot.Damping))
	}
	if c.Loot.Proximity <= 0 {
		errs = append(errs, fmt.Errorf("loot.proximity must be positive, got %d", c.Loot.Proximity))
	}
	return errors.Join(errs...)
}

func (c *Config) PlayerParams() entity.PlayerParams {
	p := entity.DefaultPlayerParams()
	p.Speed = vmath.FromFloat(c.Player.Speed)
	p.Threshold = vmath.FromFloat(c.Player.Threshold)
	p.CellSize = c.Player.CellSize
	p.WorldSize = c.Player.WorldSize
	p.Bounce = c.Player.Bounce
	return p
}

func (c *Config) LootParams() entity.LootParams {
	return entity.LootParams{
		Gravity:        vmath.FromFloat(c.Loot.Gravity),
		LaunchVelocity: vmath.FromFloat(c.Loot.LaunchVelocity),
		Damping:        vmath.FromFloat(c.Loot.Damping),
		PopHeight:      c.Loot.PopHeight,
		Proximity:      c.Loot.Proximity,
	}
}

func (c *Config) WorldParams() engine.WorldParams {
	return engine.WorldParams{
		Player: c.PlayerParams(),
		Loot:   c.LootParams(),
		Scale:  c.Game.Scale,
	}
}

func (c *Config) SessionConfig() engine.SessionConfig {
	return engine.SessionConfig{
		Step:      c.Game.Tick,
		Countdown: c.Game.Countdown,
	}
}
