// Package config holds the tunable settings for the editor and the play mode.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Config is decoded from YAML on top of Default().
type Config struct {
	MazeWidth  int `yaml:"maze_width"`
	MazeHeight int `yaml:"maze_height"`

	CellSize        float64 `yaml:"cell_size"`
	PlayerSpeed     float64 `yaml:"player_speed"`
	EnemySpeed      float64 `yaml:"enemy_speed"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileRange float64 `yaml:"projectile_range"`
	FireCooldown    float64 `yaml:"fire_cooldown"`
	PlayerHealth    int     `yaml:"player_health"`

	// TickRate is the number of simulation updates per second.
	TickRate int `yaml:"tick_rate"`
	// RepathInterval is how often, in seconds, an enemy re-plans its path
	// when the player has not changed cells.
	RepathInterval float64 `yaml:"repath_interval"`
	// InputHold is how long a movement key keeps the player moving after the
	// last key event. Terminals do not report key release.
	InputHold float64 `yaml:"input_hold"`
	// MaxExpansions bounds each A* search. Zero means unlimited.
	MaxExpansions int `yaml:"max_expansions"`

	GenerateEnemies int `yaml:"generate_enemies"`
	// Theme selects the maze glyph set: "emoji" or "ascii".
	Theme string `yaml:"theme"`

	SaveFile string `yaml:"save_file"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MazeWidth:       30,
		MazeHeight:      18,
		CellSize:        1,
		PlayerSpeed:     6,
		EnemySpeed:      3,
		ProjectileSpeed: 15,
		ProjectileRange: 12,
		FireCooldown:    0.25,
		PlayerHealth:    3,
		TickRate:        30,
		RepathInterval:  0.5,
		InputHold:       0.35,
		MaxExpansions:   4096,
		GenerateEnemies: 4,
		Theme:           "emoji",
		SaveFile:        "saves/save.txt",
		LogFile:         "maze-shooter.log",
		LogLevel:        "info",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err = Decode(f)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	switch {
	case c.MazeWidth <= 0 || c.MazeHeight <= 0:
		return fmt.Errorf("%w: maze size %dx%d", ErrInvalid, c.MazeWidth, c.MazeHeight)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %v", ErrInvalid, c.CellSize)
	case c.PlayerSpeed < 0 || c.EnemySpeed < 0 || c.ProjectileSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case c.ProjectileRange <= 0:
		return fmt.Errorf("%w: projectile_range %v", ErrInvalid, c.ProjectileRange)
	case c.FireCooldown < 0:
		return fmt.Errorf("%w: fire_cooldown %v", ErrInvalid, c.FireCooldown)
	case c.PlayerHealth <= 0:
		return fmt.Errorf("%w: player_health %d", ErrInvalid, c.PlayerHealth)
	case c.TickRate <= 0 || c.TickRate > 240:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.TickRate)
	case c.RepathInterval <= 0:
		return fmt.Errorf("%w: repath_interval %v", ErrInvalid, c.RepathInterval)
	case c.InputHold < 0:
		return fmt.Errorf("%w: input_hold %v", ErrInvalid, c.InputHold)
	case c.GenerateEnemies < 0:
		return fmt.Errorf("%w: generate_enemies %d", ErrInvalid, c.GenerateEnemies)
	case c.Theme != "emoji" && c.Theme != "ascii":
		return fmt.Errorf("%w: theme %q", ErrInvalid, c.Theme)
	case c.SaveFile == "":
		return fmt.Errorf("%w: save_file is empty", ErrInvalid)
	}
	return nil
}

// TickInterval is the wall-clock duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
