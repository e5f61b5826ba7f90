// Package config loads the game's balance and content tables from a JSON
// data file. Everything has a code-side default so the game runs without
// any data directory; the file overrides what it sets.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// TrackDef describes one music track and the tempo the beat clock grades
// against while it plays.
type TrackDef struct {
	Name string  `json:"name"` // Registry key (e.g., "battle_theme")
	Path string  `json:"path"` // WAV file path, may be missing on disk
	BPM  float64 `json:"bpm"`  // Beats per minute for the beat clock
	Loop bool    `json:"loop"` // Restart the track when it ends
}

// EnemyDef describes an enemy placed in the demo arena.
type EnemyDef struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	HP   float64 `json:"hp"`
	Gold int     `json:"gold_burst"` // Coins in the death burst; 0 = default
}

// PlayerDef carries the player's combat and movement tuning.
type PlayerDef struct {
	BaseDamage float64 `json:"base_damage"`
	MoveSpeed  float64 `json:"move_speed"` // px per frame
	Gravity    float64 `json:"gravity"`    // px per frame^2
	MaxFall    float64 `json:"max_fall"`   // px per frame terminal velocity
	JumpSpeed  float64 `json:"jump_speed"` // px per frame initial jump velocity
}

// GameConfig is the root of the data file.
type GameConfig struct {
	Title        string     `json:"title"`
	ScreenWidth  int        `json:"screen_width"`
	ScreenHeight int        `json:"screen_height"`
	GroundY      float64    `json:"ground_y"` // Arena floor height
	Player       PlayerDef  `json:"player"`
	Enemies      []EnemyDef `json:"enemies"`
	Tracks       []TrackDef `json:"tracks"`
	DefaultTrack string     `json:"default_track"`
}

// Default returns the built-in configuration used when no data file is
// present.
func Default() *GameConfig {
	return &GameConfig{
		Title:        "Shadowbeat",
		ScreenWidth:  1080,
		ScreenHeight: 720,
		GroundY:      600,
		Player: PlayerDef{
			BaseDamage: 15,
			MoveSpeed:  7,
			Gravity:    0.7,
			MaxFall:    12,
			JumpSpeed:  14,
		},
		Enemies: []EnemyDef{
			{Name: "shade", X: 700, Y: 536, HP: 60},
			{Name: "shade", X: 900, Y: 536, HP: 60},
		},
		Tracks: []TrackDef{
			{Name: "battle_theme", Path: "data/music/battle_theme.wav", BPM: 140, Loop: true},
			{Name: "forest_theme", Path: "data/music/forest_theme.wav", BPM: 180, Loop: true},
		},
		DefaultTrack: "battle_theme",
	}
}

// Load reads and validates a config file, starting from the defaults so
// omitted fields keep their built-in values.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the game relies on.
func (c *GameConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen dimensions: %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Player.BaseDamage <= 0 {
		return fmt.Errorf("player base_damage must be positive, got %v", c.Player.BaseDamage)
	}
	for i, tr := range c.Tracks {
		if tr.Name == "" {
			return fmt.Errorf("track %d has no name", i)
		}
		if tr.BPM <= 0 {
			return fmt.Errorf("track %q has invalid bpm %v", tr.Name, tr.BPM)
		}
	}
	if c.DefaultTrack != "" && c.Track(c.DefaultTrack) == nil {
		return fmt.Errorf("default_track %q is not defined", c.DefaultTrack)
	}
	return nil
}

// Track returns the named track definition, or nil if absent.
func (c *GameConfig) Track(name string) *TrackDef {
	for i := range c.Tracks {
		if c.Tracks[i].Name == name {
			return &c.Tracks[i]
		}
	}
	return nil
}
