package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
	if cfg.Track(cfg.DefaultTrack) == nil {
		t.Errorf("Default track %q is not in the track list", cfg.DefaultTrack)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"title": "Test Arena",
		"player": {
			"base_damage": 20,
			"move_speed": 7,
			"gravity": 0.7,
			"max_fall": 12,
			"jump_speed": 14
		},
		"tracks": [
			{"name": "test_theme", "path": "missing.wav", "bpm": 90, "loop": false}
		],
		"default_track": "test_theme"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Title != "Test Arena" {
		t.Errorf("Expected title 'Test Arena', got '%s'", cfg.Title)
	}
	if cfg.Player.BaseDamage != 20 {
		t.Errorf("Expected base damage 20, got %v", cfg.Player.BaseDamage)
	}

	// Fields the file omits keep their defaults.
	if cfg.ScreenWidth != 1080 || cfg.ScreenHeight != 720 {
		t.Errorf("Expected default screen size 1080x720, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.GroundY != 600 {
		t.Errorf("Expected default ground_y 600, got %v", cfg.GroundY)
	}

	tr := cfg.Track("test_theme")
	if tr == nil {
		t.Fatal("Expected test_theme in the track list")
	}
	if tr.BPM != 90 {
		t.Errorf("Expected bpm 90, got %v", tr.BPM)
	}
	if tr.Loop {
		t.Error("Expected loop false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"title": `)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"zero base damage", `{"player": {"base_damage": 0}}`},
		{"negative bpm", `{"tracks": [{"name": "bad", "path": "x.wav", "bpm": -10}], "default_track": "bad"}`},
		{"unnamed track", `{"tracks": [{"path": "x.wav", "bpm": 120}], "default_track": ""}`},
		{"unknown default track", `{"default_track": "does_not_exist"}`},
		{"zero screen width", `{"screen_width": 0}`},
	}

	for _, c := range cases {
		path := writeConfig(t, c.json)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestTrackLookup(t *testing.T) {
	cfg := Default()

	if cfg.Track("battle_theme") == nil {
		t.Error("Expected battle_theme to be defined")
	}
	if cfg.Track("no_such_track") != nil {
		t.Error("Expected nil for unknown track")
	}
}
