package music

import (
	"testing"

	"lunarforge.dev/shadowbeat/internal/config"
)

// These tests run the manager without Init, so no speaker is opened and
// Play only drives the tempo hook. That is the same degraded path the
// game takes when audio hardware or assets are missing.

func testTracks() []config.TrackDef {
	return []config.TrackDef{
		{Name: "battle_theme", Path: "missing/battle.wav", BPM: 140, Loop: true},
		{Name: "forest_theme", Path: "missing/forest.wav", BPM: 180, Loop: true},
	}
}

func TestPlayUnknownTrack(t *testing.T) {
	m := NewManager(testTracks())
	if err := m.Play("no_such_track"); err == nil {
		t.Error("Expected error for unknown track")
	}
	if m.Current() != "" {
		t.Errorf("Expected no current track after a failed play, got %q", m.Current())
	}
}

func TestPlayFiresSongListener(t *testing.T) {
	m := NewManager(testTracks())

	var tempos []float64
	m.SetSongListener(func(bpm float64) {
		tempos = append(tempos, bpm)
	})

	if err := m.Play("battle_theme"); err != nil {
		t.Fatalf("Failed to play: %v", err)
	}
	if m.Current() != "battle_theme" {
		t.Errorf("Expected current track battle_theme, got %q", m.Current())
	}
	if m.CurrentBPM() != 140 {
		t.Errorf("Expected current BPM 140, got %v", m.CurrentBPM())
	}

	// Replaying the same track is a no-op and must not re-fire the hook.
	if err := m.Play("battle_theme"); err != nil {
		t.Fatalf("Failed to replay: %v", err)
	}
	if len(tempos) != 1 {
		t.Fatalf("Expected one listener call, got %d", len(tempos))
	}

	if err := m.Play("forest_theme"); err != nil {
		t.Fatalf("Failed to switch tracks: %v", err)
	}
	if len(tempos) != 2 || tempos[0] != 140 || tempos[1] != 180 {
		t.Errorf("Expected listener calls [140 180], got %v", tempos)
	}
}

func TestPlayWithoutListener(t *testing.T) {
	m := NewManager(testTracks())
	if err := m.Play("battle_theme"); err != nil {
		t.Fatalf("Expected play to succeed without a listener: %v", err)
	}
}

func TestStopWithoutInit(t *testing.T) {
	m := NewManager(testTracks())
	m.Play("battle_theme")
	m.Stop() // must not touch the speaker when uninitialized

	if m.CurrentBPM() != 140 {
		t.Errorf("Expected Stop to keep the current tempo, got %v", m.CurrentBPM())
	}
}
