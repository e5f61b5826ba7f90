// Package music plays the game's soundtrack and tells the combat session
// which tempo to grade against. Each track carries its BPM as metadata;
// switching tracks fires the song-change hook so the beat clock resets on
// the new song's downbeat.
package music

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"lunarforge.dev/shadowbeat/internal/config"
)

const sampleRate = beep.SampleRate(48000)

// SongListener receives the BPM of the track that just started. The host
// wires this to Session.OnSongChanged.
type SongListener func(bpm float64)

// Manager owns the speaker and the track registry. Playback is optional:
// a missing audio file degrades to a silent track whose BPM still drives
// the beat clock, so the game is playable without assets.
type Manager struct {
	tracks      map[string]config.TrackDef
	listener    SongListener
	current     string
	currentBPM  float64
	initialized bool
}

// NewManager builds a manager over the configured tracks.
func NewManager(tracks []config.TrackDef) *Manager {
	m := &Manager{tracks: make(map[string]config.TrackDef, len(tracks))}
	for _, tr := range tracks {
		m.tracks[tr.Name] = tr
	}
	return m
}

// SetSongListener registers the song-change hook. Must be set before the
// first Play for the session to pick up the initial tempo.
func (m *Manager) SetSongListener(fn SongListener) {
	m.listener = fn
}

// Init opens the speaker. Safe to skip in tests and headless runs; Play
// then only drives the tempo hook.
func (m *Manager) Init() error {
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	m.initialized = true
	return nil
}

// Current returns the name of the playing track, or "" before the first
// Play.
func (m *Manager) Current() string {
	return m.current
}

// CurrentBPM returns the tempo of the playing track.
func (m *Manager) CurrentBPM() float64 {
	return m.currentBPM
}

// Play switches to the named track. The song-change hook fires even when
// the audio file cannot be played, so combat timing always follows the
// intended tempo; in that case Play returns the load error for the caller
// to log.
func (m *Manager) Play(name string) error {
	tr, ok := m.tracks[name]
	if !ok {
		return fmt.Errorf("unknown track %q", name)
	}
	if m.current == name {
		return nil
	}

	m.current = name
	m.currentBPM = tr.BPM
	if m.listener != nil {
		m.listener(tr.BPM)
	}

	if !m.initialized {
		return nil
	}

	streamer, format, err := m.openTrack(tr)
	if err != nil {
		speaker.Clear()
		return err
	}

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	speaker.Clear()
	speaker.Play(s)
	return nil
}

// Stop silences playback without clearing the current track's tempo.
func (m *Manager) Stop() {
	if m.initialized {
		speaker.Clear()
	}
}

// openTrack decodes a track file into a streamer, looping it if the track
// asks for it.
func (m *Manager) openTrack(tr config.TrackDef) (beep.Streamer, beep.Format, error) {
	f, err := os.Open(tr.Path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to open track %s: %w", tr.Path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode track %s: %w", tr.Path, err)
	}

	if tr.Loop {
		return beep.Loop(-1, streamer), format, nil
	}
	return streamer, format, nil
}
