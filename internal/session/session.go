// Package session owns one combat session's mutable core state: the beat
// clock, the combo streak, and the live coins. The host frame loop drives
// it through the On* hooks and drains UI events after each frame. A
// session is an explicit context object - create as many as needed, never
// shared between loops.
package session

import (
	"math/rand"

	"lunarforge.dev/shadowbeat/internal/combat"
	"lunarforge.dev/shadowbeat/internal/geom"
	"lunarforge.dev/shadowbeat/internal/loot"
	"lunarforge.dev/shadowbeat/internal/rhythm"
)

// Session is the frame-stepped combat core. Single-writer: every method
// must be called from the same loop that calls OnFrame. All methods are
// synchronous and complete within the frame.
type Session struct {
	clock    *rhythm.Clock
	combo    *combat.Combo
	resolver combat.Resolver
	coins    *loot.System

	// now is session-relative time accumulated from OnFrame deltas; the
	// combo timeout and event timestamps are measured against it.
	now float64

	events []Event
}

// New creates a session with no song playing (all attacks grade Miss
// until OnSongChanged supplies a BPM). The random source feeds coin
// bursts; tests pass a seeded one.
func New(rng *rand.Rand) *Session {
	return &Session{
		clock: rhythm.NewClock(0),
		combo: combat.NewCombo(),
		coins: loot.NewSystem(rng),
	}
}

// Clock exposes the beat clock, e.g. for the HUD beat indicator.
func (s *Session) Clock() *rhythm.Clock {
	return s.clock
}

// Combo exposes the combo streak for display.
func (s *Session) Combo() *combat.Combo {
	return s.combo
}

// Coins exposes the coin system for drawing and legacy drop injection.
func (s *Session) Coins() *loot.System {
	return s.coins
}

// Now returns session-relative time in seconds.
func (s *Session) Now() float64 {
	return s.now
}

// OnSongChanged must be called on every music or level transition. It
// swaps the BPM and resets the beat phase; skipping it leaves the clock
// grading against the previous song's downbeat.
func (s *Session) OnSongChanged(bpm float64) {
	s.clock.SetBPM(bpm)
}

// OnFrame advances the session by one frame: beat clock, session time,
// and coin physics.
func (s *Session) OnFrame(dt float64) {
	s.clock.Advance(dt)
	s.now += dt
	s.coins.Step(dt)
}

// OnAttackPressed resolves an attack pressed this frame. It grades the
// press against the beat clock, updates the combo streak, and queues
// timing and combo feedback events for the UI.
func (s *Session) OnAttackPressed(dir combat.Direction, baseDamage float64) combat.Result {
	res := s.resolver.Resolve(baseDamage, dir, s.clock, s.combo, s.now)

	s.events = append(s.events, Event{
		Kind:  EventTiming,
		Tier:  res.Tier,
		Color: res.Tier.Color(),
		Label: res.Tier.Label(),
	})
	if res.ComboCount > 0 {
		s.events = append(s.events, Event{
			Kind:       EventCombo,
			ComboCount: res.ComboCount,
			ComboMult:  res.ComboMult,
		})
	}
	return res
}

// OnEnemyDied scatters a coin burst at the enemy's position.
func (s *Session) OnEnemyDied(pos geom.Vec) {
	s.coins.SpawnBurst(pos, loot.BurstCount)
}

// OnPlayerFrame collects every drop overlapping the player this frame and
// returns the total gold. The caller owns the gold balance; the session
// only reports the delta and queues a pickup event.
func (s *Session) OnPlayerFrame(playerRect geom.Rect) int {
	total := 0
	for _, v := range s.coins.CheckPickup(playerRect) {
		total += v
	}
	if total > 0 {
		s.events = append(s.events, Event{Kind: EventGold, Gold: total})
	}
	return total
}

// DrainEvents returns the events queued since the last drain and clears
// the queue. Fire-and-forget: events not drained are dropped with the
// next drain's return.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}
