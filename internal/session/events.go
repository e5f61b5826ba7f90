package session

import (
	"image/color"

	"lunarforge.dev/shadowbeat/internal/rhythm"
)

// EventKind discriminates session UI events.
type EventKind string

const (
	// EventTiming reports the tier of a resolved attack, with the
	// feedback text and color the UI floats above the player.
	EventTiming EventKind = "timing"
	// EventCombo reports the streak count and multiplier after a hit.
	EventCombo EventKind = "combo"
	// EventGold reports gold collected in a frame.
	EventGold EventKind = "gold"
)

// Event is a fire-and-forget notification for the UI layer. Only the
// fields relevant to the kind are set.
type Event struct {
	Kind EventKind

	Tier  rhythm.Tier
	Color color.RGBA
	Label string

	ComboCount int
	ComboMult  float64

	Gold int
}
