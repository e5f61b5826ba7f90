// Package combat resolves attack damage from base stats, attack direction,
// beat-timing accuracy, and the running combo streak. All state lives in
// small structs owned by the session; nothing here is global.
package combat

import "lunarforge.dev/shadowbeat/internal/rhythm"

// Combo tuning defaults. A streak survives for ComboTimeout seconds after
// the last hit; each hit adds ComboStepBonus to the multiplier up to
// ComboMaxMultiplier.
const (
	ComboTimeout       = 2.0
	ComboStepBonus     = 0.1
	ComboMaxMultiplier = 1.5

	// The multiplier saturates at five hits, so the count is capped there
	// too; counting past the cap would not change any output.
	comboMaxCount = 5
)

// Combo tracks the running streak of non-miss attacks. Zero value is a
// cold streak; NewCombo applies the default tuning.
type Combo struct {
	Timeout       float64 // seconds a streak survives between hits
	StepBonus     float64 // multiplier gain per hit
	MaxMultiplier float64 // multiplier saturation point
	MaxCount      int

	count       int
	lastHitTime float64
}

// NewCombo creates a combo tracker with the default tuning.
func NewCombo() *Combo {
	return &Combo{
		Timeout:       ComboTimeout,
		StepBonus:     ComboStepBonus,
		MaxMultiplier: ComboMaxMultiplier,
		MaxCount:      comboMaxCount,
	}
}

// Count returns the current streak length.
func (c *Combo) Count() int {
	return c.count
}

// Multiplier returns the damage multiplier for the current streak:
// 1.0 for a cold streak, up to MaxMultiplier when saturated.
func (c *Combo) Multiplier() float64 {
	m := 1.0 + float64(c.count)*c.StepBonus
	if m > c.MaxMultiplier {
		m = c.MaxMultiplier
	}
	return m
}

// Reset clears the streak, e.g. when the player is hit.
func (c *Combo) Reset() {
	c.count = 0
}

// OnResult feeds one graded attack into the streak and returns the combo
// multiplier that applies to that attack. A miss breaks the streak
// immediately. A stale streak (more than Timeout since the last hit) is
// cleared before the new hit counts, so it never carries into a new
// exchange.
func (c *Combo) OnResult(tier rhythm.Tier, now float64) float64 {
	if tier == rhythm.TierMiss {
		c.count = 0
		c.lastHitTime = now
		return 1.0
	}

	if c.count > 0 && now-c.lastHitTime > c.Timeout {
		c.count = 0
	}

	if c.count < c.MaxCount {
		c.count++
	}
	c.lastHitTime = now
	return c.Multiplier()
}

// Expired reports whether the streak has timed out as of now. The session
// uses this to drop the combo display between exchanges.
func (c *Combo) Expired(now float64) bool {
	return c.count > 0 && now-c.lastHitTime > c.Timeout
}
