package combat

import (
	"lunarforge.dev/shadowbeat/internal/geom"
	"lunarforge.dev/shadowbeat/internal/rhythm"
)

// Direction is the movement direction held when the attack key is pressed.
type Direction string

const (
	DirNeutral Direction = "neutral"
	DirForward Direction = "forward"
	DirDown    Direction = "down"
)

// DirectionMod carries the per-direction damage and knockback scaling plus
// the hitbox the attack sweeps, relative to the attacker's center (positive
// X extends in the facing direction).
type DirectionMod struct {
	Name      string
	Damage    float64 // damage scale
	Knockback float64 // knockback scale
	Hitbox    geom.Rect
}

// directionMods holds the built-in attack table. Forward trades reach and
// knockback for a slower swing; down sweeps low with reduced knockback
// (0.6 is the chosen constant for "less knockback").
var directionMods = map[Direction]DirectionMod{
	DirNeutral: {
		Name:      "Standard Slash",
		Damage:    1.0,
		Knockback: 1.0,
		Hitbox:    geom.Rect{X: 30, Y: -40, W: 80, H: 60},
	},
	DirForward: {
		Name:      "Dash Attack",
		Damage:    1.2,
		Knockback: 1.5,
		Hitbox:    geom.Rect{X: 40, Y: -55, W: 120, H: 80},
	},
	DirDown: {
		Name:      "Low Sweep",
		Damage:    1.1,
		Knockback: 0.6,
		Hitbox:    geom.Rect{X: 30, Y: 0, W: 100, H: 40},
	},
}

// ModFor returns the direction table entry, defaulting to neutral for
// unknown directions.
func ModFor(dir Direction) DirectionMod {
	if mod, ok := directionMods[dir]; ok {
		return mod
	}
	return directionMods[DirNeutral]
}

// Result is the outcome of one resolved attack.
type Result struct {
	Damage         float64
	KnockbackScale float64
	Tier           rhythm.Tier
	TimingMult     float64
	ComboMult      float64
	ComboCount     int
}

// Resolver composes base damage, direction modifier, timing grade, and
// combo streak into a final attack result. It owns no state of its own;
// the clock and combo are passed in per session.
type Resolver struct{}

// Resolve grades the press against the clock, feeds the grade into the
// combo, and returns the final damage and knockback scale. Always
// produces a value; there are no failure modes here.
func (Resolver) Resolve(baseDamage float64, dir Direction, clock *rhythm.Clock, combo *Combo, now float64) Result {
	mod := ModFor(dir)
	timing := rhythm.Evaluate(clock.OffsetToNearestBeat())
	comboMult := combo.OnResult(timing.Tier, now)

	return Result{
		Damage:         baseDamage * mod.Damage * timing.Multiplier * comboMult,
		KnockbackScale: mod.Knockback,
		Tier:           timing.Tier,
		TimingMult:     timing.Multiplier,
		ComboMult:      comboMult,
		ComboCount:     combo.Count(),
	}
}
