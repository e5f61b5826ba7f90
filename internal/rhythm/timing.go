package rhythm

import "image/color"

// Tier classifies how close an attack press was to a beat boundary.
type Tier string

const (
	TierPerfect Tier = "perfect"
	TierGood    Tier = "good"
	TierMiss    Tier = "miss"
)

// Timing windows in seconds from the nearest beat, boundary-inclusive.
// Presses beyond the miss window also grade as Miss; there is no separate
// whiff tier.
const (
	PerfectWindow = 0.080
	GoodWindow    = 0.150
	MissWindow    = 0.250
)

// Damage multipliers per tier.
const (
	PerfectMultiplier = 1.5
	GoodMultiplier    = 1.2
	MissMultiplier    = 0.8
)

// TimingResult is the grade for a single attack press.
type TimingResult struct {
	Tier       Tier
	Multiplier float64
}

// Evaluate grades an offset-to-nearest-beat. Deterministic and
// side-effect free; the caller reads the offset from a Clock at the press
// instant.
func Evaluate(offset float64) TimingResult {
	switch {
	case offset <= PerfectWindow:
		return TimingResult{Tier: TierPerfect, Multiplier: PerfectMultiplier}
	case offset <= GoodWindow:
		return TimingResult{Tier: TierGood, Multiplier: GoodMultiplier}
	default:
		// Includes both the explicit miss window (<= MissWindow) and
		// anything beyond it.
		return TimingResult{Tier: TierMiss, Multiplier: MissMultiplier}
	}
}

// Color returns the UI feedback color for a tier: gold for perfect, green
// for good, red for miss. Data only; the render layer decides how to use
// it.
func (t Tier) Color() color.RGBA {
	switch t {
	case TierPerfect:
		return color.RGBA{R: 255, G: 215, B: 0, A: 255}
	case TierGood:
		return color.RGBA{R: 100, G: 255, B: 100, A: 255}
	default:
		return color.RGBA{R: 255, G: 100, B: 100, A: 255}
	}
}

// Label returns the feedback text shown above the player.
func (t Tier) Label() string {
	switch t {
	case TierPerfect:
		return "PERFECT"
	case TierGood:
		return "GOOD"
	default:
		return "MISS"
	}
}
