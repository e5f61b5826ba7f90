package loot

import (
	"math"
	"math/rand"

	"lunarforge.dev/shadowbeat/internal/geom"
)

// BurstCount is the default number of coins in a death burst.
const BurstCount = 5

// Pickupable is the capability every collectible drop exposes: a collision
// box and a gold value. Pickup logic is written once against this, so
// typed coins and legacy untyped drops interoperate transparently.
type Pickupable interface {
	PickupRect() geom.Rect
	GoldValue() int
}

// System owns the live coin collection and any legacy drops registered
// with it. Single-writer: the frame loop steps it and queries pickups;
// no locking.
type System struct {
	rng    *rand.Rand
	coins  []*Coin
	extras []Pickupable
}

// NewSystem creates a coin system using the given random source. Tests
// pass a seeded source for reproducible bursts.
func NewSystem(rng *rand.Rand) *System {
	return &System{rng: rng}
}

// Coins returns the live coin slice for drawing. Callers must not retain
// the slice across frames.
func (s *System) Coins() []*Coin {
	return s.coins
}

// Count returns how many coins are currently live.
func (s *System) Count() int {
	return len(s.coins)
}

// AddDrop registers a legacy drop so the pickup pass can collect it
// alongside typed coins.
func (s *System) AddDrop(p Pickupable) {
	s.extras = append(s.extras, p)
}

// Clear removes every live coin and legacy drop, e.g. on level change.
func (s *System) Clear() {
	s.coins = s.coins[:0]
	s.extras = s.extras[:0]
}

// SpawnBurst scatters count coins from origin in a mostly-upward fan.
// count <= 0 spawns the default burst. Each coin gets a random gold value
// in [1,3] and a random spray velocity; the spawn height is the baseline
// the coin settles back to.
func (s *System) SpawnBurst(origin geom.Vec, count int) {
	if count <= 0 {
		count = BurstCount
	}
	for i := 0; i < count; i++ {
		speed := minSpraySpeed + s.rng.Float64()*(maxSpraySpeed-minSpraySpeed)
		angleDeg := minSprayAngle + s.rng.Float64()*(maxSprayAngle-minSprayAngle)
		angle := angleDeg * math.Pi / 180

		s.coins = append(s.coins, &Coin{
			Pos:     origin,
			Vel:     geom.Vec{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)},
			Gold:    minGoldValue + s.rng.Intn(maxGoldValue-minGoldValue+1),
			Life:    Lifetime,
			State:   StateAirborne,
			groundY: origin.Y,
			RestY:   origin.Y,
		})
	}
}

// Step advances every live coin and drops expired ones from the
// collection.
func (s *System) Step(dt float64) {
	alive := s.coins[:0]
	for _, c := range s.coins {
		c.step(dt)
		if c.Alive() {
			alive = append(alive, c)
		}
	}
	// Zero the tail so removed coins don't linger in the backing array.
	for i := len(alive); i < len(s.coins); i++ {
		s.coins[i] = nil
	}
	s.coins = alive
}

// CheckPickup collects every live drop whose box overlaps playerRect and
// returns their gold values, each exactly once. Removal is
// collect-then-filter so expiry and pickup never skip or double-process
// an entry.
func (s *System) CheckPickup(playerRect geom.Rect) []int {
	var collected []int

	kept := s.coins[:0]
	for _, c := range s.coins {
		if c.Alive() && playerRect.Intersects(c.PickupRect()) {
			c.State = StateCollected
			collected = append(collected, c.Gold)
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(s.coins); i++ {
		s.coins[i] = nil
	}
	s.coins = kept

	keptExtras := s.extras[:0]
	for _, p := range s.extras {
		if playerRect.Intersects(p.PickupRect()) {
			collected = append(collected, p.GoldValue())
			continue
		}
		keptExtras = append(keptExtras, p)
	}
	for i := len(keptExtras); i < len(s.extras); i++ {
		s.extras[i] = nil
	}
	s.extras = keptExtras

	return collected
}
