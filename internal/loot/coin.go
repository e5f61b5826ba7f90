// Package loot simulates the coins enemies scatter on death: a physics
// burst, a bobbing rest on the ground, pickup against the player's
// collision box, and expiry. The system owns every live coin; nothing
// else holds a reference.
package loot

import (
	"math"

	"lunarforge.dev/shadowbeat/internal/geom"
)

// Coin physics and presentation tuning.
const (
	Gravity  = 800.0 // px/s^2 downward
	Lifetime = 3.0   // seconds before an uncollected coin expires

	// Velocity damping applied once per Step call, not scaled by dt. The
	// arc tuning assumes the fixed 60 TPS tick; do not make this
	// dt-proportional without retuning the spray speeds.
	Damping = 0.92

	BobSpeed  = 3.0 // bob cycles per second
	BobHeight = 8.0 // px amplitude of the bob overlay

	CoinSize = 16.0 // px, square pickup box

	// Spray parameters for a death burst: a mostly-upward fan.
	minSpraySpeed = 300.0 // px/s
	maxSpraySpeed = 500.0
	minSprayAngle = -126.0 // degrees, 0 = right, negative = up
	maxSprayAngle = -54.0

	minGoldValue = 1
	maxGoldValue = 3
)

// State tracks a coin through its lifecycle.
type State int

const (
	StateAirborne State = iota
	StateResting
	StateCollected
	StateExpired
)

// Coin is one physical coin. Pos is the integrated physics position; the
// bob overlay is applied on top of it at render/pickup time and never
// feeds back into the velocity.
type Coin struct {
	Pos      geom.Vec
	Vel      geom.Vec
	Gold     int
	Life     float64
	BobTimer float64
	State    State

	// groundY is the rest baseline: the spawn height the coin settles
	// back to. RestY mirrors it once the coin actually lands.
	groundY float64
	RestY   float64
}

// Alive reports whether the coin is still in the world.
func (c *Coin) Alive() bool {
	return c.State == StateAirborne || c.State == StateResting
}

// VisualY is the coin's on-screen vertical position: physics position
// plus the sine bob overlay.
func (c *Coin) VisualY() float64 {
	return c.Pos.Y + math.Sin(c.BobTimer*BobSpeed*2*math.Pi)*BobHeight
}

// PickupRect returns the coin's collision box, centered on the visual
// position so pickup matches what the player sees.
func (c *Coin) PickupRect() geom.Rect {
	return geom.NewRectCentered(geom.Vec{X: c.Pos.X, Y: c.VisualY()}, CoinSize, CoinSize)
}

// GoldValue returns the gold granted on pickup.
func (c *Coin) GoldValue() int {
	return c.Gold
}

// step advances one coin by dt seconds. Resting coins skip physics; they
// only bob and age.
func (c *Coin) step(dt float64) {
	if c.State == StateAirborne {
		c.Vel.Y += Gravity * dt
		c.Vel.X *= Damping
		c.Vel.Y *= Damping

		c.Pos.X += c.Vel.X * dt
		c.Pos.Y += c.Vel.Y * dt

		// Settle once the coin falls back to its spawn baseline. The
		// baseline becomes the bob anchor for the rest of the coin's life.
		if c.Vel.Y >= 0 && c.Pos.Y >= c.groundY {
			c.Pos.Y = c.groundY
			c.Vel = geom.Vec{}
			c.RestY = c.groundY
			c.State = StateResting
		}
	}

	c.BobTimer += dt

	c.Life -= dt
	if c.Life <= 0 && c.Alive() {
		c.State = StateExpired
	}
}
