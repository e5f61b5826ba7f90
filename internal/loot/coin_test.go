package loot

import (
	"math"
	"math/rand"
	"testing"

	"lunarforge.dev/shadowbeat/internal/geom"
)

const frameDt = 1.0 / 60.0

func newTestSystem() *System {
	return NewSystem(rand.New(rand.NewSource(42)))
}

// A rect large enough to cover the whole arena.
var everywhere = geom.Rect{X: -1e6, Y: -1e6, W: 2e6, H: 2e6}

func TestSpawnBurst(t *testing.T) {
	sys := newTestSystem()
	origin := geom.Vec{X: 400, Y: 300}

	sys.SpawnBurst(origin, 0) // 0 requests the default burst

	if sys.Count() != BurstCount {
		t.Fatalf("Expected %d coins, got %d", BurstCount, sys.Count())
	}

	for i, c := range sys.Coins() {
		if c.Pos != origin {
			t.Errorf("Coin %d: expected spawn at %+v, got %+v", i, origin, c.Pos)
		}
		if c.Gold < 1 || c.Gold > 3 {
			t.Errorf("Coin %d: expected gold in [1,3], got %d", i, c.Gold)
		}
		if c.Vel.Y >= 0 {
			t.Errorf("Coin %d: expected upward launch, got vy %v", i, c.Vel.Y)
		}
		speed := math.Hypot(c.Vel.X, c.Vel.Y)
		if speed < minSpraySpeed || speed > maxSpraySpeed {
			t.Errorf("Coin %d: expected speed in [%v,%v], got %v", i, minSpraySpeed, maxSpraySpeed, speed)
		}
		if c.State != StateAirborne {
			t.Errorf("Coin %d: expected airborne spawn, got state %d", i, c.State)
		}
		if c.Life != Lifetime {
			t.Errorf("Coin %d: expected lifetime %v, got %v", i, Lifetime, c.Life)
		}
	}
}

// Damping is applied once per step, not scaled by dt.
func TestCoinDampingPerStep(t *testing.T) {
	sys := newTestSystem()
	sys.SpawnBurst(geom.Vec{X: 0, Y: 0}, 1)

	c := sys.Coins()[0]
	vx, vy := c.Vel.X, c.Vel.Y

	sys.Step(frameDt)

	wantVX := vx * Damping
	wantVY := (vy + Gravity*frameDt) * Damping
	if math.Abs(c.Vel.X-wantVX) > 1e-9 {
		t.Errorf("Expected vx %v after one step, got %v", wantVX, c.Vel.X)
	}
	if math.Abs(c.Vel.Y-wantVY) > 1e-9 {
		t.Errorf("Expected vy %v after one step, got %v", wantVY, c.Vel.Y)
	}
}

func TestCoinSettlesOnSpawnBaseline(t *testing.T) {
	sys := newTestSystem()
	origin := geom.Vec{X: 400, Y: 300}
	sys.SpawnBurst(origin, 1)
	c := sys.Coins()[0]

	// Two seconds of frames: plenty to arc up and fall back.
	for i := 0; i < 120; i++ {
		sys.Step(frameDt)
	}

	if c.State != StateResting {
		t.Fatalf("Expected coin resting after 2s, got state %d", c.State)
	}
	if c.Pos.Y != origin.Y {
		t.Errorf("Expected coin to settle on baseline %v, got %v", origin.Y, c.Pos.Y)
	}
	if c.Vel.X != 0 || c.Vel.Y != 0 {
		t.Errorf("Expected zero velocity at rest, got %+v", c.Vel)
	}

	// The bob is a render overlay around the rest height; the physics
	// position stays put.
	sys.Step(frameDt)
	if c.Pos.Y != origin.Y {
		t.Errorf("Expected resting coin to stay on baseline, got %v", c.Pos.Y)
	}
	if math.Abs(c.VisualY()-c.RestY) > BobHeight {
		t.Errorf("Expected visual Y within %v of rest height, got %v (rest %v)", BobHeight, c.VisualY(), c.RestY)
	}
}

func TestCoinExpiry(t *testing.T) {
	sys := newTestSystem()
	sys.SpawnBurst(geom.Vec{X: 100, Y: 100}, BurstCount)

	sys.Step(1.0)
	sys.Step(1.0)
	if sys.Count() != BurstCount {
		t.Fatalf("Expected %d coins alive at 2s, got %d", BurstCount, sys.Count())
	}

	sys.Step(1.0)
	if sys.Count() != 0 {
		t.Errorf("Expected all coins expired at 3s, got %d", sys.Count())
	}
}

func TestCheckPickupCollectsEachCoinOnce(t *testing.T) {
	sys := newTestSystem()
	sys.SpawnBurst(geom.Vec{X: 100, Y: 100}, BurstCount)

	// Out of reach: nothing collected.
	far := geom.Rect{X: 5000, Y: 5000, W: 10, H: 10}
	if got := sys.CheckPickup(far); len(got) != 0 {
		t.Errorf("Expected no pickups out of range, got %v", got)
	}
	if sys.Count() != BurstCount {
		t.Errorf("Expected all coins to survive a missed pickup, got %d", sys.Count())
	}

	got := sys.CheckPickup(everywhere)
	if len(got) != BurstCount {
		t.Fatalf("Expected %d pickups, got %d", BurstCount, len(got))
	}
	for i, v := range got {
		if v < 1 || v > 3 {
			t.Errorf("Pickup %d: expected value in [1,3], got %d", i, v)
		}
	}
	if sys.Count() != 0 {
		t.Errorf("Expected no coins left after pickup, got %d", sys.Count())
	}

	// A second sweep finds nothing: each coin pays out exactly once.
	if got := sys.CheckPickup(everywhere); len(got) != 0 {
		t.Errorf("Expected no double pickups, got %v", got)
	}
}

func TestClear(t *testing.T) {
	sys := newTestSystem()
	sys.SpawnBurst(geom.Vec{X: 100, Y: 100}, BurstCount)
	sys.AddDrop(&LegacyDrop{X: 50, Y: 50, Value: 2})

	sys.Clear()

	if sys.Count() != 0 {
		t.Errorf("Expected no coins after Clear, got %d", sys.Count())
	}
	if got := sys.CheckPickup(everywhere); len(got) != 0 {
		t.Errorf("Expected no pickups after Clear, got %v", got)
	}
}
