package combat

import (
	"math"
	"testing"

	"lunarforge.dev/shadowbeat/internal/rhythm"
)

func TestModFor(t *testing.T) {
	if mod := ModFor(DirNeutral); mod.Damage != 1.0 || mod.Knockback != 1.0 {
		t.Errorf("Unexpected neutral modifiers: %+v", mod)
	}
	if mod := ModFor(DirForward); mod.Damage != 1.2 || mod.Knockback != 1.5 {
		t.Errorf("Unexpected forward modifiers: %+v", mod)
	}
	if mod := ModFor(DirDown); mod.Damage != 1.1 || mod.Knockback != 0.6 {
		t.Errorf("Unexpected down modifiers: %+v", mod)
	}

	// Unknown directions fall back to neutral.
	if mod := ModFor(Direction("uppercut")); mod.Name != "Standard Slash" {
		t.Errorf("Expected neutral fallback, got %s", mod.Name)
	}
}

// Five on-beat forward attacks in quick succession walk the damage up from
// 29.7 to the saturated 40.5.
func TestResolvePerfectForwardChain(t *testing.T) {
	clock := rhythm.NewClock(120)
	clock.Advance(0.5) // exactly on a beat
	combo := NewCombo()
	var resolver Resolver

	expected := []float64{29.7, 32.4, 35.1, 37.8, 40.5}
	now := 0.0
	for i, want := range expected {
		now += 0.5
		res := resolver.Resolve(15, DirForward, clock, combo, now)

		if res.Tier != rhythm.TierPerfect {
			t.Fatalf("Hit %d: expected perfect tier, got %s", i+1, res.Tier)
		}
		if math.Abs(res.Damage-want) > epsilon {
			t.Errorf("Hit %d: expected damage %v, got %v", i+1, want, res.Damage)
		}
		if res.KnockbackScale != 1.5 {
			t.Errorf("Hit %d: expected knockback scale 1.5, got %v", i+1, res.KnockbackScale)
		}
		if res.ComboCount != i+1 {
			t.Errorf("Hit %d: expected combo count %d, got %d", i+1, i+1, res.ComboCount)
		}
	}
}

func TestResolveMissWithoutSong(t *testing.T) {
	clock := rhythm.NewClock(0) // no song playing
	combo := NewCombo()
	var resolver Resolver

	res := resolver.Resolve(15, DirNeutral, clock, combo, 1.0)

	if res.Tier != rhythm.TierMiss {
		t.Fatalf("Expected miss without a song, got %s", res.Tier)
	}
	// 15 * 1.0 (neutral) * 0.8 (miss) * 1.0 (no combo)
	if math.Abs(res.Damage-12.0) > epsilon {
		t.Errorf("Expected damage 12, got %v", res.Damage)
	}
	if res.ComboCount != 0 {
		t.Errorf("Expected combo count 0 on miss, got %d", res.ComboCount)
	}
	if res.ComboMult != 1.0 {
		t.Errorf("Expected combo multiplier 1.0 on miss, got %v", res.ComboMult)
	}
}

func TestResolveOffBeatGood(t *testing.T) {
	clock := rhythm.NewClock(120)
	clock.Advance(0.1) // 100ms past the beat: good window
	combo := NewCombo()
	var resolver Resolver

	res := resolver.Resolve(10, DirDown, clock, combo, 0.1)

	if res.Tier != rhythm.TierGood {
		t.Fatalf("Expected good tier, got %s", res.Tier)
	}
	// 10 * 1.1 (down) * 1.2 (good) * 1.1 (combo count 1)
	if math.Abs(res.Damage-14.52) > epsilon {
		t.Errorf("Expected damage 14.52, got %v", res.Damage)
	}
	if res.KnockbackScale != 0.6 {
		t.Errorf("Expected knockback scale 0.6, got %v", res.KnockbackScale)
	}
}
