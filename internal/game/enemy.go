package game

import (
	"lunarforge.dev/shadowbeat/internal/config"
	"lunarforge.dev/shadowbeat/internal/geom"
)

// Enemy dimensions and tuning.
const (
	EnemyWidth  = 64
	EnemyHeight = 64

	// Base knockback speed in px/frame, scaled by the attack's knockback
	// modifier, then damped each tick.
	knockbackSpeed   = 12.0
	knockbackDamping = 0.85

	// Dead enemies linger briefly for the death bounce before removal.
	removeDelay = 1.5
)

// Enemy is a simple arena target: it stands, takes resolved damage and
// knockback, and scatters coins on death.
type Enemy struct {
	Name string
	Pos  geom.Vec // top-left corner
	W, H float64

	HP    float64
	MaxHP float64

	VelX        float64 // knockback px/frame
	Dead        bool
	RemoveTimer float64
}

// NewEnemy builds an enemy from its config definition.
func NewEnemy(def config.EnemyDef) *Enemy {
	return &Enemy{
		Name:  def.Name,
		Pos:   geom.Vec{X: def.X, Y: def.Y},
		W:     EnemyWidth,
		H:     EnemyHeight,
		HP:    def.HP,
		MaxHP: def.HP,
	}
}

// Rect returns the enemy's collision box.
func (e *Enemy) Rect() geom.Rect {
	return geom.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

// Alive reports whether the enemy still has HP.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// TakeHit applies damage and knockback. fromLeft pushes the enemy to the
// right. Returns true when this hit killed the enemy.
func (e *Enemy) TakeHit(damage, knockbackScale float64, fromLeft bool) bool {
	if e.Dead {
		return false
	}
	e.HP -= damage
	push := knockbackSpeed * knockbackScale
	if !fromLeft {
		push = -push
	}
	e.VelX = push

	if e.HP <= 0 {
		e.HP = 0
		e.Dead = true
		e.RemoveTimer = removeDelay
		return true
	}
	return false
}

// Update advances knockback decay and the post-death removal timer.
// Returns false once the enemy should be removed from the world.
func (e *Enemy) Update(dt float64) bool {
	e.Pos.X += e.VelX
	e.VelX *= knockbackDamping

	if e.Dead {
		e.RemoveTimer -= dt
		return e.RemoveTimer > 0
	}
	return true
}
