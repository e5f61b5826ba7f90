package game

import (
	"lunarforge.dev/shadowbeat/internal/combat"
	"lunarforge.dev/shadowbeat/internal/config"
	"lunarforge.dev/shadowbeat/internal/geom"
)

// Player dimensions in pixels.
const (
	PlayerWidth  = 64
	PlayerHeight = 64
)

// Player is the controllable character. Movement uses per-frame pixel
// units at the fixed 60 TPS tick (speed and gravity are px/frame values
// in the config).
type Player struct {
	Pos  geom.Vec // top-left corner
	VelY float64  // px per frame, positive down

	OnGround    bool
	FacingRight bool
	MovingLeft  bool
	MovingRight bool

	// Gold is the player's balance; only pickup resolution adds to it.
	Gold int

	cfg config.PlayerDef
}

// NewPlayer creates the player at the given top-left position.
func NewPlayer(cfg config.PlayerDef, x, y float64) *Player {
	return &Player{
		Pos:         geom.Vec{X: x, Y: y},
		FacingRight: true,
		cfg:         cfg,
	}
}

// Rect returns the player's collision box.
func (p *Player) Rect() geom.Rect {
	return geom.Rect{X: p.Pos.X, Y: p.Pos.Y, W: PlayerWidth, H: PlayerHeight}
}

// BaseDamage returns the configured attack damage before modifiers.
func (p *Player) BaseDamage() float64 {
	return p.cfg.BaseDamage
}

// Jump launches the player upward if standing on ground.
func (p *Player) Jump() {
	if p.OnGround {
		p.VelY = -p.cfg.JumpSpeed
		p.OnGround = false
	}
}

// Update advances movement one tick: horizontal run, gravity, and the
// arena floor.
func (p *Player) Update(groundY float64) {
	if p.MovingLeft && !p.MovingRight {
		p.Pos.X -= p.cfg.MoveSpeed
		p.FacingRight = false
	} else if p.MovingRight && !p.MovingLeft {
		p.Pos.X += p.cfg.MoveSpeed
		p.FacingRight = true
	}
	if p.Pos.X < 0 {
		p.Pos.X = 0
	}

	p.VelY += p.cfg.Gravity
	if p.VelY > p.cfg.MaxFall {
		p.VelY = p.cfg.MaxFall
	}
	p.Pos.Y += p.VelY

	if p.Pos.Y+PlayerHeight >= groundY {
		p.Pos.Y = groundY - PlayerHeight
		p.VelY = 0
		p.OnGround = true
	}
}

// AttackHitbox returns the world-space hitbox for an attack in the given
// direction, mirrored to the player's facing.
func (p *Player) AttackHitbox(dir combat.Direction) geom.Rect {
	mod := combat.ModFor(dir)
	center := p.Rect().Center()

	box := mod.Hitbox
	if p.FacingRight {
		return geom.Rect{X: center.X + box.X, Y: center.Y + box.Y, W: box.W, H: box.H}
	}
	return geom.Rect{X: center.X - box.X - box.W, Y: center.Y + box.Y, W: box.W, H: box.H}
}
