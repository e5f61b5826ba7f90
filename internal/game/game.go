// Package game is the host frame loop: it feeds input and time into the
// combat session, applies resolved attacks to the arena's enemies, and
// hands session events to the HUD. All core state mutation goes through
// the session from this single loop.
package game

import (
	"fmt"
	"log"

	"lunarforge.dev/shadowbeat/internal/combat"
	"lunarforge.dev/shadowbeat/internal/config"
	"lunarforge.dev/shadowbeat/internal/music"
	"lunarforge.dev/shadowbeat/internal/render"
	"lunarforge.dev/shadowbeat/internal/session"
	"lunarforge.dev/shadowbeat/internal/ui/hud"
)

// Message is a transient on-screen log line.
type Message struct {
	Text     string
	TimeLeft float64
	MaxTime  float64
}

// Game holds all host state and wires the frame loop to the session.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Renderer render.Renderer
	InputMgr render.InputManager

	Cfg     *config.GameConfig
	Session *session.Session
	Music   *music.Manager

	Player  *Player
	Enemies []*Enemy
	GameHUD *hud.HUD

	Messages []Message
}

// New assembles the game from its collaborators. The session must already
// be wired to the music manager's song listener.
func New(cfg *config.GameConfig, renderer render.Renderer, input render.InputManager, sess *session.Session, mus *music.Manager) *Game {
	g := &Game{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		Renderer:     renderer,
		InputMgr:     input,
		Cfg:          cfg,
		Session:      sess,
		Music:        mus,
		Player:       NewPlayer(cfg.Player, 100, cfg.GroundY-PlayerHeight),
		GameHUD:      hud.New(),
	}
	for _, def := range cfg.Enemies {
		g.Enemies = append(g.Enemies, NewEnemy(def))
	}
	return g
}

// Update advances game logic one tick.
func (g *Game) Update() error {
	// Delta time for timers (fixed 60 TPS)
	dt := 1.0 / 60.0

	g.handleInput()

	g.Player.Update(g.Cfg.GroundY)

	var alive []*Enemy
	for _, e := range g.Enemies {
		if e.Update(dt) {
			alive = append(alive, e)
		}
	}
	g.Enemies = alive

	// Advance the combat core and resolve pickups against the player.
	g.Session.OnFrame(dt)
	if gold := g.Session.OnPlayerFrame(g.Player.Rect()); gold > 0 {
		g.Player.Gold += gold
		g.ShowMessage(fmt.Sprintf("Picked up %d gold! Total: %d", gold, g.Player.Gold))
	}

	for _, ev := range g.Session.DrainEvents() {
		g.GameHUD.HandleEvent(ev)
	}
	g.GameHUD.Update(dt)

	g.updateMessages(dt)
	return nil
}

// handleInput maps keys to movement, attacks, and track switching.
func (g *Game) handleInput() {
	g.Player.MovingLeft = g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft)
	g.Player.MovingRight = g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight)

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) || g.InputMgr.IsKeyJustPressed(render.KeyW) {
		g.Player.Jump()
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyJ) {
		g.handleAttack()
	}

	// Track hot-swap for testing different tempos.
	if g.InputMgr.IsKeyJustPressed(render.Key1) && len(g.Cfg.Tracks) > 0 {
		g.playTrack(g.Cfg.Tracks[0].Name)
	}
	if g.InputMgr.IsKeyJustPressed(render.Key2) && len(g.Cfg.Tracks) > 1 {
		g.playTrack(g.Cfg.Tracks[1].Name)
	}
}

// attackDirection derives the attack variant from the held movement keys:
// down beats forward, forward requires movement, neutral otherwise.
func (g *Game) attackDirection() combat.Direction {
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		return combat.DirDown
	}
	if g.Player.MovingLeft || g.Player.MovingRight {
		return combat.DirForward
	}
	return combat.DirNeutral
}

// handleAttack resolves one attack press through the session and applies
// it to every enemy inside the swing's hitbox.
func (g *Game) handleAttack() {
	dir := g.attackDirection()
	res := g.Session.OnAttackPressed(dir, g.Player.BaseDamage())

	hitbox := g.Player.AttackHitbox(dir)
	for _, e := range g.Enemies {
		if e.Dead || !hitbox.Intersects(e.Rect()) {
			continue
		}
		fromLeft := g.Player.Rect().Center().X <= e.Rect().Center().X
		if e.TakeHit(res.Damage, res.KnockbackScale, fromLeft) {
			g.Session.OnEnemyDied(e.Rect().Center())
			g.ShowMessage(fmt.Sprintf("%s defeated!", e.Name))
		}
	}
}

// playTrack switches music, degrading to a silent metronome when the
// audio file is unavailable.
func (g *Game) playTrack(name string) {
	if err := g.Music.Play(name); err != nil {
		log.Printf("Warning: playing %s without audio: %v", name, err)
	}
	g.ShowMessage(fmt.Sprintf("Now playing: %s (%.0f BPM)", name, g.Music.CurrentBPM()))
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	log.Printf("Message: %s", text)
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}
