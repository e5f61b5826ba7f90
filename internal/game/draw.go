package game

import (
	"image/color"

	"lunarforge.dev/shadowbeat/internal/loot"
	"lunarforge.dev/shadowbeat/internal/render"
)

// Palette for the shape-based placeholder art.
var (
	colorSky    = color.RGBA{R: 30, G: 30, B: 80, A: 255}
	colorGround = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	colorPlayer = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorEnemy  = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	colorCoin   = color.RGBA{R: 255, G: 215, B: 120, A: 255}
	colorHPBack = color.RGBA{R: 100, G: 0, B: 0, A: 255}
	colorHPFill = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colorSky)

	g.drawGround(screen)
	g.drawCoins(screen)
	g.drawEnemies(screen)
	g.drawPlayer(screen)
	g.drawMessages(screen)

	playerRect := g.Player.Rect()
	g.GameHUD.Draw(screen, g.Renderer, g.Session, playerRect.Center().X, playerRect.Y, g.Player.Gold)
}

func (g *Game) drawGround(screen render.Image) {
	w, h := screen.Size()
	g.Renderer.FillRect(screen, 0, float32(g.Cfg.GroundY), float32(w), float32(float64(h)-g.Cfg.GroundY), colorGround)
}

func (g *Game) drawCoins(screen render.Image) {
	for _, c := range g.Session.Coins().Coins() {
		g.Renderer.FillCircle(screen, float32(c.Pos.X), float32(c.VisualY()), float32(loot.CoinSize/2), colorCoin)
	}
}

func (g *Game) drawEnemies(screen render.Image) {
	for _, e := range g.Enemies {
		r := e.Rect()
		g.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorEnemy)

		if e.Dead {
			continue
		}
		// HP bar above the enemy
		ratio := e.HP / e.MaxHP
		g.Renderer.FillRect(screen, float32(r.X), float32(r.Y-10), float32(r.W), 5, colorHPBack)
		g.Renderer.FillRect(screen, float32(r.X), float32(r.Y-10), float32(r.W*ratio), 5, colorHPFill)
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	r := g.Player.Rect()
	g.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorPlayer)
}

func (g *Game) drawMessages(screen render.Image) {
	_, h := screen.Size()
	y := h - 30
	for i := len(g.Messages) - 1; i >= 0; i-- {
		g.Renderer.DrawText(screen, g.Messages[i].Text, 15, y, color.White)
		y -= 18
	}
}
