// Package hud turns session events and clock state into on-screen
// feedback: floating timing text above the player, the combo counter, the
// gold balance, and the beat approach circle. It consumes data from the
// core and draws through the render interfaces; nothing here mutates
// combat state.
package hud

import (
	"fmt"
	"image/color"

	"lunarforge.dev/shadowbeat/internal/render"
	"lunarforge.dev/shadowbeat/internal/rhythm"
	"lunarforge.dev/shadowbeat/internal/session"
)

const (
	// Floating feedback tuning: lifetime in seconds and upward drift in
	// px/s.
	feedbackTime  = 0.5
	feedbackDrift = 60.0

	// Beat approach circle geometry: the outer ring shrinks from
	// maxOuterRadius onto innerRadius over one beat cycle.
	innerRadius    = 25.0
	maxOuterRadius = 70.0
)

var (
	colorRing  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorFar   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorCombo = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// floatingText is one fading feedback line above the player.
type floatingText struct {
	text     string
	clr      color.RGBA
	timeLeft float64
	yOffset  float64
}

// HUD accumulates session events between frames and draws them.
type HUD struct {
	feedback   []floatingText
	comboCount int
	comboMult  float64
}

// New creates an empty HUD.
func New() *HUD {
	return &HUD{}
}

// HandleEvent ingests one session event.
func (h *HUD) HandleEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventTiming:
		h.feedback = append(h.feedback, floatingText{
			text:     ev.Label,
			clr:      ev.Color,
			timeLeft: feedbackTime,
		})
		if ev.Tier == rhythm.TierMiss {
			h.comboCount = 0
			h.comboMult = 1.0
		}
	case session.EventCombo:
		h.comboCount = ev.ComboCount
		h.comboMult = ev.ComboMult
	case session.EventGold:
		h.feedback = append(h.feedback, floatingText{
			text:     fmt.Sprintf("+%d gold", ev.Gold),
			clr:      color.RGBA{R: 255, G: 215, B: 120, A: 255},
			timeLeft: feedbackTime,
		})
	}
}

// Update fades and drifts the floating feedback.
func (h *HUD) Update(dt float64) {
	var active []floatingText
	for _, f := range h.feedback {
		f.timeLeft -= dt
		f.yOffset -= feedbackDrift * dt
		if f.timeLeft > 0 {
			active = append(active, f)
		}
	}
	h.feedback = active
}

// Draw renders the full HUD. playerX/playerY anchor the floating
// feedback above the player's head.
func (h *HUD) Draw(screen render.Image, r render.Renderer, sess *session.Session, playerX, playerY float64, gold int) {
	w, hgt := screen.Size()

	r.DrawText(screen, fmt.Sprintf("Gold: %d", gold), 15, 15, color.White)

	h.drawCombo(screen, r, sess, w)
	h.drawFeedback(screen, r, playerX, playerY)
	h.drawBeatCircle(screen, r, sess.Clock(), w, hgt)
}

func (h *HUD) drawCombo(screen render.Image, r render.Renderer, sess *session.Session, screenW int) {
	// Drop the display once the streak has timed out between exchanges.
	if sess.Combo().Expired(sess.Now()) || sess.Combo().Count() == 0 {
		return
	}
	if h.comboCount == 0 {
		return
	}

	comboText := fmt.Sprintf("%d HIT COMBO", h.comboCount)
	multText := fmt.Sprintf("x%.1f DAMAGE", h.comboMult)

	tw, _ := r.MeasureText(comboText)
	r.DrawText(screen, comboText, screenW-tw-20, 40, colorCombo)
	tw, _ = r.MeasureText(multText)
	r.DrawText(screen, multText, screenW-tw-20, 58, colorCombo)
}

func (h *HUD) drawFeedback(screen render.Image, r render.Renderer, playerX, playerY float64) {
	for i, f := range h.feedback {
		tw, _ := r.MeasureText(f.text)
		x := int(playerX) - tw/2
		y := int(playerY-40+f.yOffset) - i*18
		r.DrawText(screen, f.text, x, y, f.clr)
	}
}

// drawBeatCircle draws the approach-circle beat indicator: an outer ring
// shrinking onto a static inner ring, landing exactly on the beat. The
// ring color previews the tier an attack pressed now would grade.
func (h *HUD) drawBeatCircle(screen render.Image, r render.Renderer, clock *rhythm.Clock, screenW, screenH int) {
	period := clock.Period()
	if period <= 0 {
		return
	}

	cx := float32(screenW / 2)
	cy := float32(screenH - 90)

	progress := clock.Phase() / period
	outer := maxOuterRadius - (maxOuterRadius-innerRadius)*progress

	offset := clock.OffsetToNearestBeat()
	var ringColor color.RGBA
	if offset > rhythm.MissWindow {
		ringColor = colorFar
	} else {
		ringColor = rhythm.Evaluate(offset).Tier.Color()
	}

	r.StrokeCircle(screen, cx, cy, float32(outer), 4, ringColor)
	r.StrokeCircle(screen, cx, cy, innerRadius, 2, colorRing)
}
