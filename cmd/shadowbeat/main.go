package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"lunarforge.dev/shadowbeat/internal/config"
	"lunarforge.dev/shadowbeat/internal/game"
	"lunarforge.dev/shadowbeat/internal/music"
	ebitenrender "lunarforge.dev/shadowbeat/internal/render/ebiten"
	"lunarforge.dev/shadowbeat/internal/session"
)

func main() {
	configPath := "data/config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Warning: %v, using built-in defaults", err)
		cfg = config.Default()
	}

	// One combat session per run, owned by the frame loop.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess := session.New(rng)

	mus := music.NewManager(cfg.Tracks)
	mus.SetSongListener(sess.OnSongChanged)
	if err := mus.Init(); err != nil {
		log.Printf("Warning: audio unavailable: %v", err)
	}
	if cfg.DefaultTrack != "" {
		if err := mus.Play(cfg.DefaultTrack); err != nil {
			log.Printf("Warning: playing %s without audio: %v", cfg.DefaultTrack, err)
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, renderer, inputMgr, sess, mus)

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle(cfg.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
