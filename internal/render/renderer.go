// Package render abstracts the graphics backend behind small interfaces
// so game logic and the HUD never import the engine directly. The only
// backend today is ebiten (render/ebiten); tests drive game logic without
// any backend at all.
package render

import "image/color"

// Renderer draws the primitive shapes the game is built from. The game is
// deliberately shape-based - rectangles for actors, circles for the beat
// indicator - so the whole renderer stays this small.
type Renderer interface {
	// Shape operations
	FillRect(dst Image, x, y, w, h float32, clr color.Color)
	StrokeRect(dst Image, x, y, w, h float32, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image is a renderable surface.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	Clear()
	Dispose()
}

// InputManager handles keyboard input.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyA Key = iota
	KeyD
	KeyS
	KeyW
	KeyJ // Attack key
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	KeySpace
	KeyEscape
	Key1 // Track select
	Key2
)

// Game is implemented by the main game struct and driven by the engine.
type Game interface {
	// Update advances game logic one tick (typically 60 per second).
	Update() error

	// Draw renders the current frame onto screen.
	Draw(screen Image)

	// Layout maps the window size to the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks, running the loop until the game ends.
	RunGame(game Game) error
}
