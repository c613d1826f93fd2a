package main

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/supertrek/internal/app"
	"github.com/spacehole-rogue/supertrek/internal/frontend"
	"github.com/spacehole-rogue/supertrek/internal/render"
	"github.com/spacehole-rogue/supertrek/internal/render/pixel"
	"github.com/spacehole-rogue/supertrek/internal/session"
)

const (
	cellWidth    = 16
	cellHeight   = 16
	screenWidth  = render.ScreenCols * cellWidth  // 1280
	screenHeight = render.ScreenRows * cellHeight // 720
)

// Game is the Ebitengine game struct. It owns rendering and input;
// the engine runs behind the session.
type Game struct {
	renderer *pixel.GridRenderer
	buffer   *render.CellBuffer
	session  *session.Session
	ctrl     *frontend.Controller
	runes    []rune
	drawn    uint64
}

func NewGame(s *session.Session) *Game {
	atlas := pixel.NewFontAtlas()
	g := &Game{
		renderer: pixel.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(render.ScreenCols, render.ScreenRows),
		session:  s,
		ctrl:     frontend.NewController(s),
	}
	g.drawScreen()
	return g
}

func (g *Game) drawScreen() {
	g.drawn = g.session.Revision()
	render.DrawScreen(g.buffer, g.ctrl.Frame())
}

func (g *Game) Update() error {
	select {
	case <-g.session.Done():
		return ebiten.Termination
	default:
	}

	dirty := false
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.ctrl.Escape() {
			return ebiten.Termination
		}
		dirty = true
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		g.ctrl.Type(r)
		dirty = true
	}
	if repeating(ebiten.KeyBackspace) {
		g.ctrl.Backspace()
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.ctrl.Up()
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.ctrl.Down()
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.ctrl.Enter()
		dirty = true
	}

	if dirty || g.session.Revision() != g.drawn {
		g.drawScreen()
	}
	return nil
}

// repeating reports a key press plus key repeat after a short hold.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ctx := context.Background()
	a, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	s := a.NewSession(render.ConsoleWidth)
	s.Start(ctx)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(frontend.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(NewGame(s))
	if err := s.Close(ctx); err != nil {
		a.Logger.Error("close session", "error", err)
	}
	if err := a.Close(); err != nil {
		log.Printf("close: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
