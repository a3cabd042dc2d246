//go:build ebiten

package app

import (
	"image/color"
	"sync/atomic"

	"lifebox/internal/render"
	"lifebox/internal/sandbox"
	"lifebox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// idleTPS is the frame rate used while paused and not painting.
const idleTPS = 10

var keyCommands = []struct {
	key ebiten.Key
	cmd sandbox.Command
}{
	{ebiten.KeyEscape, sandbox.CmdQuit},
	{ebiten.KeyE, sandbox.CmdClear},
	{ebiten.KeyF, sandbox.CmdRandomize},
	{ebiten.KeySpace, sandbox.CmdTogglePause},
	{ebiten.KeyR, sandbox.CmdResetSpeed},
	{ebiten.KeyArrowUp, sandbox.CmdSpeedUp},
	{ebiten.KeyArrowDown, sandbox.CmdSlowDown},
	{ebiten.KeyS, sandbox.CmdArmBind},
	{ebiten.KeyD, sandbox.CmdArmDelete},
	{ebiten.KeyDigit1, sandbox.CmdSlot1},
	{ebiten.KeyDigit2, sandbox.CmdSlot2},
	{ebiten.KeyDigit3, sandbox.CmdSlot3},
	{ebiten.KeyDigit4, sandbox.CmdSlot4},
	{ebiten.KeyDigit5, sandbox.CmdSlot5},
	{ebiten.KeyDigit6, sandbox.CmdSlot6},
	{ebiten.KeyDigit7, sandbox.CmdSlot7},
	{ebiten.KeyDigit8, sandbox.CmdSlot8},
	{ebiten.KeyDigit9, sandbox.CmdSlot9},
}

// Game adapts the sandbox controller to the ebiten.Game interface.
type Game struct {
	ctl     *sandbox.Controller
	painter *render.GridPainter
	hud     *ui.HUD

	width, height int
	cell          int
	tps           int

	painting bool
	quit     atomic.Bool
}

// New constructs a Game for the provided controller.
func New(ctl *sandbox.Controller, cfg *Config) *Game {
	return &Game{
		ctl:     ctl,
		painter: render.NewGridPainter(ctl.Board().Size(), color.RGBA{R: 0, G: 160, B: 255, A: 255}, color.RGBA{R: 24, G: 24, B: 28, A: 255}),
		hud:     ui.NewHUD(),
		width:   cfg.ViewportW,
		height:  cfg.ViewportH,
		cell:    cfg.CellPixels(),
		tps:     cfg.TPS,
	}
}

// RequestQuit asks the game loop to stop at the next update. It is safe to
// call from another goroutine.
func (g *Game) RequestQuit() { g.quit.Store(true) }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			// Rejected commands leave the sandbox unchanged.
			_ = g.ctl.Handle(kc.cmd)
		}
	}
	if g.ctl.Quitting() || g.quit.Load() {
		return ebiten.Termination
	}

	g.paint()
	_ = g.ctl.Handle(sandbox.Tick{})
	g.throttle()
	return nil
}

func (g *Game) paint() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	g.painting = (left || right) && g.ctl.Paused()
	if !g.painting {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := sandbox.CellAt(mx, my, g.cell)
	_ = g.ctl.Handle(sandbox.Paint{X: x, Y: y, Alive: left})
}

func (g *Game) throttle() {
	tps := g.tps
	if g.ctl.Paused() && !g.painting && tps > idleTPS {
		tps = idleTPS
	}
	if ebiten.TPS() != tps {
		ebiten.SetTPS(tps)
	}
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.ctl.Board(), g.cell)
	g.hud.Draw(screen, g.ctl.View())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
