//go:build ebiten

package ui

import (
	"lifebox/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status, controls and save slot text over the board.
type HUD struct{}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw renders the HUD for the provided view.
func (h *HUD) Draw(screen *ebiten.Image, v sandbox.View) {
	if h == nil {
		return
	}
	b := screen.Bounds()
	for _, l := range Lines(v, b.Dx(), b.Dy()) {
		text.Draw(screen, l.Text, basicfont.Face7x13, l.X, l.Y, l.Color)
	}
}
