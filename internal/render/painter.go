//go:build ebiten

package render

import (
	"image/color"

	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws the interior of a bordered binary grid as a scaled image.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte

	on, off color.Color
}

// NewGridPainter allocates a painter for a grid of the given size, margin
// included.
func NewGridPainter(size core.Size, on, off color.Color) *GridPainter {
	iw, ih := size.W-2, size.H-2
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	return &GridPainter{
		size: size,
		img:  ebiten.NewImage(iw, ih),
		buf:  make([]byte, 4*iw*ih),
		on:   on,
		off:  off,
	}
}

// Blit uploads the current generation of sim into the painter image and draws
// it with each cell scale pixels wide. A sim of another size is skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	if !fillSimRGBA(gp.buf, gp.size, sim, gp.on, gp.off) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
