package render

import (
	"image/color"

	"lifebox/internal/core"
)

// fillInteriorRGBA converts binary cell data (0/1) of a w*h grid into RGBA
// pixels in buf, leaving out the one-cell margin. buf must hold
// 4*(w-2)*(h-2) bytes.
func fillInteriorRGBA(buf []byte, cells []uint8, w, h int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	base := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if cells[y*w+x] != 0 {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			} else {
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
			base += 4
		}
	}
}

// fillSimRGBA renders the interior of sim into buf when sim has the size the
// buffer was allocated for. It reports whether buf was written.
func fillSimRGBA(buf []byte, size core.Size, sim core.Sim, on, off color.Color) bool {
	cells := sim.Cells()
	if sim.Size() != size || len(cells) != size.W*size.H {
		return false
	}
	fillInteriorRGBA(buf, cells, size.W, size.H, on, off)
	return true
}
