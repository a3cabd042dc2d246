package life

import "lifebox/internal/core"

// Board implements Conway's Game of Life on a bounded grid. The outermost ring
// of cells is a permanently dead margin; only the interior is evaluated.
type Board struct {
	w, h int
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
	gen  uint64
}

var _ core.Sim = (*Board)(nil)

// New returns a board with the provided dimensions, margin included. Each
// dimension is raised to 3 so that at least one interior cell exists.
func New(w, h int) *Board {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	return &Board{w: w, h: h, cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Size returns the grid dimensions including the margin.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells exposes the current grid values.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Generation returns the number of steps applied since construction.
func (b *Board) Generation() uint64 { return b.gen }

// Interior reports whether (x, y) is a cell the rule may evaluate.
func (b *Board) Interior(x, y int) bool {
	return x >= 1 && x < b.w-1 && y >= 1 && y < b.h-1
}

// Alive reports whether the cell at (x, y) is alive.
func (b *Board) Alive(x, y int) bool { return b.cur.At(x, y) == 1 }

// SetCell writes an interior cell. Coordinates outside the interior are
// rejected and false is returned.
func (b *Board) SetCell(x, y int, alive bool) bool {
	if !b.Interior(x, y) {
		return false
	}
	var v uint8
	if alive {
		v = 1
	}
	b.cur.Cells()[b.cur.Index(x, y)] = v
	return true
}

// Clear kills every cell.
func (b *Board) Clear() {
	b.cur.Clear()
	b.nxt.Clear()
}

// Randomize clears the board and fills the interior from the seed.
func (b *Board) Randomize(seed int64) {
	b.Clear()
	rng := core.NewRNG(seed)
	cells := b.cur.Cells()
	for y := 1; y < b.h-1; y++ {
		for x := 1; x < b.w-1; x++ {
			if rng.Bool() {
				cells[y*b.w+x] = 1
			}
		}
	}
}

// Population counts the live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cur.Cells() {
		n += int(c)
	}
	return n
}

// LiveCells lists the live cells in row-major order.
func (b *Board) LiveCells() []core.Point {
	cells := b.cur.Cells()
	out := make([]core.Point, 0, b.Population())
	for y := 1; y < b.h-1; y++ {
		for x := 1; x < b.w-1; x++ {
			if cells[y*b.w+x] == 1 {
				out = append(out, core.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Load replaces the board with the given live cells. Points outside the
// interior are dropped.
func (b *Board) Load(points []core.Point) {
	b.Clear()
	for _, p := range points {
		b.SetCell(p.X, p.Y, true)
	}
}

// Step advances the simulation by one generation.
func (b *Board) Step() {
	w := b.w
	cur := b.cur.Cells()
	nxt := b.nxt.Cells()
	for y := 1; y < b.h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			neighbors := cur[idx-w-1] + cur[idx-w] + cur[idx-w+1] +
				cur[idx-1] + cur[idx+1] +
				cur[idx+w-1] + cur[idx+w] + cur[idx+w+1]
			nxt[idx] = next(cur[idx] == 1, int(neighbors))
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.nxt.Clear()
	b.gen++
}

func next(alive bool, neighbors int) uint8 {
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}
