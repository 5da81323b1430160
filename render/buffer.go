package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one character of the composited frame
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Depth float64 // view distance of the nearest opaque write, +Inf when empty
}

var emptyCell = Cell{Rune: 0, Fg: RGBWhite, Bg: RGBBlack, Depth: math.Inf(1)}

// Buffer is a depth-tested compositor with touched tracking for the default background
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size returns width and height in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns a copy of the cell at x, y
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// ===== COMPOSITOR API =====

// Set composites a cell at view distance depth
// Writes behind an existing nearer cell are dropped; opaque writes (alpha 1, non-screen) claim the depth
// Returns whether anything was written
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha, depth float64) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	if depth > dst.Depth {
		return false
	}

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
		b.touched[idx] = true
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
	if alpha >= 1 && op != opScreen && op != opAdd {
		dst.Depth = depth
	}
	return true
}

// SetFgOnly writes rune and foreground above everything, preserving background
// Used for overlay text; does not participate in depth testing
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Depth = math.Inf(-1)
}

// SetBgOnly fills background while preserving existing rune and foreground
func (b *Buffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// WriteString writes s left to right from x, y and returns the column after the last rune
func (b *Buffer) WriteString(x, y int, s string, fg RGB) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg)
		x++
	}
	return x
}

// ===== OUTPUT =====

// Flush writes every cell to screen; untouched backgrounds become bg
func (b *Buffer) Flush(screen tcell.Screen, bg RGB) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			cellBg := c.Bg
			if !b.touched[y*b.width+x] {
				cellBg = bg
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(cellBg.Tcell())
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
