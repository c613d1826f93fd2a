// Package render lays the game screen out as a grid of CP437 cells. The pixel
// and terminal front-ends both draw the same CellBuffer.
package render

// Cell is one character position on screen.
type Cell struct {
	Glyph byte  // CP437 code
	FG    uint8 // palette index
	BG    uint8 // palette index
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to a space on black.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
}

// WriteString writes s from (x, y), one rune per cell. Runes outside Latin-1 show as '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	b.WriteClipped(x, y, b.Cols, s, fg, bg)
}

// WriteClipped is WriteString limited to width cells.
func (b *CellBuffer) WriteClipped(x, y, width int, s string, fg, bg uint8) {
	n := 0
	for _, ch := range s {
		if n >= width {
			return
		}
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+n, y, byte(ch), fg, bg)
		n++
	}
}

// Fill paints a w by h rectangle.
func (b *CellBuffer) Fill(x, y, w, h int, glyph byte, fg, bg uint8) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, glyph, fg, bg)
		}
	}
}

// DrawBox outlines a w by h rectangle with single lines and an optional title.
func (b *CellBuffer) DrawBox(x, y, w, h int, title string, fg uint8) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		b.Set(col, y, GlyphHLine, fg, ColorBlack)
		b.Set(col, bottom, GlyphHLine, fg, ColorBlack)
	}
	for row := y + 1; row < bottom; row++ {
		b.Set(x, row, GlyphVLine, fg, ColorBlack)
		b.Set(right, row, GlyphVLine, fg, ColorBlack)
	}
	b.Set(x, y, GlyphTopLeft, fg, ColorBlack)
	b.Set(right, y, GlyphTopRight, fg, ColorBlack)
	b.Set(x, bottom, GlyphBottomLeft, fg, ColorBlack)
	b.Set(right, bottom, GlyphBottomRight, fg, ColorBlack)
	if title != "" {
		b.WriteClipped(x+2, y, w-4, " "+title+" ", ColorLightCyan, ColorBlack)
	}
}
