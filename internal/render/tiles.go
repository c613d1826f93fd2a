package render

import "github.com/spacehole-rogue/supertrek/internal/game"

// CellVisuals returns how a sector cell looks on the minimap.
func CellVisuals(c game.Cell) (glyph byte, fg, bg uint8) {
	switch c {
	case game.CellShip:
		return 'E', ColorWhite, ColorBlue
	case game.CellEnemy:
		return 'K', ColorLightRed, ColorBlack
	case game.CellStarbase:
		return '!', ColorLightGreen, ColorBlack
	case game.CellStar:
		return '*', ColorYellow, ColorBlack
	default:
		return '.', ColorDarkGray, ColorBlack
	}
}

// SectorMapWidth and SectorMapHeight are the minimap size including its frame.
const (
	SectorMapWidth  = game.SectorSize*2 + 3
	SectorMapHeight = game.SectorSize + 2
)

// RenderSector draws the framed 8x8 sector grid with its top-left corner at (x, y).
// Each cell takes two columns so the map is roughly square.
func RenderSector(buf *CellBuffer, v game.View, x, y int) {
	frame := uint8(ColorLightGray)
	if v.Condition == "RED" {
		frame = ColorLightRed
	}
	buf.DrawBox(x, y, SectorMapWidth, SectorMapHeight, "", frame)

	for row := 0; row < game.SectorSize; row++ {
		for col := 0; col < game.SectorSize; col++ {
			px, py := x+2+col*2, y+1+row
			if v.ScannerDown {
				buf.Set(px, py, GlyphMediumShade, ColorDarkGray, ColorBlack)
				continue
			}
			glyph, fg, bg := CellVisuals(v.Sectors[row][col])
			buf.Set(px, py, glyph, fg, bg)
		}
	}
	if v.ScannerDown {
		buf.WriteString(x+4, y+SectorMapHeight/2, "OFFLINE", ColorYellow, ColorBlack)
	}
}
