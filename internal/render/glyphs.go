package render

// CP437 codes outside printable ASCII that the screen uses.
const (
	GlyphLightShade  byte = 176
	GlyphMediumShade byte = 177
	GlyphDarkShade   byte = 178
	GlyphVLine       byte = 179
	GlyphTeeLeft     byte = 180
	GlyphTopRight    byte = 191
	GlyphBottomLeft  byte = 192
	GlyphTeeUp       byte = 193
	GlyphTeeDown     byte = 194
	GlyphTeeRight    byte = 195
	GlyphHLine       byte = 196
	GlyphCross       byte = 197
	GlyphBottomRight byte = 217
	GlyphTopLeft     byte = 218
	GlyphFullBlock   byte = 219
	GlyphLowerHalf   byte = 220
	GlyphLeftHalf    byte = 221
	GlyphRightHalf   byte = 222
	GlyphUpperHalf   byte = 223
	GlyphSquare      byte = 254
)

var extendedRunes = map[byte]rune{
	GlyphLightShade:  '░',
	GlyphMediumShade: '▒',
	GlyphDarkShade:   '▓',
	GlyphVLine:       '│',
	GlyphTeeLeft:     '┤',
	GlyphTopRight:    '┐',
	GlyphBottomLeft:  '└',
	GlyphTeeUp:       '┴',
	GlyphTeeDown:     '┬',
	GlyphTeeRight:    '├',
	GlyphHLine:       '─',
	GlyphCross:       '┼',
	GlyphBottomRight: '┘',
	GlyphTopLeft:     '┌',
	GlyphFullBlock:   '█',
	GlyphLowerHalf:   '▄',
	GlyphLeftHalf:    '▌',
	GlyphRightHalf:   '▐',
	GlyphUpperHalf:   '▀',
	GlyphSquare:      '■',
}

// Rune maps a glyph code to the Unicode character a terminal should print.
// Codes without a picture come back as a space.
func Rune(code byte) rune {
	if code >= 32 && code <= 126 {
		return rune(code)
	}
	if r, ok := extendedRunes[code]; ok {
		return r
	}
	return ' '
}
