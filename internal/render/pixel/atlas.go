// Package pixel draws a render.CellBuffer into an ebiten window.
package pixel

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spacehole-rogue/supertrek/internal/render"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds one 16x16 white glyph per code, tinted at draw time.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas builds the atlas. Printable ASCII comes from basicfont.Face7x13;
// box and block codes are drawn pixel by pixel.
func NewFontAtlas() *FontAtlas {
	atlasW := AtlasCols * GlyphWidth  // 256
	atlasH := AtlasRows * GlyphHeight // 256

	img := image.NewNRGBA(image.Rect(0, 0, atlasW, atlasH))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		col := code % AtlasCols
		row := code / AtlasCols
		cx := col * GlyphWidth
		cy := row * GlyphHeight

		if code >= 32 && code <= 126 {
			drawFontGlyph(img, face, cx, cy, rune(code))
			continue
		}
		if bc, ok := boxChars[byte(code)]; ok {
			drawBoxGlyph(img, cx, cy, bc)
			continue
		}
		drawBlockGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}

	for code := 0; code < 256; code++ {
		col := code % AtlasCols
		row := code / AtlasCols
		x := col * GlyphWidth
		y := row * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[code] = eimg.SubImage(rect).(*ebiten.Image)
	}

	return a
}

// Glyph returns the cached sub-image for code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph centres a 7x13 basicfont glyph in its 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

type boxLinks struct{ left, right, top, bottom bool }

var boxChars = map[byte]boxLinks{
	render.GlyphVLine:       {top: true, bottom: true},
	render.GlyphTeeLeft:     {left: true, top: true, bottom: true},
	render.GlyphTopRight:    {left: true, bottom: true},
	render.GlyphBottomLeft:  {right: true, top: true},
	render.GlyphTeeUp:       {left: true, right: true, top: true},
	render.GlyphTeeDown:     {left: true, right: true, bottom: true},
	render.GlyphTeeRight:    {right: true, top: true, bottom: true},
	render.GlyphHLine:       {left: true, right: true},
	render.GlyphCross:       {left: true, right: true, top: true, bottom: true},
	render.GlyphBottomRight: {left: true, top: true},
	render.GlyphTopLeft:     {right: true, bottom: true},
}

// drawBoxGlyph draws 2px lines from the cell centre to each linked edge.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, l boxLinks) {
	w := color.NRGBA{255, 255, 255, 255}
	cx := cellX + 7
	cy := cellY + 7

	if l.left {
		for x := cellX; x < cx+2; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if l.right {
		for x := cx; x < cellX+GlyphWidth; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if l.top {
		for y := cellY; y < cy+2; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
	if l.bottom {
		for y := cy; y < cellY+GlyphHeight; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
}

// drawBlockGlyph fills the pixels a shade or block code covers.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if blockCovers(code, x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}

func blockCovers(code byte, x, y int) bool {
	switch code {
	case render.GlyphLightShade:
		return (x+y)%4 == 0
	case render.GlyphMediumShade:
		return (x+y)%2 == 0
	case render.GlyphDarkShade:
		return (x+y)%4 != 0
	case render.GlyphFullBlock:
		return true
	case render.GlyphLowerHalf:
		return y >= GlyphHeight/2
	case render.GlyphLeftHalf:
		return x < GlyphWidth/2
	case render.GlyphRightHalf:
		return x >= GlyphWidth/2
	case render.GlyphUpperHalf:
		return y < GlyphHeight/2
	case render.GlyphSquare:
		return x >= 4 && x < 12 && y >= 4 && y < 12
	default:
		return false
	}
}
