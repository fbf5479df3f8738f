package desktop

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// background is the window clear color.
var background = color.RGBA{0x10, 0x12, 0x18, 0xff}

// palette maps core colors to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: background,
	core.ColorWhite:   {0xe8, 0xe8, 0xe8, 0xff},
	core.ColorGreen:   {0x4c, 0xc9, 0x5a, 0xff},
	core.ColorBlue:    {0x4a, 0x8c, 0xf0, 0xff},
	core.ColorRed:     {0xf0, 0x4a, 0x4a, 0xff},
	core.ColorGray:    {0x8a, 0x8f, 0x99, 0xff},
}

// rgba returns the screen color for c, falling back to white.
func rgba(c core.Color) color.RGBA {
	if col, ok := palette[c]; ok {
		return col
	}
	return palette[core.ColorWhite]
}

// face is the HUD font.
var face = text.NewGoXFace(basicfont.Face7x13)

// Canvas draws logical pixels 1:1 onto an ebiten image.
type Canvas struct {
	dst    *ebiten.Image
	width  int
	height int
}

// NewCanvas creates a width x height canvas. Target sets the image to draw on.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// Target sets the image that subsequent draws go to.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the logical dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills the image with the background color.
func (c *Canvas) Clear() {
	c.dst.Fill(background)
}

// FillRect fills r with color.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

// DrawHLine draws a two pixel line starting at (x, y).
func (c *Canvas) DrawHLine(x, y, length int, col core.Color) {
	vector.StrokeLine(c.dst, float32(x), float32(y), float32(x+length), float32(y), 2, rgba(col), false)
}

// DrawFrame outlines r.
func (c *Canvas) DrawFrame(r core.Rect, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, rgba(col), false)
}

// DrawText draws s with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(col))
	text.Draw(c.dst, s, face, op)
}

// DrawTextCentered centers s horizontally with its top at y.
func (c *Canvas) DrawTextCentered(y int, s string, col core.Color) {
	c.DrawText((c.width-textWidth(s))/2, y, s, col)
}

// textWidth returns the rendered width of s in pixels.
func textWidth(s string) int {
	return int(math.Ceil(text.Advance(s, face)))
}

var _ core.Canvas = (*Canvas)(nil)
