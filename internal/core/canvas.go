package core

// Canvas is the drawing surface a game renders into. All coordinates are in
// logical pixels; the backend decides how they reach the display.
type Canvas interface {
	// Size returns the logical canvas dimensions.
	Size() (width, height int)
	Clear()
	FillRect(r Rect, c Color)
	// DrawHLine draws a horizontal line starting at (x, y).
	DrawHLine(x, y, length int, c Color)
	// DrawFrame outlines a rectangle.
	DrawFrame(r Rect, c Color)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)
	DrawTextCentered(y int, text string, c Color)
}

// Glyphs used when the canvas is projected onto a terminal.
const (
	FillChar   = '█'
	GroundChar = '═'
)

// ScaledCanvas projects a logical pixel canvas onto a character Screen.
// Positions are scaled independently on each axis; any non-empty rectangle
// covers at least one cell.
type ScaledCanvas struct {
	screen *Screen
	width  int
	height int
}

// NewScaledCanvas wraps screen as a width x height logical canvas.
func NewScaledCanvas(screen *Screen, width, height int) *ScaledCanvas {
	return &ScaledCanvas{
		screen: screen,
		width:  Max(width, 1),
		height: Max(height, 1),
	}
}

// Size returns the logical dimensions.
func (c *ScaledCanvas) Size() (int, int) {
	return c.width, c.height
}

// Clear blanks the underlying screen.
func (c *ScaledCanvas) Clear() {
	c.screen.Clear()
}

// col maps a logical x to a screen column.
func (c *ScaledCanvas) col(x int) int {
	return x * c.screen.Width() / c.width
}

// row maps a logical y to a screen row.
func (c *ScaledCanvas) row(y int) int {
	return y * c.screen.Height() / c.height
}

// cells converts a logical rectangle to screen cells.
func (c *ScaledCanvas) cells(r Rect) Rect {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1, y1 := c.col(r.Right()), c.row(r.Bottom())
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect fills the cells covered by r. Filling with ColorDefault erases.
func (c *ScaledCanvas) FillRect(r Rect, color Color) {
	fill := FillChar
	if color == ColorDefault {
		fill = ' '
	}
	c.screen.DrawRect(c.cells(r), fill, color)
}

// DrawHLine draws a ground-style line on the row containing y.
func (c *ScaledCanvas) DrawHLine(x, y, length int, color Color) {
	x0 := c.col(x)
	x1 := c.col(x + length)
	c.screen.DrawHLine(x0, c.row(y), Max(x1-x0, 1), GroundChar, color)
}

// DrawFrame outlines r with box-drawing characters.
func (c *ScaledCanvas) DrawFrame(r Rect, color Color) {
	c.screen.DrawBox(c.cells(r), color)
}

// DrawText writes text starting at the cell containing (x, y).
func (c *ScaledCanvas) DrawText(x, y int, text string, color Color) {
	c.screen.DrawText(c.col(x), c.row(y), text, color)
}

// DrawTextCentered centers text horizontally on the row containing y.
func (c *ScaledCanvas) DrawTextCentered(y int, text string, color Color) {
	c.screen.DrawTextCentered(c.row(y), text, color)
}

var _ Canvas = (*ScaledCanvas)(nil)
