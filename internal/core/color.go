package core

// Color is a logical palette entry. Backends map it to ANSI codes or RGBA.
type Color uint8

// Palette used by the runner. ColorDefault is the background: filling with it
// erases whatever was drawn underneath.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorBlue
	ColorRed
	ColorGray
)
