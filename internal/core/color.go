package core

// Color is a foreground color for a screen cell, given as an ANSI 256-color
// code ("0"-"255"). The empty string is the terminal default.
type Color string

// Colors used by the built-in views.
const (
	ColorDefault    Color = ""
	ColorRed        Color = "9"
	ColorBrightCyan Color = "14"
	ColorGray       Color = "245"
)
