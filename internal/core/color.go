package core

// Color is a foreground color for a screen cell.
// The value is a lipgloss color string: an ANSI index ("208") or a hex triplet ("#f97316").
// The zero value means the terminal default.
type Color string

// Colors shared by the game renderer.
const (
	ColorDefault Color = ""
	ColorGray    Color = "245"
	ColorWhite   Color = "15"
	ColorIndigo  Color = "#4f46e5"
	ColorPink    Color = "#ec4899"
	ColorGreen   Color = "#16a34a"
	ColorRed     Color = "#ef4444"
	ColorApple   Color = "#22c55e"
	ColorGold    Color = "#facc15"
)

// IsDefault reports whether the color leaves the terminal foreground unchanged.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
