package types

// Color is one of the 16 VGA text-mode colors
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [...]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgray",
	"darkgray", "lightblue", "lightgreen", "lightcyan", "lightred", "pink", "yellow", "white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor looks a color up by name
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return Black, false
}

// Style is a foreground/background pair
type Style struct {
	Fg, Bg Color
}

// Display is the character display the game draws onto.
// Implementations are infallible from the game's point of view.
type Display interface {
	DrawCell(glyph rune, x, y int, fg, bg Color)
	DrawNumber(value, x, y int, fg, bg Color)
}

// Background is the glyph used to clear a cell
const Background = ' '

// IsDrawable reports whether r can be shown in a text-mode cell
func IsDrawable(r rune) bool {
	return r >= ' ' && r <= '~'
}

// KeyCode identifies a non-character key
type KeyCode int

const (
	KeyOther KeyCode = iota
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
)

// KeyEvent is a decoded key: either a raw key code or a literal character
type KeyEvent struct {
	Code   KeyCode
	Char   rune
	IsChar bool
}

// RawKey builds a key event for a non-character key
func RawKey(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// CharKey builds a key event for a literal character
func CharKey(r rune) KeyEvent {
	return KeyEvent{Char: r, IsChar: true}
}

// Heading maps an arrow key to the heading it requests
func (k KeyEvent) Heading() (Heading, bool) {
	if k.IsChar {
		return None, false
	}
	switch k.Code {
	case ArrowUp:
		return Up, true
	case ArrowDown:
		return Down, true
	case ArrowLeft:
		return Left, true
	case ArrowRight:
		return Right, true
	}
	return None, false
}
