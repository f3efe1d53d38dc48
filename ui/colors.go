package ui

import (
	"github.com/gdamore/tcell/v2"

	"glyph-snake/game/types"
)

// vga maps the text-mode palette onto the 16 standard terminal colors
var vga = [...]tcell.Color{
	types.Black:      tcell.ColorBlack,
	types.Blue:       tcell.ColorNavy,
	types.Green:      tcell.ColorGreen,
	types.Cyan:       tcell.ColorTeal,
	types.Red:        tcell.ColorMaroon,
	types.Magenta:    tcell.ColorPurple,
	types.Brown:      tcell.ColorOlive,
	types.LightGray:  tcell.ColorSilver,
	types.DarkGray:   tcell.ColorGray,
	types.LightBlue:  tcell.ColorBlue,
	types.LightGreen: tcell.ColorLime,
	types.LightCyan:  tcell.ColorAqua,
	types.LightRed:   tcell.ColorRed,
	types.Pink:       tcell.ColorFuchsia,
	types.Yellow:     tcell.ColorYellow,
	types.White:      tcell.ColorWhite,
}

// TerminalColor converts a palette color to a tcell color
func TerminalColor(c types.Color) tcell.Color {
	if int(c) < len(vga) {
		return vga[c]
	}
	return tcell.ColorDefault
}

// RGB is a palette color as 8-bit channels
type RGB struct {
	R, G, B uint8
}

// rgb holds the classic VGA DAC values
var rgb = [...]RGB{
	types.Black:      {0x00, 0x00, 0x00},
	types.Blue:       {0x00, 0x00, 0xAA},
	types.Green:      {0x00, 0xAA, 0x00},
	types.Cyan:       {0x00, 0xAA, 0xAA},
	types.Red:        {0xAA, 0x00, 0x00},
	types.Magenta:    {0xAA, 0x00, 0xAA},
	types.Brown:      {0xAA, 0x55, 0x00},
	types.LightGray:  {0xAA, 0xAA, 0xAA},
	types.DarkGray:   {0x55, 0x55, 0x55},
	types.LightBlue:  {0x55, 0x55, 0xFF},
	types.LightGreen: {0x55, 0xFF, 0x55},
	types.LightCyan:  {0x55, 0xFF, 0xFF},
	types.LightRed:   {0xFF, 0x55, 0x55},
	types.Pink:       {0xFF, 0x55, 0xFF},
	types.Yellow:     {0xFF, 0xFF, 0x55},
	types.White:      {0xFF, 0xFF, 0xFF},
}

// ColorRGB converts a palette color to its RGB value
func ColorRGB(c types.Color) RGB {
	if int(c) < len(rgb) {
		return rgb[c]
	}
	return RGB{}
}
