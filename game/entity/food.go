package entity

import "glyph-snake/game/types"

// Food is the single consumable cell
type Food struct {
	Pos   types.Point
	Glyph rune
}
