package entity

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Glyph is the single character used to draw the mark on the console.
func (m Mark) Glyph() string {
	if m == Empty {
		return " "
	}
	return string(m)
}
