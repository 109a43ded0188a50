package canvas

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// RuneWidth returns the display width of r in terminal cells.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// IsCellRune reports whether r can fill exactly one canvas cell:
// printable and one column wide.
func IsCellRune(r rune) bool {
	return unicode.IsPrint(r) && RuneWidth(r) == 1
}
