// Package validation checks rendered canvases before they are printed.
package validation

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// OutputValidator checks that a serialized canvas is a solid block of
// Width x Height cells drawn only from Alphabet.
type OutputValidator struct {
	Width, Height int
	Alphabet      []rune
}

// ValidationError represents a validation error with location information.
// X is -1 when the error concerns a whole row, and X and Y are both -1
// when it concerns the whole output.
type ValidationError struct {
	X, Y    int
	Char    rune
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch {
	case e.Y < 0:
		return e.Message
	case e.X < 0:
		return fmt.Sprintf("row %d: %s", e.Y, e.Message)
	default:
		return fmt.Sprintf("(%d,%d) %q: %s", e.X, e.Y, e.Char, e.Message)
	}
}

// NewOutputValidator creates a validator for a width x height block
// containing only the given characters.
func NewOutputValidator(width, height int, alphabet ...rune) *OutputValidator {
	return &OutputValidator{
		Width:    width,
		Height:   height,
		Alphabet: alphabet,
	}
}

// Validate checks a rendered canvas and returns every problem found.
// A trailing newline is tolerated.
func (v *OutputValidator) Validate(out string) []ValidationError {
	var errs []ValidationError

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != v.Height {
		errs = append(errs, ValidationError{
			X: -1, Y: -1,
			Message: fmt.Sprintf("got %d rows, want %d", len(lines), v.Height),
		})
	}

	for y, line := range lines {
		if w := runewidth.StringWidth(line); w != v.Width || len([]rune(line)) != v.Width {
			errs = append(errs, ValidationError{
				X: -1, Y: y,
				Message: fmt.Sprintf("row is %d cells wide, want %d", w, v.Width),
			})
		}
		for x, r := range []rune(line) {
			if !v.allowed(r) {
				errs = append(errs, ValidationError{
					X: x, Y: y, Char: r,
					Message: "character not in alphabet",
				})
			}
		}
	}

	return errs
}

func (v *OutputValidator) allowed(r rune) bool {
	for _, a := range v.Alphabet {
		if a == r {
			return true
		}
	}
	return false
}
