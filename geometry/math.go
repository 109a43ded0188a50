// Package geometry converts between circle space and canvas cells.
package geometry

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns the direction of a step from a towards b: -1 or +1.
// Equal values step forward.
func Sign(a, b int) int {
	if a > b {
		return -1
	}
	return 1
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ChebyshevDistance is the number of steps an 8-connected walk needs between two cells.
func ChebyshevDistance(x1, y1, x2, y2 int) int {
	return Max(Abs(x2-x1), Abs(y2-y1))
}
