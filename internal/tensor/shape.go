package tensor

import "fmt"

// ShapeError reports a dimension incompatibility between operands.
// It is returned before any arithmetic takes place, so a caller never
// receives a silently truncated or broadcast result.
type ShapeError struct {
	Op   string // operation that detected the mismatch, e.g. "Dot"
	Want string // expected shape, e.g. "(4)" or "(4, 5)"
	Got  string // offending shape
}

// Error returns a human-readable description including both shapes.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

// shapeErr builds a *ShapeError for the given operation and shapes.
func shapeErr(op, want, got string) error {
	return &ShapeError{Op: op, Want: want, Got: got}
}

// VecShape formats a vector length as a shape string.
func VecShape(n int) string {
	return fmt.Sprintf("(%d)", n)
}

// MatShape formats matrix dimensions as a shape string.
func MatShape(rows, cols int) string {
	return fmt.Sprintf("(%d, %d)", rows, cols)
}
