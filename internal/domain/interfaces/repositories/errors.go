package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a position does not address a stored recipe
	ErrIndexOutOfRange = errors.New("recipe index out of range")

	// ErrNotFound is returned when a recipe to delete matches no stored recipe
	ErrNotFound = errors.New("recipe not found")

	// ErrUnencodable is returned when a recipe cannot be written in a form that reads back
	ErrUnencodable = errors.New("recipe cannot be encoded")
)

// FormatError reports a line of the recipe file that violates the file grammar
type FormatError struct {
	Line    int
	Content string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid recipe file format at line %d (%q): %s", e.Line, e.Content, e.Reason)
}
