package book

import (
	"errors"
	"strings"

	"bookshelf/internal/entity"
)

var (
	// ErrNotFound is returned when no stored book has the requested ID.
	ErrNotFound = errors.New("book not found")
	// ErrStorageFull is returned when an insert is attempted at capacity.
	ErrStorageFull = errors.New("storage is full")
)

// DefaultCapacity is the number of books a shelf holds unless configured otherwise.
const DefaultCapacity = 5

// Patch carries the optional fields of an update. A nil or blank
// Title/Author leaves the stored value untouched.
type Patch struct {
	Title    *string
	Author   *string
	Category *entity.Category
}

// Empty reports whether applying p would change nothing.
func (p Patch) Empty() bool {
	return !supplied(p.Title) && !supplied(p.Author) && p.Category == nil
}

func supplied(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
