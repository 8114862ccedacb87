package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when text does not name a Category.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the closed set of shelves a book can belong to.
type Category string

const (
	CategoryFiction    Category = "FICTION"
	CategoryScience    Category = "SCIENCE"
	CategoryHistory    Category = "HISTORY"
	CategoryTechnology Category = "TECHNOLOGY"
	CategoryComics     Category = "COMICS"
)

var categories = []Category{
	CategoryFiction,
	CategoryScience,
	CategoryHistory,
	CategoryTechnology,
	CategoryComics,
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches s against the canonical names, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is exactly one of the canonical names.
func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// Book is a single shelf record. ID is assigned by the store.
type Book struct {
	ID       int      `json:"id" validate:"gt=0"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Category Category `json:"category" validate:"category"`
}

// String renders b as "[id] title by author (CATEGORY)".
func (b Book) String() string {
	return fmt.Sprintf("[%d] %s by %s (%s)", b.ID, b.Title, b.Author, b.Category)
}
