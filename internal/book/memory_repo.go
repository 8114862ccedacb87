package book

import (
	"context"
	"fmt"
	"strings"

	"bookshelf/internal/entity"
)

// MemoryRepository keeps books in insertion order in process memory, up to a
// fixed capacity. It is not safe for concurrent use.
type MemoryRepository struct {
	books    []entity.Book
	capacity int
	nextID   int
}

// NewMemoryRepository constructs an empty repository. A capacity below one
// falls back to DefaultCapacity.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &MemoryRepository{
		books:    make([]entity.Book, 0, capacity),
		capacity: capacity,
		nextID:   1,
	}
}

// Insert appends a new book and assigns it the next ID.
func (r *MemoryRepository) Insert(_ context.Context, title, author string, category entity.Category) (entity.Book, error) {
	if len(r.books) >= r.capacity {
		return entity.Book{}, ErrStorageFull
	}
	if !category.Valid() {
		return entity.Book{}, fmt.Errorf("%w: %q", entity.ErrUnknownCategory, category)
	}

	b := entity.Book{
		ID:       r.nextID,
		Title:    strings.TrimSpace(title),
		Author:   strings.TrimSpace(author),
		Category: category,
	}
	r.nextID++
	r.books = append(r.books, b)
	return b, nil
}

// List returns all books in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]entity.Book, error) {
	out := make([]entity.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

// FindByID returns the book with the given ID.
func (r *MemoryRepository) FindByID(_ context.Context, id int) (entity.Book, error) {
	i := r.indexOf(id)
	if i < 0 {
		return entity.Book{}, notFound(id)
	}
	return r.books[i], nil
}

// FilterByCategory returns books whose category equals category exactly.
func (r *MemoryRepository) FilterByCategory(_ context.Context, category entity.Category) ([]entity.Book, error) {
	out := make([]entity.Book, 0)
	for _, b := range r.books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out, nil
}

// DeleteByID removes the book and closes the gap, keeping survivors in order.
func (r *MemoryRepository) DeleteByID(_ context.Context, id int) error {
	i := r.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	copy(r.books[i:], r.books[i+1:])
	r.books[len(r.books)-1] = entity.Book{}
	r.books = r.books[:len(r.books)-1]
	return nil
}

// Update applies the supplied fields of p to the book in place.
func (r *MemoryRepository) Update(_ context.Context, id int, p Patch) (entity.Book, error) {
	i := r.indexOf(id)
	if i < 0 {
		return entity.Book{}, notFound(id)
	}
	if p.Category != nil && !p.Category.Valid() {
		return entity.Book{}, fmt.Errorf("%w: %q", entity.ErrUnknownCategory, *p.Category)
	}

	b := r.books[i]
	if supplied(p.Title) {
		b.Title = strings.TrimSpace(*p.Title)
	}
	if supplied(p.Author) {
		b.Author = strings.TrimSpace(*p.Author)
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	r.books[i] = b
	return b, nil
}

// Len returns the number of stored books.
func (r *MemoryRepository) Len() int { return len(r.books) }

// Cap returns the maximum number of books the repository holds.
func (r *MemoryRepository) Cap() int { return r.capacity }

func (r *MemoryRepository) indexOf(id int) int {
	for i, b := range r.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int) error {
	return fmt.Errorf("book ID %d: %w", id, ErrNotFound)
}
