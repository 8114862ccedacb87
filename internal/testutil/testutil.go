package testutil

import (
	"context"
	"strings"
	"testing"

	"bookshelf/internal/book"
	"bookshelf/internal/entity"
)

// TestBook is a sample record for tests.
var TestBook = entity.Book{
	ID:       1,
	Title:    "Test Book Title",
	Author:   "Test Author",
	Category: entity.CategoryFiction,
}

// NewService builds a service over an in-memory shelf of the given capacity,
// optionally filled from book.SeedData.
func NewService(tb testing.TB, capacity int, seeded bool) *book.Service {
	tb.Helper()
	svc := book.NewService(book.NewMemoryRepository(capacity), nil)
	if seeded {
		if _, err := svc.Seed(context.Background(), book.SeedData()); err != nil {
			tb.Fatalf("seed shelf: %v", err)
		}
	}
	return svc
}

// Input joins lines into newline-terminated terminal input.
func Input(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
