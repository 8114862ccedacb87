package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookshelf/internal/book"
	"bookshelf/internal/entity"

	"go.uber.org/zap"
)

func (l *Loop) addBook(ctx context.Context) error {
	if l.svc.Full() {
		l.println("Storage is full.")
		return nil
	}

	title, err := l.readLine("Enter Book Title : ")
	if err != nil {
		return err
	}
	author, err := l.readLine("Enter Author Name: ")
	if err != nil {
		return err
	}
	category, err := l.readCategory("Enter Category: ")
	if err != nil {
		return err
	}

	if _, err := l.svc.Add(ctx, title, author, category); err != nil {
		l.fail(err, 0)
		return nil
	}
	l.println("Book added successfully!")
	return nil
}

func (l *Loop) viewBooks(ctx context.Context) error {
	books, err := l.svc.List(ctx)
	if err != nil {
		l.fail(err, 0)
		return nil
	}
	if len(books) == 0 {
		l.println("No books available.")
		return nil
	}
	l.println("\n--- All Books ---")
	for _, b := range books {
		l.println(b.String())
	}
	return nil
}

func (l *Loop) searchByCategory(ctx context.Context) error {
	category, err := l.readCategory("Enter Category to search: ")
	if err != nil {
		return err
	}

	books, err := l.svc.ByCategory(ctx, category)
	if err != nil {
		l.fail(err, 0)
		return nil
	}
	if len(books) == 0 {
		l.println("None found.")
		return nil
	}
	l.println(fmt.Sprintf("\nBooks in %s:", category))
	for _, b := range books {
		l.println(b.String())
	}
	return nil
}

func (l *Loop) searchByID(ctx context.Context) error {
	if l.svc.Empty() {
		l.println("No books available.")
		return nil
	}

	id, err := l.readInt("Enter Book ID to search: ")
	if err != nil {
		return err
	}
	b, err := l.svc.Get(ctx, id)
	if err != nil {
		l.fail(err, id)
		return nil
	}
	l.println("Found: " + b.String())
	return nil
}

func (l *Loop) deleteBook(ctx context.Context) error {
	if l.svc.Empty() {
		l.println("No books to delete.")
		return nil
	}

	id, err := l.readInt("Enter Book ID to delete: ")
	if err != nil {
		return err
	}
	if err := l.svc.Delete(ctx, id); err != nil {
		l.fail(err, id)
		return nil
	}
	l.println("Book deleted.")
	return nil
}

func (l *Loop) updateBook(ctx context.Context) error {
	if l.svc.Empty() {
		l.println("No books to update.")
		return nil
	}

	id, err := l.readInt("Enter Book ID to update: ")
	if err != nil {
		return err
	}
	if _, err := l.svc.Get(ctx, id); err != nil {
		l.fail(err, id)
		return nil
	}

	var p book.Patch
	title, err := l.readLine("New Title (blank = keep): ")
	if err != nil {
		return err
	}
	p.Title = &title

	author, err := l.readLine("New Author (blank = keep): ")
	if err != nil {
		return err
	}
	p.Author = &author

	answer, err := l.readLine("Change Category? (y/N): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		c, err := l.readCategory("Enter new Category: ")
		if err != nil {
			return err
		}
		p.Category = &c
	}

	b, err := l.svc.Update(ctx, id, p)
	if err != nil {
		l.fail(err, id)
		return nil
	}
	l.println("Updated: " + b.String())
	return nil
}

// fail renders a service error as a single line.
func (l *Loop) fail(err error, id int) {
	switch {
	case errors.Is(err, book.ErrStorageFull):
		l.println("Storage is full.")
	case errors.Is(err, book.ErrNotFound):
		l.println(fmt.Sprintf("Book ID %d not found.", id))
	case errors.Is(err, entity.ErrUnknownCategory):
		l.println("Invalid category, try again.")
	default:
		l.log.Warn("command failed", zap.Error(err), zap.Int("id", id))
		l.println("Error: " + err.Error())
	}
}
