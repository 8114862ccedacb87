package book

import (
	"context"
	"errors"

	"bookshelf/internal/entity"

	"go.uber.org/zap"
)

// Service provides book-related business logic on top of a Repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// NewService creates a new book service. A nil logger disables logging.
func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Add stores a new book. Blank titles and authors are accepted.
func (s *Service) Add(ctx context.Context, title, author string, category entity.Category) (entity.Book, error) {
	b, err := s.repo.Insert(ctx, title, author, category)
	if err != nil {
		s.log.Debug("add rejected", zap.Error(err), zap.Int("size", s.repo.Len()))
		return entity.Book{}, err
	}
	if err := ValidateBook(b); err != nil {
		return entity.Book{}, err
	}
	s.log.Info("book added", zap.Int("id", b.ID), zap.Stringer("category", b.Category))
	return b, nil
}

// List returns every stored book in insertion order.
func (s *Service) List(ctx context.Context) ([]entity.Book, error) {
	return s.repo.List(ctx)
}

// Get returns the book with the given ID.
func (s *Service) Get(ctx context.Context, id int) (entity.Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ByCategory returns the books filed under category.
func (s *Service) ByCategory(ctx context.Context, category entity.Category) ([]entity.Book, error) {
	return s.repo.FilterByCategory(ctx, category)
}

// Delete removes the book with the given ID.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info("book deleted", zap.Int("id", id), zap.Int("size", s.repo.Len()))
	return nil
}

// Update applies p to the book with the given ID and returns the result.
func (s *Service) Update(ctx context.Context, id int, p Patch) (entity.Book, error) {
	b, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return entity.Book{}, err
	}
	if err := ValidateBook(b); err != nil {
		return entity.Book{}, err
	}
	if !p.Empty() {
		s.log.Info("book updated", zap.Int("id", b.ID), zap.Stringer("category", b.Category))
	}
	return b, nil
}

// Seed inserts sample books until they run out or the shelf is full.
// It returns how many were added.
func (s *Service) Seed(ctx context.Context, seed []entity.Book) (int, error) {
	n := 0
	for _, b := range seed {
		if _, err := s.Add(ctx, b.Title, b.Author, b.Category); err != nil {
			if errors.Is(err, ErrStorageFull) {
				break
			}
			return n, err
		}
		n++
	}
	return n, nil
}

// Empty reports whether the shelf holds no books.
func (s *Service) Empty() bool { return s.repo.Len() == 0 }

// Full reports whether another Add would fail with ErrStorageFull.
func (s *Service) Full() bool { return s.repo.Len() >= s.repo.Cap() }
