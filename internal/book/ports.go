package book

import (
	"context"

	"bookshelf/internal/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks bookshelf/internal/book Repository

// Repository defines the contract for book storage.
type Repository interface {
	Insert(ctx context.Context, title, author string, category entity.Category) (entity.Book, error)
	List(ctx context.Context) ([]entity.Book, error)
	FindByID(ctx context.Context, id int) (entity.Book, error)
	FilterByCategory(ctx context.Context, category entity.Category) ([]entity.Book, error)
	DeleteByID(ctx context.Context, id int) error
	Update(ctx context.Context, id int, p Patch) (entity.Book, error)
	Len() int
	Cap() int
}
