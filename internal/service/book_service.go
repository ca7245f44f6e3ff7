package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/internal/model"
	"github.com/shelftalk/shelftalk/internal/repository"
)

type BookService interface {
	List(ctx context.Context) ([]*model.Book, error)
	Get(ctx context.Context, isbn13 string) (*model.Book, error)
	// Upsert is the ingestion entrypoint: create-or-overwrite keyed on
	// ISBN-13. Reports whether the row was created.
	Upsert(ctx context.Context, b *model.Book) (bool, error)
}

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) List(ctx context.Context) ([]*model.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *bookService) Get(ctx context.Context, isbn13 string) (*model.Book, error) {
	b, err := s.bookRepo.Get(ctx, isbn13)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %q", ErrNotFound, isbn13)
		}
		return nil, err
	}
	return b, nil
}

func (s *bookService) Upsert(ctx context.Context, b *model.Book) (bool, error) {
	if len(b.ISBN13) != 13 {
		return false, fmt.Errorf("%w: isbn13 must be 13 characters", ErrValidation)
	}
	return s.bookRepo.Upsert(ctx, b)
}
