package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"book_library/internal/model"
	"book_library/internal/repository"

	"github.com/jackc/pgx/v5"
)

var ErrBookNotFound = errors.New("book not found")

// errDuplicateTitle maps a title collision onto the same validation shape as
// the other field constraints.
func errDuplicateTitle() error {
	return &model.ValidationError{Field: "title", Message: "A book with this title already exists"}
}

// BookService defines operations for books
type BookService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBookByID(ctx context.Context, id string) (*model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	UpdateBookByID(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBookByID(ctx context.Context, id string) (*model.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

// NewBookService creates a new BookService
func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books from repo: %w", err)
	}
	return books, nil
}

func (s *bookService) GetBookByID(ctx context.Context, id string) (*model.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find book by ID: %w", err)
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *bookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	book := &model.Book{
		Title:     req.Title,
		Author:    req.Author,
		Year:      req.Year,
		CreatedAt: time.Now(),
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, book); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, errDuplicateTitle()
		}
		return nil, fmt.Errorf("failed to create book in repo: %w", err)
	}
	return book, nil
}

func (s *bookService) UpdateBookByID(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find book for update: %w", err)
	}
	if existing == nil {
		return nil, ErrBookNotFound
	}

	// Apply partial updates
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Author != nil {
		existing.Author = *req.Author
	}
	if req.Year != nil {
		existing.Year = *req.Year
	}

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, errDuplicateTitle()
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book in repo: %w", err)
	}
	return existing, nil
}

func (s *bookService) DeleteBookByID(ctx context.Context, id string) (*model.Book, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete book in repo: %w", err)
	}
	if deleted == nil {
		return nil, ErrBookNotFound
	}
	return deleted, nil
}
