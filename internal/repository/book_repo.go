package repository

import (
	"context"
	"errors"
	"fmt"

	"book_library/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookRepository defines operations for book data
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id string) (*model.Book, error)
}

type bookRepository struct {
	db PgxIface
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db PgxIface) BookRepository {
	return &bookRepository{db: db}
}

// Create inserts a new book, assigning it a fresh ID. A title collision
// surfaces as ErrUniqueViolation.
func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	book.ID = uuid.NewString()
	sql := `INSERT INTO books (id, title, author, year, created_at)
            VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, sql, book.ID, book.Title, book.Author, book.Year, book.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// FindAll retrieves all books
func (r *bookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	sql := `SELECT id, title, author, year, created_at FROM books ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}
	return books, nil
}

// FindByID retrieves a book by its ID
func (r *bookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	b := &model.Book{}
	sql := `SELECT id, title, author, year, created_at FROM books WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find book by ID: %w", err)
	}
	return b, nil
}

// Update replaces the mutable fields of an existing book. Returns
// pgx.ErrNoRows if the book vanished between read and write.
func (r *bookRepository) Update(ctx context.Context, book *model.Book) error {
	sql := `UPDATE books SET title = $1, author = $2, year = $3 WHERE id = $4`
	cmdTag, err := r.db.Exec(ctx, sql, book.Title, book.Author, book.Year, book.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("failed to update book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a book and returns the record as it was before deletion.
// Returns nil, nil when the ID does not exist.
func (r *bookRepository) Delete(ctx context.Context, id string) (*model.Book, error) {
	b := &model.Book{}
	sql := `DELETE FROM books WHERE id = $1 RETURNING id, title, author, year, created_at`
	err := r.db.QueryRow(ctx, sql, id).Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}
	return b, nil
}
