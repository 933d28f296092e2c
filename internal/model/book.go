package model

import (
	"fmt"
	"time"
)

const (
	MaxTitleLength  = 100
	MaxAuthorLength = 50
	MinYear         = 1700
)

// Book represents a catalogued book.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBookRequest is used for adding a new book
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

type UpdateBookRequest struct {
	Title  *string `json:"title,omitempty"` // Pointers to allow partial updates
	Author *string `json:"author,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

// ValidationError reports a single field constraint violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the schema constraints before any write.
func (b *Book) Validate() error {
	if b.Title == "" {
		return &ValidationError{Field: "title", Message: "The book title is required"}
	}
	if len(b.Title) > MaxTitleLength {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("The book title may be at most %d characters long", MaxTitleLength)}
	}
	if b.Author == "" {
		return &ValidationError{Field: "author", Message: "The book author is required"}
	}
	if len(b.Author) > MaxAuthorLength {
		return &ValidationError{Field: "author", Message: fmt.Sprintf("The author name may be at most %d characters long", MaxAuthorLength)}
	}
	if b.Year < MinYear {
		return &ValidationError{Field: "year", Message: fmt.Sprintf("Year must be %d or later", MinYear)}
	}
	if currentYear := time.Now().Year(); b.Year > currentYear {
		return &ValidationError{Field: "year", Message: "Year cannot be in the future"}
	}
	return nil
}
