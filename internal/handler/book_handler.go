package handler

import (
	"errors"
	"log"
	"net/http"

	"book_library/internal/model"
	"book_library/internal/service"

	"github.com/gin-gonic/gin"
)

// BookHandler handles book related requests
type BookHandler struct {
	service service.BookService
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(s service.BookService) *BookHandler {
	return &BookHandler{service: s}
}

func (h *BookHandler) GetAllBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching books: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if books == nil {
		books = []model.Book{}
	}
	c.JSON(http.StatusOK, books)
}

func (h *BookHandler) GetBookByID(c *gin.Context) {
	book, err := h.service.GetBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		log.Printf("Error fetching book: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) AddBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book data"})
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
			return
		}
		log.Printf("Error creating book: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "New book added successfully",
		"data":    book,
	})
}

func (h *BookHandler) UpdateBookByID(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book data"})
		return
	}

	book, err := h.service.UpdateBookByID(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var vErr *model.ValidationError
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
		default:
			log.Printf("Error updating book: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book updated successfully",
		"data":    book,
	})
}

func (h *BookHandler) DeleteBookByID(c *gin.Context) {
	book, err := h.service.DeleteBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		log.Printf("Error deleting book: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book deleted successfully",
		"data":    book,
	})
}

// RegisterBookRoutes registers book routes
func (h *BookHandler) RegisterBookRoutes(rg *gin.RouterGroup) {
	bookGroup := rg.Group("/api/books")
	{
		bookGroup.GET("/get", h.GetAllBooks)
		bookGroup.GET("/get/:id", h.GetBookByID)
		bookGroup.POST("/post", h.AddBook)
		bookGroup.PUT("/update/:id", h.UpdateBookByID)
		bookGroup.DELETE("/delete/:id", h.DeleteBookByID)
	}
}
