package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"book_library/internal/model"
	"book_library/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookService struct {
	books     []model.Book
	book      *model.Book
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeBookService) ListBooks(_ context.Context) ([]model.Book, error) {
	return f.books, f.listErr
}

func (f *fakeBookService) GetBookByID(_ context.Context, _ string) (*model.Book, error) {
	return f.book, f.getErr
}

func (f *fakeBookService) CreateBook(_ context.Context, _ model.CreateBookRequest) (*model.Book, error) {
	return f.book, f.createErr
}

func (f *fakeBookService) UpdateBookByID(_ context.Context, _ string, _ model.UpdateBookRequest) (*model.Book, error) {
	return f.book, f.updateErr
}

func (f *fakeBookService) DeleteBookByID(_ context.Context, _ string) (*model.Book, error) {
	return f.book, f.deleteErr
}

func setupBookRouter(svc service.BookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewBookHandler(svc).RegisterBookRoutes(r.Group("/"))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookHandler_GetAllBooks(t *testing.T) {
	svc := &fakeBookService{books: []model.Book{{ID: "b1", Title: "T", Author: "A", Year: 2000}}}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/books/get", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var books []model.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "T", books[0].Title)
}

func TestBookHandler_GetAllBooks_Empty(t *testing.T) {
	r := setupBookRouter(&fakeBookService{})

	w := doJSON(r, http.MethodGet, "/api/books/get", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestBookHandler_GetBookByID(t *testing.T) {
	svc := &fakeBookService{book: &model.Book{ID: "b1", Title: "T", Author: "A", Year: 2000}}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/books/get/b1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"T"`)
}

func TestBookHandler_GetBookByID_NotFound(t *testing.T) {
	svc := &fakeBookService{getErr: service.ErrBookNotFound}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/books/get/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Book not found")
}

func TestBookHandler_AddBook(t *testing.T) {
	svc := &fakeBookService{book: &model.Book{ID: "b1", Title: "T", Author: "A", Year: 2000}}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/books/post", `{"title":"T","author":"A","year":2000}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New book added successfully")
}

func TestBookHandler_AddBook_ValidationFailure(t *testing.T) {
	svc := &fakeBookService{createErr: &model.ValidationError{Field: "year", Message: "Year cannot be in the future"}}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/books/post", `{"title":"T","author":"A","year":3000}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Year cannot be in the future")
}

func TestBookHandler_AddBook_MalformedBody(t *testing.T) {
	r := setupBookRouter(&fakeBookService{})

	w := doJSON(r, http.MethodPost, "/api/books/post", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid book data")
}

func TestBookHandler_UpdateBookByID(t *testing.T) {
	svc := &fakeBookService{book: &model.Book{ID: "b1", Title: "T", Author: "A", Year: 2001}}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodPut, "/api/books/update/b1", `{"year":2001}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book updated successfully")
	assert.Contains(t, w.Body.String(), `"year":2001`)
}

func TestBookHandler_UpdateBookByID_NotFound(t *testing.T) {
	svc := &fakeBookService{updateErr: service.ErrBookNotFound}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodPut, "/api/books/update/ghost", `{"year":2001}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Book not found")
}

func TestBookHandler_DeleteBookByID(t *testing.T) {
	svc := &fakeBookService{book: &model.Book{ID: "b1", Title: "T", Author: "A", Year: 2000}}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodDelete, "/api/books/delete/b1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book deleted successfully")
	assert.Contains(t, w.Body.String(), `"title":"T"`)
}

func TestBookHandler_DeleteBookByID_NotFound(t *testing.T) {
	svc := &fakeBookService{deleteErr: service.ErrBookNotFound}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodDelete, "/api/books/delete/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_InternalErrorIsGeneric(t *testing.T) {
	svc := &fakeBookService{listErr: assert.AnError}
	r := setupBookRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/books/get", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
