package handlers

import (
	"net/http"

	"bookclub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookHandler handles HTTP requests for books
type BookHandler struct {
	bookService service.BookServiceInterface
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService service.BookServiceInterface) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// ListBooks lists every book, newest first
// @Summary List books
// @Description Get all books with genres flattened to an ordered name list and the adding member reduced to a nickname
// @Tags books
// @Accept json
// @Produce json
// @Success 200 {array} service.BookResponse "Successfully retrieved books"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook retrieves a book by ID
// @Summary Get book by ID
// @Description Get a specific book by its UUID
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID (UUID)"
// @Success 200 {object} service.BookResponse "Successfully retrieved book"
// @Failure 400 {object} ErrorResponse "Invalid book ID"
// @Failure 404 {object} ErrorResponse "Book not found"
// @Router /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := h.bookService.GetBookByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook creates a new book with its genre associations
// @Summary Create a new book
// @Description Create a book together with its genre links in one transaction. Title, author and registeredDate are required; genres absent from the club are created on first use.
// @Tags books
// @Accept json
// @Produce json
// @Param book body service.CreateBookRequest true "Book data"
// @Success 201 {object} service.BookResponse "Successfully created book"
// @Failure 400 {object} ErrorResponse "Missing or invalid field"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req service.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.bookService.CreateBook(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook updates an existing book
// @Summary Update book
// @Description Update a book's fields and replace its genre set wholesale in one transaction. Title and author are required; the caller must resend the complete desired genre list.
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID (UUID)"
// @Param book body service.UpdateBookRequest true "Updated book data"
// @Success 200 {object} service.BookResponse "Successfully updated book"
// @Failure 400 {object} ErrorResponse "Missing or invalid field"
// @Failure 404 {object} ErrorResponse "Book not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var req service.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.bookService.UpdateBook(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook deletes a book
// @Summary Delete book
// @Description Delete a book by ID; its genre links are removed with it
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted book"
// @Failure 400 {object} ErrorResponse "Invalid book ID"
// @Failure 404 {object} ErrorResponse "Book not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	if err := h.bookService.DeleteBook(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
