package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookclub-backend/internal/database/models"
	apperrors "bookclub-backend/internal/errors"
	"bookclub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// registeredDateLayout is the wire format for a book's registered date
const registeredDateLayout = "2006-01-02"

// unknownAddedBy is the sentinel display name for books whose adding member
// is absent or was deleted
const unknownAddedBy = "Unknown"

// BookService handles business logic for books and their genre associations
type BookService struct {
	repo      repository.BookRepositoryInterface
	clubID    uuid.UUID
	validator *validator.Validate
}

// NewBookService creates a new book service
func NewBookService(repo repository.BookRepositoryInterface, clubID uuid.UUID, validator *validator.Validate) *BookService {
	return &BookService{
		repo:      repo,
		clubID:    clubID,
		validator: validator,
	}
}

// CreateBookRequest represents the data needed to create a book
type CreateBookRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Author         string     `json:"author" validate:"required,max=200"`
	RegisteredDate string     `json:"registeredDate" validate:"required"`
	Notes          *string    `json:"notes"`
	Genres         []string   `json:"genres"`
	AddedByID      *uuid.UUID `json:"addedById"`
}

// UpdateBookRequest represents the data needed to update a book. The genre
// list is replaced wholesale; callers must resend the complete desired set.
type UpdateBookRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Author         string     `json:"author" validate:"required,max=200"`
	RegisteredDate string     `json:"registeredDate"`
	Notes          *string    `json:"notes"`
	Genres         []string   `json:"genres"`
	AddedByID      *uuid.UUID `json:"addedById"`
}

// BookResponse represents the flattened response data for a book: genres
// reduced to an ordered name list, the adding member reduced to a nickname.
type BookResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClubID         uuid.UUID  `json:"clubId"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Notes          string     `json:"notes"`
	RegisteredDate string     `json:"registeredDate"`
	AddedByID      *uuid.UUID `json:"addedById,omitempty"`
	AddedBy        string     `json:"addedBy"`
	Genres         []string   `json:"genres"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CreateBook persists a book together with its genre associations as one
// atomic unit
func (s *BookService) CreateBook(req *CreateBookRequest) (*BookResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	registeredDate, err := parseRegisteredDate(req.RegisteredDate)
	if err != nil {
		return nil, err
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	book := &models.Book{
		ClubID:         s.clubID,
		AddedByID:      req.AddedByID,
		Title:          strings.TrimSpace(req.Title),
		Author:         strings.TrimSpace(req.Author),
		Notes:          notes,
		RegisteredDate: registeredDate,
	}

	if err := s.repo.CreateWithGenres(book, normalizeGenres(req.Genres)); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	created, err := s.repo.GetWithRelations(book.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created book: %w", err)
	}
	return s.convertToResponse(created), nil
}

// GetBookByID retrieves a book with its relations
func (s *BookService) GetBookByID(id uuid.UUID) (*BookResponse, error) {
	book, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return s.convertToResponse(book), nil
}

// ListBooks retrieves every book of the club, newest first
func (s *BookService) ListBooks() ([]BookResponse, error) {
	books, err := s.repo.GetAllWithRelations(s.clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}

	responses := make([]BookResponse, len(books))
	for i := range books {
		responses[i] = *s.convertToResponse(&books[i])
	}
	return responses, nil
}

// UpdateBook updates a book's scalar fields and replaces its genre set in one
// transaction. The added-by reference is replaced wholesale, null when
// omitted; the registered date is reparsed when supplied and retained
// otherwise.
func (s *BookService) UpdateBook(id uuid.UUID, req *UpdateBookRequest) (*BookResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	book, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if req.RegisteredDate != "" {
		registeredDate, err := parseRegisteredDate(req.RegisteredDate)
		if err != nil {
			return nil, err
		}
		book.RegisteredDate = registeredDate
	}

	book.Title = strings.TrimSpace(req.Title)
	book.Author = strings.TrimSpace(req.Author)
	book.Notes = ""
	if req.Notes != nil {
		book.Notes = *req.Notes
	}
	book.AddedByID = req.AddedByID

	if err := s.repo.UpdateWithGenres(book, normalizeGenres(req.Genres)); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	updated, err := s.repo.GetWithRelations(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated book: %w", err)
	}
	return s.convertToResponse(updated), nil
}

// DeleteBook deletes a book; genre links cascade at the store level
func (s *BookService) DeleteBook(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookNotFound
		}
		return fmt.Errorf("failed to get book: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

// parseRegisteredDate accepts a plain date or a full RFC 3339 timestamp
func parseRegisteredDate(value string) (time.Time, error) {
	if t, err := time.Parse(registeredDateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.NewValidationError("registeredDate", "must be a date in YYYY-MM-DD format")
}

// normalizeGenres trims names, drops empties and deduplicates while keeping
// the caller's order. Repeated names in one request would otherwise produce
// repeated join rows.
func normalizeGenres(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

func (s *BookService) convertToResponse(book *models.Book) *BookResponse {
	genres := make([]string, 0, len(book.Genres))
	for _, bg := range book.Genres {
		genres = append(genres, bg.Genre.Name)
	}

	addedBy := unknownAddedBy
	if book.AddedBy != nil {
		addedBy = book.AddedBy.Nickname
	}

	return &BookResponse{
		ID:             book.ID,
		ClubID:         book.ClubID,
		Title:          book.Title,
		Author:         book.Author,
		Notes:          book.Notes,
		RegisteredDate: book.RegisteredDate.Format(registeredDateLayout),
		AddedByID:      book.AddedByID,
		AddedBy:        addedBy,
		Genres:         genres,
		CreatedAt:      book.CreatedAt,
		UpdatedAt:      book.UpdatedAt,
	}
}
