package repository

import (
	"bookclub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookRepository handles database operations for books
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// CreateWithGenres inserts a book and links it to the named genres in one
// transaction. Genres absent from the club are created on first use. Any
// failure rolls the whole write back.
func (r *BookRepository) CreateWithGenres(book *models.Book, genreNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		return linkGenres(tx, book, genreNames)
	})
}

// UpdateWithGenres saves the book's scalar fields, drops every existing genre
// link and relinks the supplied set, all in one transaction. The genre set is
// always exactly the set last written; partial updates are not supported.
func (r *BookRepository) UpdateWithGenres(book *models.Book, genreNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":           book.Title,
			"author":          book.Author,
			"notes":           book.Notes,
			"registered_date": book.RegisteredDate,
			"added_by_id":     book.AddedByID,
		}
		if err := tx.Model(&models.Book{}).Where("id = ?", book.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.BookGenre{}, "book_id = ?", book.ID).Error; err != nil {
			return err
		}
		return linkGenres(tx, book, genreNames)
	})
}

// linkGenres find-or-creates each named genre within the book's club and
// inserts the join rows.
func linkGenres(tx *gorm.DB, book *models.Book, genreNames []string) error {
	for _, name := range genreNames {
		genre, err := findOrCreateGenre(tx, book.ClubID, name)
		if err != nil {
			return err
		}
		link := models.BookGenre{BookID: book.ID, GenreID: genre.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a book by ID
func (r *BookRepository) GetByID(id uuid.UUID) (*models.Book, error) {
	var book models.Book
	err := r.db.First(&book, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetWithRelations retrieves a book with its adding member and genre links,
// genre links in insertion order.
func (r *BookRepository) GetWithRelations(id uuid.UUID) (*models.Book, error) {
	var book models.Book
	err := r.db.
		Preload("AddedBy").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("book_genres.created_at asc")
		}).
		Preload("Genres.Genre").
		First(&book, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllWithRelations retrieves all books of a club with relations, newest
// first.
func (r *BookRepository) GetAllWithRelations(clubID uuid.UUID) ([]models.Book, error) {
	var books []models.Book
	err := r.db.
		Preload("AddedBy").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("book_genres.created_at asc")
		}).
		Preload("Genres.Genre").
		Where("club_id = ?", clubID).
		Order("created_at desc").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// Delete deletes a book; its genre links cascade at the store level
func (r *BookRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Book{}, "id = ?", id).Error
}
