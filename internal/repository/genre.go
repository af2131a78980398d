package repository

import (
	"errors"

	"bookclub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenreRepository handles database operations for genres
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// GetByName retrieves a genre by name within a club
func (r *GenreRepository) GetByName(clubID uuid.UUID, name string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.First(&genre, "club_id = ? AND name = ?", clubID, name).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetByClubID retrieves all genres of a club ordered by name
func (r *GenreRepository) GetByClubID(clubID uuid.UUID) ([]models.Genre, error) {
	var genres []models.Genre
	err := r.db.Where("club_id = ?", clubID).Order("name asc").Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

// findOrCreateGenre looks up a genre by (club, name) inside tx, creating it
// when absent. Two concurrent creators of the same new name race to the
// unique index on (club_id, name); the loser re-reads and reuses the row the
// winner inserted.
func findOrCreateGenre(tx *gorm.DB, clubID uuid.UUID, name string) (*models.Genre, error) {
	var genre models.Genre
	err := tx.First(&genre, "club_id = ? AND name = ?", clubID, name).Error
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	genre = models.Genre{ClubID: clubID, Name: name}
	if err := tx.Create(&genre).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Genre
			if err := tx.First(&existing, "club_id = ? AND name = ?", clubID, name).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &genre, nil
}
