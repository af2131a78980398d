package repository

import (
	"bookclub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club
func (r *ClubRepository) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

// GetFirst retrieves the first club row, oldest first. The application is
// single-tenant, so this is the club.
func (r *ClubRepository) GetFirst() (*models.Club, error) {
	var club models.Club
	err := r.db.Order("created_at asc").First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}
