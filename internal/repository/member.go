package repository

import (
	"bookclub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByNickname retrieves a member by nickname within a club
func (r *MemberRepository) GetByNickname(clubID uuid.UUID, nickname string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "club_id = ? AND nickname = ?", clubID, nickname).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAllWithAttendances retrieves all members of a club ordered by nickname,
// with their attendance rows and the meetings those rows point at. The
// attendance statistic is computed from this in the service layer on every
// read; it is never stored.
func (r *MemberRepository) GetAllWithAttendances(clubID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := r.db.
		Preload("Attendances").
		Preload("Attendances.Meeting").
		Where("club_id = ?", clubID).
		Order("nickname asc").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Delete deletes a member. Attendance rows cascade at the store level and
// books added by the member keep their rows with added_by_id set to NULL.
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}
