package repository

import (
	"time"

	"bookclub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// CreateWithAttendances inserts a meeting and one attendance row per supplied
// member in a single transaction. The create path records every supplied
// attendee as ATTENDING.
func (r *MeetingRepository) CreateWithAttendances(meeting *models.Meeting, memberIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}
		return insertAttendances(tx, meeting.ID, memberIDs)
	})
}

// UpdateWithAttendances saves the meeting's scalar fields, drops the existing
// attendance roster and bulk-inserts the new one, all in one transaction.
// The roster is always exactly the set last written.
func (r *MeetingRepository) UpdateWithAttendances(meeting *models.Meeting, memberIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":    meeting.Title,
			"date":     meeting.Date,
			"location": meeting.Location,
			"memo":     meeting.Memo,
		}
		if err := tx.Model(&models.Meeting{}).Where("id = ?", meeting.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Attendance{}, "meeting_id = ?", meeting.ID).Error; err != nil {
			return err
		}
		return insertAttendances(tx, meeting.ID, memberIDs)
	})
}

func insertAttendances(tx *gorm.DB, meetingID uuid.UUID, memberIDs []uuid.UUID) error {
	if len(memberIDs) == 0 {
		return nil
	}
	attendances := make([]models.Attendance, len(memberIDs))
	for i, memberID := range memberIDs {
		attendances[i] = models.Attendance{
			MeetingID: meetingID,
			MemberID:  memberID,
			Status:    models.AttendanceStatusAttending,
		}
	}
	return tx.Create(&attendances).Error
}

// GetByID retrieves a meeting by ID
func (r *MeetingRepository) GetByID(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetWithRelations retrieves a meeting with its attendance roster (and the
// members behind it) and its joined books.
func (r *MeetingRepository) GetWithRelations(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.
		Preload("Attendances", func(db *gorm.DB) *gorm.DB {
			return db.Order("attendances.created_at asc")
		}).
		Preload("Attendances.Member").
		Preload("Books").
		Preload("Books.Book").
		First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetAllWithRelations retrieves all meetings of a club with relations, most
// recent date first.
func (r *MeetingRepository) GetAllWithRelations(clubID uuid.UUID) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Preload("Attendances", func(db *gorm.DB) *gorm.DB {
			return db.Order("attendances.created_at asc")
		}).
		Preload("Attendances.Member").
		Preload("Books").
		Preload("Books.Book").
		Where("club_id = ?", clubID).
		Order("date desc").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// CountPast counts the club's meetings dated strictly before the given
// instant. Used as the denominator of the attendance statistic.
func (r *MeetingRepository) CountPast(clubID uuid.UUID, before time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Meeting{}).
		Where("club_id = ? AND date < ?", clubID, before).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Delete deletes a meeting; attendance and book-association rows cascade at
// the store level
func (r *MeetingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Meeting{}, "id = ?", id).Error
}
