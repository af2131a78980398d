package repository

import (
	"time"

	"bookclub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ClubRepositoryInterface defines the interface for club repository operations
type ClubRepositoryInterface interface {
	Create(club *models.Club) error
	GetFirst() (*models.Club, error)
	GetByID(id uuid.UUID) (*models.Club, error)
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByNickname(clubID uuid.UUID, nickname string) (*models.Member, error)
	GetAllWithAttendances(clubID uuid.UUID) ([]models.Member, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// BookRepositoryInterface defines the interface for book repository operations.
// CreateWithGenres and UpdateWithGenres run as single database transactions
// covering the book row and its genre links.
type BookRepositoryInterface interface {
	CreateWithGenres(book *models.Book, genreNames []string) error
	UpdateWithGenres(book *models.Book, genreNames []string) error
	GetByID(id uuid.UUID) (*models.Book, error)
	GetWithRelations(id uuid.UUID) (*models.Book, error)
	GetAllWithRelations(clubID uuid.UUID) ([]models.Book, error)
	Delete(id uuid.UUID) error
}

// MeetingRepositoryInterface defines the interface for meeting repository
// operations. CreateWithAttendances and UpdateWithAttendances run as single
// database transactions covering the meeting row and its attendance roster.
type MeetingRepositoryInterface interface {
	CreateWithAttendances(meeting *models.Meeting, memberIDs []uuid.UUID) error
	UpdateWithAttendances(meeting *models.Meeting, memberIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Meeting, error)
	GetWithRelations(id uuid.UUID) (*models.Meeting, error)
	GetAllWithRelations(clubID uuid.UUID) ([]models.Meeting, error)
	CountPast(clubID uuid.UUID, before time.Time) (int64, error)
	Delete(id uuid.UUID) error
}
