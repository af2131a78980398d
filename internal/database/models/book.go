package models

import (
	"time"

	"github.com/google/uuid"
)

// Book is a reading-list entry. The same (title, author) pair may be
// registered multiple times by different members; duplicates carry the
// per-member attribution that the statistics pages are built on.
type Book struct {
	BaseModel
	ClubID         uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	AddedByID      *uuid.UUID `json:"added_by_id,omitempty" gorm:"type:uuid;index"`
	Title          string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Author         string     `json:"author" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Notes          string     `json:"notes" gorm:"type:text"`
	RegisteredDate time.Time  `json:"registered_date" gorm:"not null"`

	// Relationships
	Club    Club        `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	AddedBy *Member     `json:"added_by,omitempty" gorm:"foreignKey:AddedByID;constraint:OnDelete:SET NULL"`
	Genres  []BookGenre `json:"genres,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Book
func (Book) TableName() string {
	return "books"
}
