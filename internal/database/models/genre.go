package models

import (
	"time"

	"github.com/google/uuid"
)

// Genre is a named tag scoped to a club. The unique index on (club_id, name)
// is what closes the concurrent find-or-create race: the loser of the race
// gets a duplicated-key error and reuses the winning row.
type Genre struct {
	BaseModel
	ClubID uuid.UUID `json:"club_id" gorm:"type:uuid;not null;uniqueIndex:idx_genres_club_name" validate:"required"`
	Name   string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_genres_club_name" validate:"required,min=1,max=100"`

	// Relationships
	Club  Club        `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Books []BookGenre `json:"books,omitempty" gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Genre
func (Genre) TableName() string {
	return "genres"
}

// BookGenre links a book to a genre. Rows are fully replaced on every book
// update; created_at keeps the genre list in insertion order when read back.
type BookGenre struct {
	BookID    uuid.UUID `json:"book_id" gorm:"type:uuid;primaryKey"`
	GenreID   uuid.UUID `json:"genre_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Book  Book  `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Genre Genre `json:"genre,omitempty" gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BookGenre
func (BookGenre) TableName() string {
	return "book_genres"
}
