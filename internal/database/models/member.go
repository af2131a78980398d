package models

import (
	"github.com/google/uuid"
)

// Member represents a club participant. Nicknames are unique within a club;
// the constraint lives at the schema level so concurrent creates cannot slip
// past the application-side check.
type Member struct {
	BaseModel
	ClubID   uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;uniqueIndex:idx_members_club_nickname" validate:"required"`
	Nickname string     `json:"nickname" gorm:"size:50;not null;uniqueIndex:idx_members_club_nickname" validate:"required,min=1,max=50"`
	Role     MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`
	Contact  string     `json:"contact" gorm:"size:255" validate:"max=255"`

	// Relationships
	Club        Club         `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Attendances []Attendance `json:"attendances,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	AddedBooks  []Book       `json:"added_books,omitempty" gorm:"foreignKey:AddedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
