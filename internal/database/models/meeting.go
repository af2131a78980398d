package models

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is a scheduled club gathering. Date holds the combined date and
// time-of-day as a single timestamp.
type Meeting struct {
	BaseModel
	ClubID   uuid.UUID `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title    string    `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Date     time.Time `json:"date" gorm:"not null;index"`
	Location string    `json:"location" gorm:"size:200" validate:"max=200"`
	Memo     string    `json:"memo" gorm:"type:text"`

	// Relationships
	Club        Club          `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Attendances []Attendance  `json:"attendances,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Books       []MeetingBook `json:"books,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// Attendance records one member's status for one meeting. Rows are fully
// replaced on every meeting update.
type Attendance struct {
	MeetingID uuid.UUID        `json:"meeting_id" gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID        `json:"member_id" gorm:"type:uuid;primaryKey"`
	Status    AttendanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'UNDECIDED'"`
	CreatedAt time.Time        `json:"created_at"`

	// Relationships
	Meeting Meeting `json:"meeting,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Member  Member  `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Attendance
func (Attendance) TableName() string {
	return "attendances"
}

// MeetingBook links a meeting to the books discussed at it. Meetings are read
// back with their joined books; there is no write endpoint for this relation.
type MeetingBook struct {
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID `json:"book_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Meeting Meeting `json:"meeting,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Book    Book    `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MeetingBook
func (MeetingBook) TableName() string {
	return "meeting_books"
}
