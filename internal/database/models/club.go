package models

// Club is the tenant root. In practice exactly one club row exists; it is
// created at startup if the table is empty.
type Club struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`

	// Relationships
	Members  []Member  `json:"members,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Books    []Book    `json:"books,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Genres   []Genre   `json:"genres,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Meetings []Meeting `json:"meetings,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}
