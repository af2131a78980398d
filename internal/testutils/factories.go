package testutils

import (
	"time"

	"bookclub-backend/internal/database/models"

	"github.com/google/uuid"
)

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates a test Club with default values
func (f *ClubFactory) Create() *models.Club {
	return &models.Club{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "테스트 북클럽",
		Description: "A test club",
	}
}

// WithName sets a custom name for the club
func (f *ClubFactory) WithName(name string) *models.Club {
	club := f.Create()
	club.Name = name
	return club
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	// Unique nickname derived from the UUID to avoid constraint conflicts
	nickname := "member-" + id.String()[:8]

	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:   uuid.New(),
		Nickname: nickname,
		Role:     models.MemberRoleMember,
		Contact:  "010-0000-0000",
	}
}

// WithClub sets the club ID for the member
func (f *MemberFactory) WithClub(clubID uuid.UUID) *models.Member {
	member := f.Create()
	member.ClubID = clubID
	return member
}

// WithNickname sets a custom nickname for the member
func (f *MemberFactory) WithNickname(nickname string) *models.Member {
	member := f.Create()
	member.Nickname = nickname
	return member
}

// WithRole sets a custom role for the member
func (f *MemberFactory) WithRole(role models.MemberRole) *models.Member {
	member := f.Create()
	member.Role = role
	return member
}

// BookFactory provides methods to create test Book data
type BookFactory struct{}

// NewBookFactory creates a new BookFactory
func NewBookFactory() *BookFactory {
	return &BookFactory{}
}

// Create creates a test Book with default values
func (f *BookFactory) Create() *models.Book {
	return &models.Book{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:         uuid.New(),
		Title:          "Test Book",
		Author:         "Test Author",
		Notes:          "",
		RegisteredDate: time.Now().Truncate(24 * time.Hour),
	}
}

// WithClub sets the club ID for the book
func (f *BookFactory) WithClub(clubID uuid.UUID) *models.Book {
	book := f.Create()
	book.ClubID = clubID
	return book
}

// WithTitle sets a custom title for the book
func (f *BookFactory) WithTitle(title string) *models.Book {
	book := f.Create()
	book.Title = title
	return book
}

// WithAddedBy sets the registering member for the book
func (f *BookFactory) WithAddedBy(memberID uuid.UUID) *models.Book {
	book := f.Create()
	book.AddedByID = &memberID
	return book
}

// GenreFactory provides methods to create test Genre data
type GenreFactory struct{}

// NewGenreFactory creates a new GenreFactory
func NewGenreFactory() *GenreFactory {
	return &GenreFactory{}
}

// Create creates a test Genre with default values
func (f *GenreFactory) Create() *models.Genre {
	id := uuid.New()
	return &models.Genre{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID: uuid.New(),
		Name:   "genre-" + id.String()[:8],
	}
}

// WithClub sets the club ID for the genre
func (f *GenreFactory) WithClub(clubID uuid.UUID) *models.Genre {
	genre := f.Create()
	genre.ClubID = clubID
	return genre
}

// WithName sets a custom name for the genre
func (f *GenreFactory) WithName(name string) *models.Genre {
	genre := f.Create()
	genre.Name = name
	return genre
}

// MeetingFactory provides methods to create test Meeting data
type MeetingFactory struct{}

// NewMeetingFactory creates a new MeetingFactory
func NewMeetingFactory() *MeetingFactory {
	return &MeetingFactory{}
}

// Create creates a test Meeting with default values
func (f *MeetingFactory) Create() *models.Meeting {
	return &models.Meeting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:   uuid.New(),
		Title:    "Test Meeting",
		Date:     time.Now().Add(24 * time.Hour),
		Location: "Test Cafe",
		Memo:     "",
	}
}

// WithClub sets the club ID for the meeting
func (f *MeetingFactory) WithClub(clubID uuid.UUID) *models.Meeting {
	meeting := f.Create()
	meeting.ClubID = clubID
	return meeting
}

// WithDate sets a custom date for the meeting
func (f *MeetingFactory) WithDate(date time.Time) *models.Meeting {
	meeting := f.Create()
	meeting.Date = date
	return meeting
}

// WithTitle sets a custom title for the meeting
func (f *MeetingFactory) WithTitle(title string) *models.Meeting {
	meeting := f.Create()
	meeting.Title = title
	return meeting
}

// FactorySet provides access to all factories
type FactorySet struct {
	Club    *ClubFactory
	Member  *MemberFactory
	Book    *BookFactory
	Genre   *GenreFactory
	Meeting *MeetingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Club:    NewClubFactory(),
		Member:  NewMemberFactory(),
		Book:    NewBookFactory(),
		Genre:   NewGenreFactory(),
		Meeting: NewMeetingFactory(),
	}
}

// CreateClubHierarchy creates a club with one member, one book and one meeting
// all wired to the same club.
func (fs *FactorySet) CreateClubHierarchy() (*models.Club, *models.Member, *models.Book, *models.Meeting) {
	club := fs.Club.Create()

	member := fs.Member.WithClub(club.ID)

	book := fs.Book.WithClub(club.ID)
	book.AddedByID = &member.ID

	meeting := fs.Meeting.WithClub(club.ID)

	return club, member, book, meeting
}
