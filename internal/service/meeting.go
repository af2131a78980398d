package service

import (
	"errors"
	"fmt"
	"time"

	"bookclub-backend/internal/database/models"
	apperrors "bookclub-backend/internal/errors"
	"bookclub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	meetingDateLayout = "2006-01-02"
	meetingTimeLayout = "15:04"
)

// MeetingService handles business logic for meetings and their attendee
// rosters
type MeetingService struct {
	repo      repository.MeetingRepositoryInterface
	clubID    uuid.UUID
	validator *validator.Validate
}

// NewMeetingService creates a new meeting service
func NewMeetingService(repo repository.MeetingRepositoryInterface, clubID uuid.UUID, validator *validator.Validate) *MeetingService {
	return &MeetingService{
		repo:      repo,
		clubID:    clubID,
		validator: validator,
	}
}

// CreateMeetingRequest represents the data needed to create a meeting
type CreateMeetingRequest struct {
	Date      string      `json:"date" validate:"required"`
	Time      string      `json:"time" validate:"required"`
	Title     *string     `json:"title"`
	Location  *string     `json:"location"`
	Memo      *string     `json:"memo"`
	Attendees []uuid.UUID `json:"attendees"`
}

// UpdateMeetingRequest represents the data needed to update a meeting. The
// attendee roster is replaced wholesale; callers must resend the complete
// desired set.
type UpdateMeetingRequest struct {
	Title     string      `json:"title" validate:"required,max=200"`
	Date      string      `json:"date" validate:"required"`
	Time      string      `json:"time" validate:"required"`
	Location  *string     `json:"location"`
	Memo      *string     `json:"memo"`
	Attendees []uuid.UUID `json:"attendees"`
}

// MeetingBookResponse is a meeting's joined book reduced to its base fields
type MeetingBookResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
}

// AttendanceMemberResponse is an attendee reduced to id and nickname
type AttendanceMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
}

// AttendanceResponse is one {member, status} pair of a meeting's roster
type AttendanceResponse struct {
	Member AttendanceMemberResponse `json:"member"`
	Status string                   `json:"status"`
}

// MeetingResponse represents the response data for a meeting with its joined
// books and attendances
type MeetingResponse struct {
	ID          uuid.UUID             `json:"id"`
	ClubID      uuid.UUID             `json:"clubId"`
	Title       string                `json:"title"`
	Date        time.Time             `json:"date"`
	Location    string                `json:"location"`
	Memo        string                `json:"memo"`
	Books       []MeetingBookResponse `json:"books"`
	Attendances []AttendanceResponse  `json:"attendances"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// CreateMeeting persists a meeting together with its attendee roster as one
// atomic unit. Every supplied attendee is recorded as ATTENDING; the create
// path offers no way to mark anyone NOT_ATTENDING or UNDECIDED.
func (s *MeetingService) CreateMeeting(req *CreateMeetingRequest) (*MeetingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	// The create path combines date and time with an unqualified local-time
	// parse while update pins UTC+9. The asymmetry is inherited behavior and
	// is kept deliberately; unifying it would shift stored meeting times.
	date, err := combineLocal(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	title := ""
	if req.Title != nil {
		title = *req.Title
	}
	if title == "" {
		title = defaultMeetingTitle(req.Date)
	}

	meeting := &models.Meeting{
		ClubID:   s.clubID,
		Title:    title,
		Date:     date,
		Location: stringOrEmpty(req.Location),
		Memo:     stringOrEmpty(req.Memo),
	}

	if err := s.repo.CreateWithAttendances(meeting, req.Attendees); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	created, err := s.repo.GetWithRelations(meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created meeting: %w", err)
	}
	return s.convertToResponse(created), nil
}

// GetMeetingByID retrieves a meeting with its relations
func (s *MeetingService) GetMeetingByID(id uuid.UUID) (*MeetingResponse, error) {
	meeting, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return s.convertToResponse(meeting), nil
}

// ListMeetings retrieves every meeting of the club, most recent first
func (s *MeetingService) ListMeetings() ([]MeetingResponse, error) {
	meetings, err := s.repo.GetAllWithRelations(s.clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meetings: %w", err)
	}

	responses := make([]MeetingResponse, len(meetings))
	for i := range meetings {
		responses[i] = *s.convertToResponse(&meetings[i])
	}
	return responses, nil
}

// UpdateMeeting updates a meeting's scalar fields and replaces its attendee
// roster in one transaction
func (s *MeetingService) UpdateMeeting(id uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	date, err := combineSeoul(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	meeting, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	meeting.Title = req.Title
	meeting.Date = date
	meeting.Location = stringOrEmpty(req.Location)
	meeting.Memo = stringOrEmpty(req.Memo)

	if err := s.repo.UpdateWithAttendances(meeting, req.Attendees); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	updated, err := s.repo.GetWithRelations(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated meeting: %w", err)
	}
	return s.convertToResponse(updated), nil
}

// DeleteMeeting deletes a meeting; attendance and book-association rows
// cascade at the store level
func (s *MeetingService) DeleteMeeting(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to get meeting: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// combineLocal combines a date and a time-of-day string in server-local time
func combineLocal(date, timeOfDay string) (time.Time, error) {
	t, err := time.ParseInLocation(meetingDateLayout+"T"+meetingTimeLayout+":05", date+"T"+timeOfDay+":00", time.Local)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "date must be YYYY-MM-DD and time must be HH:MM")
	}
	return t, nil
}

// combineSeoul combines a date and a time-of-day string at a fixed UTC+9
// offset
func combineSeoul(date, timeOfDay string) (time.Time, error) {
	t, err := time.Parse(meetingDateLayout+"T"+meetingTimeLayout+":05-07:00", date+"T"+timeOfDay+":00+09:00")
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "date must be YYYY-MM-DD and time must be HH:MM")
	}
	return t, nil
}

// defaultMeetingTitle derives a title like "2024. 1. 2. 모임" from the date
func defaultMeetingTitle(date string) string {
	d, err := time.Parse(meetingDateLayout, date)
	if err != nil {
		return "모임"
	}
	return d.Format("2006. 1. 2.") + " 모임"
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *MeetingService) convertToResponse(meeting *models.Meeting) *MeetingResponse {
	books := make([]MeetingBookResponse, 0, len(meeting.Books))
	for _, mb := range meeting.Books {
		books = append(books, MeetingBookResponse{
			ID:     mb.Book.ID,
			Title:  mb.Book.Title,
			Author: mb.Book.Author,
		})
	}

	attendances := make([]AttendanceResponse, 0, len(meeting.Attendances))
	for _, att := range meeting.Attendances {
		attendances = append(attendances, AttendanceResponse{
			Member: AttendanceMemberResponse{
				ID:       att.Member.ID,
				Nickname: att.Member.Nickname,
			},
			Status: string(att.Status),
		})
	}

	return &MeetingResponse{
		ID:          meeting.ID,
		ClubID:      meeting.ClubID,
		Title:       meeting.Title,
		Date:        meeting.Date,
		Location:    meeting.Location,
		Memo:        meeting.Memo,
		Books:       books,
		Attendances: attendances,
		CreatedAt:   meeting.CreatedAt,
		UpdatedAt:   meeting.UpdatedAt,
	}
}
