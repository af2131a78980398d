package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"bookclub-backend/internal/database/models"
	apperrors "bookclub-backend/internal/errors"
	"bookclub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for members
type MemberService struct {
	repo        repository.MemberRepositoryInterface
	meetingRepo repository.MeetingRepositoryInterface
	clubID      uuid.UUID
	validator   *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, meetingRepo repository.MeetingRepositoryInterface, clubID uuid.UUID, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:        repo,
		meetingRepo: meetingRepo,
		clubID:      clubID,
		validator:   validator,
	}
}

// CreateMemberRequest represents the data needed to create a member
type CreateMemberRequest struct {
	Nickname string  `json:"nickname" validate:"required,min=1,max=50"`
	Role     *string `json:"role" example:"MEMBER" default:"MEMBER"` // Optional: defaults to "MEMBER". Valid values: LEADER, MEMBER
	Contact  *string `json:"contact"`
}

// UpdateMemberRequest represents the data needed to update a member
type UpdateMemberRequest struct {
	Nickname string  `json:"nickname" validate:"required,min=1,max=50"`
	Role     *string `json:"role"`
	Contact  *string `json:"contact"`
}

// AttendanceStats carries the per-member attendance statistic, computed on
// every list read against meetings dated strictly before now.
type AttendanceStats struct {
	TotalMeetings    int     `json:"totalMeetings"`
	AttendedMeetings int     `json:"attendedMeetings"`
	AttendanceRate   float64 `json:"attendanceRate"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID              uuid.UUID        `json:"id"`
	ClubID          uuid.UUID        `json:"clubId"`
	Nickname        string           `json:"nickname"`
	Role            string           `json:"role"`
	Contact         string           `json:"contact"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	AttendanceStats *AttendanceStats `json:"attendanceStats,omitempty"`
}

// CreateMember creates a new member bound to the club
func (s *MemberService) CreateMember(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	role, err := resolveRole(req.Role)
	if err != nil {
		return nil, err
	}

	contact := ""
	if req.Contact != nil {
		contact = *req.Contact
	}

	// Check nickname uniqueness within the club; the schema-level unique
	// index closes the race between concurrent creates.
	if _, err := s.repo.GetByNickname(s.clubID, req.Nickname); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check nickname: %w", err)
	}

	member := &models.Member{
		ClubID:   s.clubID,
		Nickname: req.Nickname,
		Role:     role,
		Contact:  contact,
	}

	if err := s.repo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMemberExists
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return s.convertToResponse(member, nil), nil
}

// GetMemberByID retrieves a member by ID
func (s *MemberService) GetMemberByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return s.convertToResponse(member, nil), nil
}

// ListMembers retrieves every member of the club, ordered by nickname, with
// the computed attendance statistic: among meetings dated strictly before
// now, how many the member attended versus the count of all past meetings.
func (s *MemberService) ListMembers() ([]MemberResponse, error) {
	now := time.Now()

	totalPast, err := s.meetingRepo.CountPast(s.clubID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count past meetings: %w", err)
	}

	members, err := s.repo.GetAllWithAttendances(s.clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		attended := 0
		for _, att := range member.Attendances {
			if att.Status == models.AttendanceStatusAttending && att.Meeting.Date.Before(now) {
				attended++
			}
		}

		rate := 0.0
		if totalPast > 0 {
			rate = math.Round(float64(attended)/float64(totalPast)*100*100) / 100
		}

		responses[i] = *s.convertToResponse(&members[i], &AttendanceStats{
			TotalMeetings:    int(totalPast),
			AttendedMeetings: attended,
			AttendanceRate:   rate,
		})
	}

	return responses, nil
}

// UpdateMember updates an existing member
func (s *MemberService) UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	role, err := resolveRole(req.Role)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	// Check nickname uniqueness if the nickname is changing
	if req.Nickname != member.Nickname {
		if _, err := s.repo.GetByNickname(member.ClubID, req.Nickname); err == nil {
			return nil, apperrors.ErrMemberExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check nickname: %w", err)
		}
	}

	member.Nickname = req.Nickname
	member.Role = role
	member.Contact = ""
	if req.Contact != nil {
		member.Contact = *req.Contact
	}

	if err := s.repo.Update(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMemberExists
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return s.convertToResponse(member, nil), nil
}

// DeleteMember deletes a member. Attendance rows cascade; books the member
// added survive with their added-by reference nulled.
func (s *MemberService) DeleteMember(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// resolveRole applies the MEMBER default and rejects unknown roles
func resolveRole(role *string) (models.MemberRole, error) {
	if role == nil || *role == "" {
		return models.MemberRoleMember, nil
	}
	r := models.MemberRole(*role)
	if !r.IsValid() {
		return "", apperrors.NewValidationError("role", "must be LEADER or MEMBER")
	}
	return r, nil
}

func (s *MemberService) convertToResponse(member *models.Member, stats *AttendanceStats) *MemberResponse {
	return &MemberResponse{
		ID:              member.ID,
		ClubID:          member.ClubID,
		Nickname:        member.Nickname,
		Role:            string(member.Role),
		Contact:         member.Contact,
		CreatedAt:       member.CreatedAt,
		UpdatedAt:       member.UpdatedAt,
		AttendanceStats: stats,
	}
}
