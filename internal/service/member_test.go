package service_test

import (
	"testing"
	"time"

	"bookclub-backend/internal/database/models"
	apperrors "bookclub-backend/internal/errors"
	"bookclub-backend/internal/mocks"
	"bookclub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberRepo  *mocks.MockMemberRepositoryInterface
	mockMeetingRepo *mocks.MockMeetingRepositoryInterface
	memberService   *service.MemberService
	clubID          uuid.UUID
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockMeetingRepo = mocks.NewMockMeetingRepositoryInterface(suite.ctrl)
	suite.clubID = uuid.New()
	suite.validator = validator.New()

	// Create service with mock repositories
	suite.memberService = service.NewMemberService(suite.mockMemberRepo, suite.mockMeetingRepo, suite.clubID, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMember tests creating a member
func (suite *MemberServiceTestSuite) TestCreateMember() {
	role := "LEADER"
	contact := "010-1234-5678"
	req := &service.CreateMemberRequest{
		Nickname: "북클럽장",
		Role:     &role,
		Contact:  &contact,
	}

	// Mock GetByNickname to return not found (no existing member with same nickname)
	suite.mockMemberRepo.EXPECT().
		GetByNickname(suite.clubID, req.Nickname).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	// Mock Create to succeed
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.CreateMember(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Nickname, response.Nickname)
	assert.Equal(suite.T(), "LEADER", response.Role)
	assert.Equal(suite.T(), contact, response.Contact)
	assert.Equal(suite.T(), suite.clubID, response.ClubID)
	assert.Nil(suite.T(), response.AttendanceStats)
}

// TestCreateMemberWithDefaultRole tests creating a member without a role
func (suite *MemberServiceTestSuite) TestCreateMemberWithDefaultRole() {
	req := &service.CreateMemberRequest{
		Nickname: "독서가",
		// Role and Contact are not provided - role should default to MEMBER
	}

	suite.mockMemberRepo.EXPECT().
		GetByNickname(suite.clubID, req.Nickname).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(member *models.Member) error {
			assert.Equal(suite.T(), models.MemberRoleMember, member.Role)
			return nil
		}).
		Times(1)

	response, err := suite.memberService.CreateMember(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "MEMBER", response.Role)
	assert.Equal(suite.T(), "", response.Contact)
}

// TestCreateMemberValidationError tests creating a member with validation error
func (suite *MemberServiceTestSuite) TestCreateMemberValidationError() {
	req := &service.CreateMemberRequest{
		Nickname: "", // Empty nickname should fail validation
	}

	response, err := suite.memberService.CreateMember(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateMemberInvalidRole tests creating a member with an unknown role
func (suite *MemberServiceTestSuite) TestCreateMemberInvalidRole() {
	role := "ADMIN"
	req := &service.CreateMemberRequest{
		Nickname: "독서가",
		Role:     &role,
	}

	response, err := suite.memberService.CreateMember(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "LEADER or MEMBER")
}

// TestCreateMemberDuplicateNickname tests creating a member with a taken nickname
func (suite *MemberServiceTestSuite) TestCreateMemberDuplicateNickname() {
	req := &service.CreateMemberRequest{
		Nickname: "독서가",
	}

	existingMember := &models.Member{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		ClubID:   suite.clubID,
		Nickname: req.Nickname,
		Role:     models.MemberRoleMember,
	}

	// Mock GetByNickname to return existing member
	suite.mockMemberRepo.EXPECT().
		GetByNickname(suite.clubID, req.Nickname).
		Return(existingMember, nil).
		Times(1)

	response, err := suite.memberService.CreateMember(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateMemberDuplicateAtInsert tests the duplicated-key path when the
// uniqueness check and the insert race
func (suite *MemberServiceTestSuite) TestCreateMemberDuplicateAtInsert() {
	req := &service.CreateMemberRequest{
		Nickname: "독서가",
	}

	suite.mockMemberRepo.EXPECT().
		GetByNickname(suite.clubID, req.Nickname).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.memberService.CreateMember(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestGetMemberByID tests getting a member by ID
func (suite *MemberServiceTestSuite) TestGetMemberByID() {
	memberID := uuid.New()
	expectedMember := &models.Member{
		BaseModel: models.BaseModel{
			ID: memberID,
		},
		ClubID:   suite.clubID,
		Nickname: "독서가",
		Role:     models.MemberRoleMember,
		Contact:  "010-1234-5678",
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(expectedMember, nil).
		Times(1)

	response, err := suite.memberService.GetMemberByID(memberID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), expectedMember.ID, response.ID)
	assert.Equal(suite.T(), expectedMember.Nickname, response.Nickname)
	assert.Equal(suite.T(), "MEMBER", response.Role)
}

// TestGetMemberByIDNotFound tests getting a non-existent member
func (suite *MemberServiceTestSuite) TestGetMemberByIDNotFound() {
	memberID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.memberService.GetMemberByID(memberID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestListMembersAttendanceStats tests the attendance statistic computed on list
func (suite *MemberServiceTestSuite) TestListMembersAttendanceStats() {
	pastMeeting1 := models.Meeting{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.clubID,
		Date:      time.Now().Add(-48 * time.Hour),
	}
	pastMeeting2 := models.Meeting{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.clubID,
		Date:      time.Now().Add(-24 * time.Hour),
	}
	futureMeeting := models.Meeting{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.clubID,
		Date:      time.Now().Add(24 * time.Hour),
	}

	member := models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.clubID,
		Nickname:  "독서가",
		Role:      models.MemberRoleMember,
		Attendances: []models.Attendance{
			// One attended past meeting counts
			{MeetingID: pastMeeting1.ID, Status: models.AttendanceStatusAttending, Meeting: pastMeeting1},
			// Past meeting not attended does not count
			{MeetingID: pastMeeting2.ID, Status: models.AttendanceStatusNotAttending, Meeting: pastMeeting2},
			// Attending a future meeting does not count yet
			{MeetingID: futureMeeting.ID, Status: models.AttendanceStatusAttending, Meeting: futureMeeting},
		},
	}

	suite.mockMeetingRepo.EXPECT().
		CountPast(suite.clubID, gomock.Any()).
		Return(int64(3), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetAllWithAttendances(suite.clubID).
		Return([]models.Member{member}, nil).
		Times(1)

	responses, err := suite.memberService.ListMembers()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)

	stats := responses[0].AttendanceStats
	assert.NotNil(suite.T(), stats)
	assert.Equal(suite.T(), 3, stats.TotalMeetings)
	assert.Equal(suite.T(), 1, stats.AttendedMeetings)
	// 1/3 = 33.333...%, rounded to two decimal places
	assert.Equal(suite.T(), 33.33, stats.AttendanceRate)
}

// TestListMembersNoPastMeetings tests the zero-denominator case
func (suite *MemberServiceTestSuite) TestListMembersNoPastMeetings() {
	member := models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.clubID,
		Nickname:  "독서가",
		Role:      models.MemberRoleMember,
	}

	suite.mockMeetingRepo.EXPECT().
		CountPast(suite.clubID, gomock.Any()).
		Return(int64(0), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetAllWithAttendances(suite.clubID).
		Return([]models.Member{member}, nil).
		Times(1)

	responses, err := suite.memberService.ListMembers()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)

	stats := responses[0].AttendanceStats
	assert.NotNil(suite.T(), stats)
	assert.Equal(suite.T(), 0, stats.TotalMeetings)
	assert.Equal(suite.T(), 0, stats.AttendedMeetings)
	assert.Equal(suite.T(), 0.0, stats.AttendanceRate)
}

// TestUpdateMember tests updating a member
func (suite *MemberServiceTestSuite) TestUpdateMember() {
	memberID := uuid.New()
	role := "LEADER"
	req := &service.UpdateMemberRequest{
		Nickname: "새닉네임",
		Role:     &role,
	}

	existingMember := &models.Member{
		BaseModel: models.BaseModel{ID: memberID},
		ClubID:    suite.clubID,
		Nickname:  "독서가",
		Role:      models.MemberRoleMember,
		Contact:   "010-1234-5678",
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(existingMember, nil).
		Times(1)

	// Nickname is changing, so the uniqueness check runs
	suite.mockMemberRepo.EXPECT().
		GetByNickname(suite.clubID, req.Nickname).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.UpdateMember(memberID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "새닉네임", response.Nickname)
	assert.Equal(suite.T(), "LEADER", response.Role)
	// Contact omitted in the request is cleared, not retained
	assert.Equal(suite.T(), "", response.Contact)
}

// TestUpdateMemberSameNickname tests that keeping the nickname skips the uniqueness check
func (suite *MemberServiceTestSuite) TestUpdateMemberSameNickname() {
	memberID := uuid.New()
	req := &service.UpdateMemberRequest{
		Nickname: "독서가",
	}

	existingMember := &models.Member{
		BaseModel: models.BaseModel{ID: memberID},
		ClubID:    suite.clubID,
		Nickname:  "독서가",
		Role:      models.MemberRoleLeader,
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(existingMember, nil).
		Times(1)

	// No GetByNickname expected
	suite.mockMemberRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.UpdateMember(memberID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	// Role omitted defaults back to MEMBER
	assert.Equal(suite.T(), "MEMBER", response.Role)
}

// TestUpdateMemberNotFound tests updating a non-existent member
func (suite *MemberServiceTestSuite) TestUpdateMemberNotFound() {
	memberID := uuid.New()
	req := &service.UpdateMemberRequest{
		Nickname: "독서가",
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.memberService.UpdateMember(memberID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestUpdateMemberDuplicateNickname tests renaming to a taken nickname
func (suite *MemberServiceTestSuite) TestUpdateMemberDuplicateNickname() {
	memberID := uuid.New()
	req := &service.UpdateMemberRequest{
		Nickname: "새닉네임",
	}

	existingMember := &models.Member{
		BaseModel: models.BaseModel{ID: memberID},
		ClubID:    suite.clubID,
		Nickname:  "독서가",
		Role:      models.MemberRoleMember,
	}
	otherMember := &models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.clubID,
		Nickname:  "새닉네임",
		Role:      models.MemberRoleMember,
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(existingMember, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByNickname(suite.clubID, req.Nickname).
		Return(otherMember, nil).
		Times(1)

	response, err := suite.memberService.UpdateMember(memberID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestDeleteMember tests deleting a member
func (suite *MemberServiceTestSuite) TestDeleteMember() {
	memberID := uuid.New()
	existingMember := &models.Member{
		BaseModel: models.BaseModel{ID: memberID},
		ClubID:    suite.clubID,
		Nickname:  "독서가",
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(existingMember, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		Delete(memberID).
		Return(nil).
		Times(1)

	err := suite.memberService.DeleteMember(memberID)

	assert.NoError(suite.T(), err)
}

// TestDeleteMemberNotFound tests deleting a non-existent member
func (suite *MemberServiceTestSuite) TestDeleteMemberNotFound() {
	memberID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.memberService.DeleteMember(memberID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
