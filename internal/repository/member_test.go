//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"bookclub-backend/internal/database/models"
	"bookclub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MemberRepositoryTestSuite tests the MemberRepository against a real Postgres
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	clubRepo      *ClubRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.clubRepo = NewClubRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MemberRepositoryTestSuite) createClub() *models.Club {
	club := suite.factories.Club.Create()
	err := suite.clubRepo.Create(club)
	suite.Require().NoError(err)
	return club
}

// TestCreate tests creating a new member
func (suite *MemberRepositoryTestSuite) TestCreate() {
	club := suite.createClub()

	member := suite.factories.Member.WithClub(club.ID)
	err := suite.repo.Create(member)
	suite.NoError(err)

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(member.Nickname, found.Nickname)
	suite.Equal(models.MemberRoleMember, found.Role)
}

// TestCreateDuplicateNickname tests the unique (club, nickname) constraint
func (suite *MemberRepositoryTestSuite) TestCreateDuplicateNickname() {
	club := suite.createClub()

	first := suite.factories.Member.WithClub(club.ID)
	first.Nickname = "독서가"
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.Member.WithClub(club.ID)
	second.Nickname = "독서가"
	err := suite.repo.Create(second)
	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestSameNicknameDifferentClubs tests that the constraint is per club
func (suite *MemberRepositoryTestSuite) TestSameNicknameDifferentClubs() {
	clubA := suite.createClub()
	clubB := suite.createClub()

	memberA := suite.factories.Member.WithClub(clubA.ID)
	memberA.Nickname = "독서가"
	suite.Require().NoError(suite.repo.Create(memberA))

	memberB := suite.factories.Member.WithClub(clubB.ID)
	memberB.Nickname = "독서가"
	suite.NoError(suite.repo.Create(memberB))
}

// TestGetByNickname tests the nickname lookup
func (suite *MemberRepositoryTestSuite) TestGetByNickname() {
	club := suite.createClub()

	member := suite.factories.Member.WithClub(club.ID)
	member.Nickname = "독서가"
	suite.Require().NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByNickname(club.ID, "독서가")
	suite.NoError(err)
	suite.Equal(member.ID, found.ID)

	_, err = suite.repo.GetByNickname(club.ID, "없는닉네임")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllWithAttendances tests the ordered list with preloaded attendance rows
func (suite *MemberRepositoryTestSuite) TestGetAllWithAttendances() {
	club := suite.createClub()

	memberB := suite.factories.Member.WithClub(club.ID)
	memberB.Nickname = "나중"
	suite.Require().NoError(suite.repo.Create(memberB))

	memberA := suite.factories.Member.WithClub(club.ID)
	memberA.Nickname = "가나다"
	suite.Require().NoError(suite.repo.Create(memberA))

	meeting := suite.factories.Meeting.WithClub(club.ID)
	meeting.Date = time.Now().Add(-24 * time.Hour)
	meetingRepo := NewMeetingRepository(suite.baseTestSuite.DB)
	suite.Require().NoError(meetingRepo.CreateWithAttendances(meeting, []uuid.UUID{memberA.ID}))

	members, err := suite.repo.GetAllWithAttendances(club.ID)
	suite.NoError(err)
	suite.Len(members, 2)

	// Ordered by nickname ascending
	suite.Equal("가나다", members[0].Nickname)
	suite.Equal("나중", members[1].Nickname)

	// The attending member has the meeting preloaded on the row
	suite.Len(members[0].Attendances, 1)
	suite.Equal(models.AttendanceStatusAttending, members[0].Attendances[0].Status)
	suite.Equal(meeting.ID, members[0].Attendances[0].Meeting.ID)
	suite.Empty(members[1].Attendances)
}

// TestUpdate tests updating a member
func (suite *MemberRepositoryTestSuite) TestUpdate() {
	club := suite.createClub()

	member := suite.factories.Member.WithClub(club.ID)
	suite.Require().NoError(suite.repo.Create(member))

	member.Nickname = "새닉네임"
	member.Role = models.MemberRoleLeader
	suite.NoError(suite.repo.Update(member))

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal("새닉네임", found.Nickname)
	suite.Equal(models.MemberRoleLeader, found.Role)
}

// TestDelete tests deleting a member and the added-by null-out on their books
func (suite *MemberRepositoryTestSuite) TestDelete() {
	club := suite.createClub()

	member := suite.factories.Member.WithClub(club.ID)
	suite.Require().NoError(suite.repo.Create(member))

	book := suite.factories.Book.WithClub(club.ID)
	book.AddedByID = &member.ID
	bookRepo := NewBookRepository(suite.baseTestSuite.DB)
	suite.Require().NoError(bookRepo.CreateWithGenres(book, nil))

	suite.NoError(suite.repo.Delete(member.ID))

	_, err := suite.repo.GetByID(member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// The book survives without the reference
	surviving, err := bookRepo.GetByID(book.ID)
	suite.NoError(err)
	suite.Nil(surviving.AddedByID)
}

// TestMemberRepositoryTestSuite runs the test suite
func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
