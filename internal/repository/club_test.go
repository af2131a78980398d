//go:build integration
// +build integration

package repository

import (
	"testing"

	"bookclub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ClubRepositoryTestSuite tests the ClubRepository against a real Postgres
type ClubRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ClubRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ClubRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewClubRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ClubRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ClubRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ClubRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a club
func (suite *ClubRepositoryTestSuite) TestCreate() {
	club := suite.factories.Club.WithName("독서 모임")

	err := suite.repo.Create(club)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, club.ID)

	found, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.Equal("독서 모임", found.Name)
}

// TestGetFirstOrdersByCreation tests that the oldest club wins
func (suite *ClubRepositoryTestSuite) TestGetFirstOrdersByCreation() {
	older := suite.factories.Club.WithName("첫 번째 클럽")
	suite.Require().NoError(suite.repo.Create(older))

	newer := suite.factories.Club.WithName("두 번째 클럽")
	suite.Require().NoError(suite.repo.Create(newer))

	found, err := suite.repo.GetFirst()
	suite.NoError(err)
	suite.Equal(older.ID, found.ID)
}

// TestGetFirstEmpty tests the empty-table case used by the startup bootstrap
func (suite *ClubRepositoryTestSuite) TestGetFirstEmpty() {
	found, err := suite.repo.GetFirst()
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetByIDNotFound tests looking up a missing club
func (suite *ClubRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestClubRepositoryTestSuite runs the club repository test suite
func TestClubRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ClubRepositoryTestSuite))
}
