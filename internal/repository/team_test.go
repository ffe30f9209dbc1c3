//go:build integration
// +build integration

package repository

import (
	"testing"

	"taskask-backend/internal/database/models"
	"taskask-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository and TeamMemberRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	memberRepo    *TeamMemberRepository
	userRepo      *UserRepository
	users         *testutils.UserFactory
	teams         *testutils.TeamFactory

	lead     *models.User
	employee *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.lead = suite.users.WithRole(models.RoleTeamLead)
	suite.Require().NoError(suite.userRepo.Create(suite.lead))
	suite.employee = suite.users.WithRole(models.RoleEmployee)
	suite.Require().NoError(suite.userRepo.Create(suite.employee))
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.teams.Create(suite.lead.ID)

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
}

// TestCreateSecondTeamForLead tests the unique index on lead_id
func (suite *TeamRepositoryTestSuite) TestCreateSecondTeamForLead() {
	suite.NoError(suite.repo.Create(suite.teams.Create(suite.lead.ID)))

	err := suite.repo.Create(suite.teams.Create(suite.lead.ID))

	suite.Error(err)
}

// TestCreateDuplicateName tests the unique index on name
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team := suite.teams.Create(suite.lead.ID)
	team.Name = "Platform"
	suite.NoError(suite.repo.Create(team))

	otherLead := suite.users.WithRole(models.RoleTeamLead)
	suite.Require().NoError(suite.userRepo.Create(otherLead))
	duplicate := suite.teams.Create(otherLead.ID)
	duplicate.Name = "Platform"

	suite.Error(suite.repo.Create(duplicate))
}

// TestGetByLeadID tests resolving a lead's team
func (suite *TeamRepositoryTestSuite) TestGetByLeadID() {
	team := suite.teams.Create(suite.lead.ID)
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByLeadID(suite.lead.ID)
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByLeadID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllWithLeads tests that the lead association is loaded
func (suite *TeamRepositoryTestSuite) TestGetAllWithLeads() {
	suite.NoError(suite.repo.Create(suite.teams.Create(suite.lead.ID)))

	teams, err := suite.repo.GetAllWithLeads()
	suite.NoError(err)
	suite.Require().Len(teams, 1)
	suite.Require().NotNil(teams[0].Lead)
	suite.Equal(suite.lead.Email, teams[0].Lead.Email)
}

// TestAddMember tests creating a membership row
func (suite *TeamRepositoryTestSuite) TestAddMember() {
	team := suite.teams.Create(suite.lead.ID)
	suite.NoError(suite.repo.Create(team))

	err := suite.memberRepo.Create(&models.TeamMember{TeamID: team.ID, UserID: suite.employee.ID})
	suite.NoError(err)

	members, err := suite.memberRepo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Require().Len(members, 1)
	suite.Require().NotNil(members[0].User)
	suite.Equal(suite.employee.Email, members[0].User.Email)
}

// TestAddMemberSecondTeam tests the unique index on user_id across teams
func (suite *TeamRepositoryTestSuite) TestAddMemberSecondTeam() {
	team := suite.teams.Create(suite.lead.ID)
	suite.NoError(suite.repo.Create(team))

	otherLead := suite.users.WithRole(models.RoleTeamLead)
	suite.Require().NoError(suite.userRepo.Create(otherLead))
	otherTeam := suite.teams.Create(otherLead.ID)
	suite.NoError(suite.repo.Create(otherTeam))

	suite.NoError(suite.memberRepo.Create(&models.TeamMember{TeamID: team.ID, UserID: suite.employee.ID}))

	err := suite.memberRepo.Create(&models.TeamMember{TeamID: otherTeam.ID, UserID: suite.employee.ID})
	suite.Error(err)
}

// TestGetByUserID tests resolving a user's membership
func (suite *TeamRepositoryTestSuite) TestGetByUserID() {
	team := suite.teams.Create(suite.lead.ID)
	suite.NoError(suite.repo.Create(team))
	suite.NoError(suite.memberRepo.Create(&models.TeamMember{TeamID: team.ID, UserID: suite.employee.ID}))

	member, err := suite.memberRepo.GetByUserID(suite.employee.ID)
	suite.NoError(err)
	suite.Equal(team.ID, member.TeamID)

	_, err = suite.memberRepo.GetByUserID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
