package service_test

import (
	"testing"

	"taskask-backend/internal/database/models"
	apperrors "taskask-backend/internal/errors"
	"taskask-backend/internal/service"
	"taskask-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	userRepo    *testutils.FakeUserRepo
	teamRepo    *testutils.FakeTeamRepo
	memberRepo  *testutils.FakeTeamMemberRepo
	teamService *service.TeamService

	lead     *models.User
	employee *models.User
}

// SetupTest runs before each test
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.userRepo = testutils.NewFakeUserRepo()
	suite.teamRepo = testutils.NewFakeTeamRepo(suite.userRepo)
	suite.memberRepo = testutils.NewFakeTeamMemberRepo(suite.userRepo)
	suite.teamService = service.NewTeamService(suite.teamRepo, suite.memberRepo, suite.userRepo, validator.New())

	suite.lead = suite.userRepo.Seed(&models.User{
		FullName: "Lara Lead",
		Email:    "lara@example.com",
		Role:     models.RoleTeamLead,
		IsActive: true,
	})
	suite.employee = suite.userRepo.Seed(&models.User{
		FullName: "Evan Employee",
		Email:    "evan@example.com",
		Role:     models.RoleEmployee,
		IsActive: true,
	})
}

// TestCreateTeam tests the happy path including the lead identity
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	resp, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Platform"}, suite.lead.ID)

	suite.NoError(err)
	suite.Equal("Platform", resp.Name)
	suite.Equal(suite.lead.ID, resp.LeadID)
	suite.Equal("Lara Lead", resp.LeadFullName)
	suite.Equal("lara@example.com", resp.LeadEmail)
	suite.NotEqual(uuid.Nil, resp.ID)
}

// TestCreateTeamRequiresLeadRole tests the TEAM_LEAD-only rule
func (suite *TeamServiceTestSuite) TestCreateTeamRequiresLeadRole() {
	for _, role := range []models.Role{models.RoleManager, models.RoleEmployee, models.RoleAdmin} {
		user := suite.userRepo.Seed(&models.User{
			FullName: "User " + string(role),
			Email:    string(role) + "@example.com",
			Role:     role,
			IsActive: true,
		})
		_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Team " + string(role)}, user.ID)
		suite.Error(err, "role %s must not create teams", role)
		suite.True(apperrors.IsValidation(err))
	}
}

// TestCreateTeamOnePerLead tests that a lead cannot own two teams
func (suite *TeamServiceTestSuite) TestCreateTeamOnePerLead() {
	_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "First"}, suite.lead.ID)
	suite.NoError(err)

	_, err = suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Second"}, suite.lead.ID)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCreateTeamUnknownLead tests an unresolved lead id
func (suite *TeamServiceTestSuite) TestCreateTeamUnknownLead() {
	_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Ghost"}, uuid.New())
	suite.True(apperrors.IsNotFound(err))
}

// TestAddMember tests the happy path
func (suite *TeamServiceTestSuite) TestAddMember() {
	team, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Platform"}, suite.lead.ID)
	suite.NoError(err)

	err = suite.teamService.AddMember(team.ID, &service.AddTeamMemberRequest{UserID: suite.employee.ID}, suite.lead.ID)
	suite.NoError(err)

	members, err := suite.teamService.GetMyTeamMembers(suite.lead.ID)
	suite.NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal(suite.employee.ID, members[0].UserID)
	suite.Equal("Evan Employee", members[0].FullName)
	suite.Equal("evan@example.com", members[0].Email)
}

// TestAddMemberOnlyOwnLead tests that a different lead cannot add members
func (suite *TeamServiceTestSuite) TestAddMemberOnlyOwnLead() {
	team, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Platform"}, suite.lead.ID)
	suite.NoError(err)

	otherLead := suite.userRepo.Seed(&models.User{
		FullName: "Otto Other",
		Email:    "otto@example.com",
		Role:     models.RoleTeamLead,
		IsActive: true,
	})

	err = suite.teamService.AddMember(team.ID, &service.AddTeamMemberRequest{UserID: suite.employee.ID}, otherLead.ID)
	suite.True(apperrors.IsAuthorization(err))
}

// TestAddMemberEmployeeOnly tests that only EMPLOYEE users join teams
func (suite *TeamServiceTestSuite) TestAddMemberEmployeeOnly() {
	team, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Platform"}, suite.lead.ID)
	suite.NoError(err)

	manager := suite.userRepo.Seed(&models.User{
		FullName: "Mona Manager",
		Email:    "mona@example.com",
		Role:     models.RoleManager,
		IsActive: true,
	})

	err = suite.teamService.AddMember(team.ID, &service.AddTeamMemberRequest{UserID: manager.ID}, suite.lead.ID)
	suite.True(apperrors.IsValidation(err))
}

// TestAddMemberOneTeamPerUser tests that a user cannot join twice anywhere
func (suite *TeamServiceTestSuite) TestAddMemberOneTeamPerUser() {
	team, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Platform"}, suite.lead.ID)
	suite.NoError(err)

	err = suite.teamService.AddMember(team.ID, &service.AddTeamMemberRequest{UserID: suite.employee.ID}, suite.lead.ID)
	suite.NoError(err)

	// Same team again
	err = suite.teamService.AddMember(team.ID, &service.AddTeamMemberRequest{UserID: suite.employee.ID}, suite.lead.ID)
	suite.True(apperrors.IsAlreadyExists(err))

	// A different lead's team
	otherLead := suite.userRepo.Seed(&models.User{
		FullName: "Otto Other",
		Email:    "otto@example.com",
		Role:     models.RoleTeamLead,
		IsActive: true,
	})
	otherTeam, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Infra"}, otherLead.ID)
	suite.NoError(err)

	err = suite.teamService.AddMember(otherTeam.ID, &service.AddTeamMemberRequest{UserID: suite.employee.ID}, otherLead.ID)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestAddMemberTeamNotFound tests an unresolved team id
func (suite *TeamServiceTestSuite) TestAddMemberTeamNotFound() {
	err := suite.teamService.AddMember(uuid.New(), &service.AddTeamMemberRequest{UserID: suite.employee.ID}, suite.lead.ID)
	suite.True(apperrors.IsNotFound(err))
}

// TestGetMyTeamMembersNoTeam tests a lead without a team
func (suite *TeamServiceTestSuite) TestGetMyTeamMembersNoTeam() {
	_, err := suite.teamService.GetMyTeamMembers(suite.lead.ID)
	suite.True(apperrors.IsNotFound(err))
}

// TestGetTeamByLead tests resolving the lead's own team
func (suite *TeamServiceTestSuite) TestGetTeamByLead() {
	created, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Platform"}, suite.lead.ID)
	suite.NoError(err)

	team, err := suite.teamService.GetTeamByLead(suite.lead.ID)
	suite.NoError(err)
	suite.Equal(created.ID, team.ID)
	suite.Equal("Platform", team.Name)
}

// TestGetAllTeams tests the admin listing with lead identities
func (suite *TeamServiceTestSuite) TestGetAllTeams() {
	_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "Platform"}, suite.lead.ID)
	suite.NoError(err)

	teams, err := suite.teamService.GetAllTeams()
	suite.NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal("Platform", teams[0].Name)
	suite.Equal("Lara Lead", teams[0].LeadFullName)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
