package handlers_test

import (
	"net/http"
	"testing"

	"taskask-backend/internal/api/handlers"
	"taskask-backend/internal/auth"
	"taskask-backend/internal/database/models"
	"taskask-backend/internal/service"
	"taskask-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// actAs injects validated claims the way RequireAuth does, without a token
func actAs(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("auth_claims", &auth.AuthClaims{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		})
		c.Next()
	}
}

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	userRepo   *testutils.FakeUserRepo
	teamRepo   *testutils.FakeTeamRepo
	memberRepo *testutils.FakeTeamMemberRepo
	handler    *handlers.TeamHandler

	lead     *models.User
	employee *models.User
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.userRepo = testutils.NewFakeUserRepo()
	suite.teamRepo = testutils.NewFakeTeamRepo(suite.userRepo)
	suite.memberRepo = testutils.NewFakeTeamMemberRepo(suite.userRepo)

	teamService := service.NewTeamService(suite.teamRepo, suite.memberRepo, suite.userRepo, validator.New())
	suite.handler = handlers.NewTeamHandler(teamService)

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

// routerAs builds a router whose caller identity is fixed to the given user
func (suite *TeamHandlerTestSuite) routerAs(user *models.User) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()

	teams := httpSuite.Router.Group("/api/teams", actAs(user))
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.POST("/:teamId/members", suite.handler.AddMember)
		teams.GET("/mine", suite.handler.GetMyTeam)
		teams.GET("/mine/members", suite.handler.GetMyTeamMembers)
	}
	httpSuite.Router.GET("/api/admin/teams", actAs(user), suite.handler.GetAllTeams)

	return httpSuite
}

// TestCreateTeam tests POST /api/teams
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	httpSuite := suite.routerAs(suite.lead)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Platform",
	})

	var created service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)
	suite.Equal("Platform", created.Name)
	suite.Equal(suite.lead.ID, created.LeadID)
	suite.Equal("Lara Lead", created.LeadFullName)
}

// TestCreateTeamWrongRole tests that non-leads get a validation failure
func (suite *TeamHandlerTestSuite) TestCreateTeamWrongRole() {
	httpSuite := suite.routerAs(suite.employee)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Rogue",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "TEAM_LEAD")
}

// TestCreateTeamConflict tests the one-team-per-lead rule over HTTP
func (suite *TeamHandlerTestSuite) TestCreateTeamConflict() {
	httpSuite := suite.routerAs(suite.lead)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/teams", map[string]interface{}{"name": "First"})
	suite.Equal(http.StatusCreated, recorder.Code)

	recorder = httpSuite.MakeRequest(http.MethodPost, "/api/teams", map[string]interface{}{"name": "Second"})
	suite.Equal(http.StatusConflict, recorder.Code)
}

// TestAddMember tests POST /api/teams/:teamId/members
func (suite *TeamHandlerTestSuite) TestAddMember() {
	httpSuite := suite.routerAs(suite.lead)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/teams", map[string]interface{}{"name": "Platform"})
	var created service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)

	recorder = httpSuite.MakeRequest(http.MethodPost, "/api/teams/"+created.ID.String()+"/members", map[string]interface{}{
		"userId": suite.employee.ID,
	})
	suite.Equal(http.StatusNoContent, recorder.Code)

	recorder = httpSuite.MakeRequest(http.MethodGet, "/api/teams/mine/members", nil)
	var members []service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &members)
	suite.Require().Len(members, 1)
	suite.Equal(suite.employee.ID, members[0].UserID)
}

// TestAddMemberForeignLead tests that another lead is rejected with 403
func (suite *TeamHandlerTestSuite) TestAddMemberForeignLead() {
	leadSuite := suite.routerAs(suite.lead)
	recorder := leadSuite.MakeRequest(http.MethodPost, "/api/teams", map[string]interface{}{"name": "Platform"})
	var created service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)

	otherLead := suite.userRepo.Seed(&models.User{
		FullName: "Otto Other",
		Email:    "otto@example.com",
		Role:     models.RoleTeamLead,
		IsActive: true,
	})
	otherSuite := suite.routerAs(otherLead)

	recorder = otherSuite.MakeRequest(http.MethodPost, "/api/teams/"+created.ID.String()+"/members", map[string]interface{}{
		"userId": suite.employee.ID,
	})
	suite.Equal(http.StatusForbidden, recorder.Code)
}

// TestAddMemberUnknownTeam tests an unresolved team id
func (suite *TeamHandlerTestSuite) TestAddMemberUnknownTeam() {
	httpSuite := suite.routerAs(suite.lead)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/teams/"+uuid.NewString()+"/members", map[string]interface{}{
		"userId": suite.employee.ID,
	})
	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestGetMyTeamNotFound tests a lead without a team
func (suite *TeamHandlerTestSuite) TestGetMyTeamNotFound() {
	httpSuite := suite.routerAs(suite.lead)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/teams/mine", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestGetAllTeams tests the admin listing
func (suite *TeamHandlerTestSuite) TestGetAllTeams() {
	httpSuite := suite.routerAs(suite.lead)
	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/teams", map[string]interface{}{"name": "Platform"})
	suite.Equal(http.StatusCreated, recorder.Code)

	recorder = httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams", nil)
	var teams []service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &teams)
	suite.Len(teams, 1)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
