package handlers

import (
	"net/http"

	"taskask-backend/internal/auth"
	"taskask-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team registry operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Creates a team owned by the authenticated TEAM_LEAD; one team per lead
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Lead already owns a team"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	leadID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(&req, leadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// AddMember handles POST /teams/:teamId/members
// @Summary Add an employee to a team
// @Description Only the team's lead may add members; a user belongs to at most one team
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param member body service.AddTeamMemberRequest true "Member to add"
// @Success 204 "Member added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not the team's lead"
// @Failure 404 {object} map[string]interface{} "Team or user not found"
// @Failure 409 {object} map[string]interface{} "User already belongs to a team"
// @Security BearerAuth
// @Router /teams/{teamId}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	callerID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teamService.AddMember(teamID, &req, callerID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMyTeam handles GET /teams/mine
// @Summary Get the authenticated lead's team
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamResponse "The lead's team"
// @Failure 404 {object} map[string]interface{} "No team for this lead"
// @Security BearerAuth
// @Router /teams/mine [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	leadID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	team, err := h.teamService.GetTeamByLead(leadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetMyTeamMembers handles GET /teams/mine/members
// @Summary List the authenticated lead's team members
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamMemberResponse "Member summaries"
// @Failure 404 {object} map[string]interface{} "No team for this lead"
// @Security BearerAuth
// @Router /teams/mine/members [get]
func (h *TeamHandler) GetMyTeamMembers(c *gin.Context) {
	leadID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	members, err := h.teamService.GetMyTeamMembers(leadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetAllTeams handles GET /admin/teams
// @Summary List all teams (admin)
// @Description Returns every team including its lead's identity
// @Tags admin
// @Produce json
// @Success 200 {array} service.TeamResponse "All teams"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/teams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	teams, err := h.teamService.GetAllTeams()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
