package service

import (
	"time"

	"taskask-backend/internal/database/models"
	apperrors "taskask-backend/internal/errors"
	"taskask-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles team creation and membership.
// The application-level existence checks are race-prone on their own; the
// unique indexes on teams.lead_id and team_members.user_id are the
// authoritative guards.
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// AddTeamMemberRequest identifies the employee to add
type AddTeamMemberRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// TeamResponse represents the response data for a team, including the lead
// identity for the admin view
type TeamResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LeadID       uuid.UUID `json:"leadId"`
	LeadFullName string    `json:"leadFullName,omitempty"`
	LeadEmail    string    `json:"leadEmail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TeamMemberResponse is the member summary shape
type TeamMemberResponse struct {
	UserID   uuid.UUID `json:"userId"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
}

// CreateTeam creates a team owned by the given lead (must be TEAM_LEAD,
// one team per lead)
func (s *TeamService) CreateTeam(req *CreateTeamRequest, leadID uuid.UUID) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	lead, err := s.userRepo.GetByID(leadID)
	if err != nil || lead == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if lead.Role != models.RoleTeamLead {
		return nil, apperrors.ErrLeadRoleRequired
	}

	// One team per lead
	if existing, err := s.repo.GetByLeadID(leadID); err == nil && existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:   req.Name,
		LeadID: lead.ID,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, err
	}

	return &TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		LeadID:       team.LeadID,
		LeadFullName: lead.FullName,
		LeadEmail:    lead.Email,
		CreatedAt:    team.CreatedAt,
	}, nil
}

// AddMember adds an employee to a team. Only the team's own lead may add
// members, and a user belongs to at most one team ever.
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddTeamMemberRequest, callerID uuid.UUID) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil || team == nil {
		return apperrors.ErrTeamNotFound
	}

	if team.LeadID != callerID {
		return apperrors.ErrNotTeamLead
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil || user == nil {
		return apperrors.ErrUserNotFound
	}
	if user.Role != models.RoleEmployee {
		return apperrors.ErrMemberNotEmployee
	}

	// One team per user, ever
	if existing, err := s.memberRepo.GetByUserID(user.ID); err == nil && existing != nil {
		return apperrors.ErrTeamMemberExists
	}

	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: user.ID,
	}
	return s.memberRepo.Create(member)
}

// GetMyTeamMembers lists the members of the lead's own team
func (s *TeamService) GetMyTeamMembers(leadID uuid.UUID) ([]TeamMemberResponse, error) {
	team, err := s.repo.GetByLeadID(leadID)
	if err != nil || team == nil {
		return nil, apperrors.ErrTeamForLeadNotFound
	}

	members, err := s.memberRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		if member.User == nil {
			continue
		}
		responses = append(responses, TeamMemberResponse{
			UserID:   member.User.ID,
			FullName: member.User.FullName,
			Email:    member.User.Email,
		})
	}
	return responses, nil
}

// GetTeamByLead returns the lead's own team
func (s *TeamService) GetTeamByLead(leadID uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByLeadID(leadID)
	if err != nil || team == nil {
		return nil, apperrors.ErrTeamForLeadNotFound
	}
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		LeadID:    team.LeadID,
		CreatedAt: team.CreatedAt,
	}, nil
}

// GetAllTeams returns the admin view of all teams with lead identities
func (s *TeamService) GetAllTeams() ([]TeamResponse, error) {
	teams, err := s.repo.GetAllWithLeads()
	if err != nil {
		return nil, err
	}

	responses := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		response := TeamResponse{
			ID:        team.ID,
			Name:      team.Name,
			LeadID:    team.LeadID,
			CreatedAt: team.CreatedAt,
		}
		if team.Lead != nil {
			response.LeadFullName = team.Lead.FullName
			response.LeadEmail = team.Lead.Email
		}
		responses = append(responses, response)
	}
	return responses, nil
}
