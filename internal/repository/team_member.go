package repository

import (
	"taskask-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team membership
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByUserID retrieves a user's membership, if any
func (r *TeamMemberRepository) GetByUserID(userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeamID retrieves all memberships of a team with the user preloaded
func (r *TeamMemberRepository) GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("User").Where("team_id = ?", teamID).Order("created_at").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
