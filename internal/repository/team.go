package repository

import (
	"taskask-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByLeadID retrieves the team owned by a lead
func (r *TeamRepository) GetByLeadID(leadID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "lead_id = ?", leadID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllWithLeads retrieves all teams with their lead preloaded
func (r *TeamRepository) GetAllWithLeads() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Lead").Order("created_at").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
