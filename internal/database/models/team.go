package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a team owned by exactly one TEAM_LEAD user.
// The unique index on lead_id is the authoritative one-team-per-lead guard.
type Team struct {
	BaseModel
	Name   string    `json:"name" gorm:"uniqueIndex:idx_teams_name;not null;size:100" validate:"required,max=100"`
	LeadID uuid.UUID `json:"lead_id" gorm:"type:uuid;uniqueIndex:idx_teams_lead;not null"`

	// Relationships
	Lead    *User        `json:"lead,omitempty" gorm:"foreignKey:LeadID"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember joins a user into a team. The unique index on user_id enforces
// the global one-team-per-user invariant at the storage layer.
type TeamMember struct {
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;uniqueIndex:idx_team_members_user"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
