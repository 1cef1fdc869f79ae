package models

import "time"

// Agent is a field meter reader assigned to a project.
type Agent struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAgentRequest struct {
	ProjectID int    `json:"project_id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type UpdateAgentRequest struct {
	ProjectID int    `json:"project_id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	Email     string `json:"email" validate:"omitempty,email"`
	IsActive  *bool  `json:"is_active"`
}
