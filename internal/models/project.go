package models

import "time"

// Project is the top of the property hierarchy: Project -> Tower -> Wing -> Floor -> Flat.
type Project struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	CityID       int       `json:"city_id"`
	LocalityID   int       `json:"locality_id"`
	CostConfigID *int      `json:"cost_config_id"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name         string `json:"name" validate:"required"`
	CityID       int    `json:"city_id" validate:"required,gt=0"`
	LocalityID   int    `json:"locality_id" validate:"required,gt=0"`
	CostConfigID *int   `json:"cost_config_id" validate:"omitempty,gt=0"`
	Address      string `json:"address"`
}

type UpdateProjectRequest struct {
	Name         string `json:"name" validate:"required"`
	CityID       int    `json:"city_id" validate:"required,gt=0"`
	LocalityID   int    `json:"locality_id" validate:"required,gt=0"`
	CostConfigID *int   `json:"cost_config_id" validate:"omitempty,gt=0"`
	Address      string `json:"address"`
}
