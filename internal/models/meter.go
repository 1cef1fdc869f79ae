package models

import "time"

// Meter is a physical gas meter assigned to a single Flat.
type Meter struct {
	ID           int       `json:"id"`
	FlatID       int       `json:"flat_id"`
	ProjectID    int       `json:"project_id"`
	SerialNumber string    `json:"serial_number"`
	InstalledOn  time.Time `json:"installed_on"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateMeterRequest struct {
	FlatID       int    `json:"flat_id" validate:"required,gt=0"`
	ProjectID    int    `json:"project_id" validate:"required,gt=0"`
	SerialNumber string `json:"serial_number" validate:"required"`
	InstalledOn  string `json:"installed_on" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateMeterRequest struct {
	SerialNumber string `json:"serial_number" validate:"required"`
	IsActive     *bool  `json:"is_active"`
}
