package models

import "time"

// MeterLog validity statuses
const (
	MeterLogValid   = "VALID"
	MeterLogInvalid = "INVALID"
)

// MeterLog is one reading event for a Meter. UnitsConsumed is computed
// server-side as current minus previous; a reading below the previous one is
// stored with status INVALID so it never feeds an invoice.
type MeterLog struct {
	ID              int       `json:"id"`
	MeterID         int       `json:"meter_id"`
	AgentID         *int      `json:"agent_id"`
	PreviousReading float64   `json:"previous_reading"`
	CurrentReading  float64   `json:"current_reading"`
	UnitsConsumed   float64   `json:"units_consumed"`
	ImageKey        string    `json:"image_key"`
	Status          string    `json:"status"`
	ReadAt          time.Time `json:"read_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateMeterLogRequest arrives as multipart form data: the reading fields plus
// an optional meter image capped at 2MB.
type CreateMeterLogRequest struct {
	MeterID        int     `json:"meter_id" validate:"required,gt=0"`
	AgentID        *int    `json:"agent_id" validate:"omitempty,gt=0"`
	CurrentReading float64 `json:"current_reading" validate:"gte=0"`
}

type UpdateMeterLogRequest struct {
	CurrentReading float64 `json:"current_reading" validate:"gte=0"`
	Status         string  `json:"status" validate:"omitempty,oneof=VALID INVALID"`
}
