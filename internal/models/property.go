package models

import "time"

// Tower, Wing, Floor and Flat form the nested property hierarchy. Every child
// requires a valid parent id; the leaf Flat is the billable unit.

type Tower struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTowerRequest struct {
	ProjectID int    `json:"project_id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
}

type Wing struct {
	ID        int       `json:"id"`
	TowerID   int       `json:"tower_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateWingRequest struct {
	TowerID int    `json:"tower_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required"`
}

type Floor struct {
	ID        int       `json:"id"`
	WingID    int       `json:"wing_id"`
	Number    int       `json:"number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateFloorRequest struct {
	WingID int `json:"wing_id" validate:"required,gt=0"`
	Number int `json:"number" validate:"gte=0"`
}

type Flat struct {
	ID         int       `json:"id"`
	FloorID    int       `json:"floor_id"`
	FlatNumber string    `json:"flat_number"`
	Area       float64   `json:"area"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateFlatRequest struct {
	FloorID    int     `json:"floor_id" validate:"required,gt=0"`
	FlatNumber string  `json:"flat_number" validate:"required"`
	Area       float64 `json:"area" validate:"gte=0"`
}

// FlatLocation is the full Tower -> Wing -> Floor -> Flat path for display.
type FlatLocation struct {
	FlatID      int    `json:"flat_id"`
	FlatNumber  string `json:"flat_number"`
	FloorNumber int    `json:"floor_number"`
	WingName    string `json:"wing_name"`
	TowerName   string `json:"tower_name"`
	ProjectID   int    `json:"project_id"`
}
