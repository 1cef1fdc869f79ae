package models

import "time"

type City struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCityRequest struct {
	Name  string `json:"name" validate:"required"`
	State string `json:"state" validate:"required"`
}

type Locality struct {
	ID        int       `json:"id"`
	CityID    int       `json:"city_id"`
	Name      string    `json:"name"`
	Pincode   string    `json:"pincode"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateLocalityRequest struct {
	CityID  int    `json:"city_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
}
