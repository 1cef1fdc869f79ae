package models

import "time"

// Customer roles
const (
	CustomerRoleOwner  = "OWNER"
	CustomerRoleTenant = "TENANT"
)

// Customer belongs to a Flat. ApprovedBy is nil until an admin approves the
// record; Disabled customers keep their history but cannot be billed.
type Customer struct {
	ID         int       `json:"id"`
	FlatID     int       `json:"flat_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	ApprovedBy *int      `json:"approved_by"`
	Disabled   bool      `json:"disabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Customer) IsApproved() bool {
	return c.ApprovedBy != nil
}

type CreateCustomerRequest struct {
	FlatID int    `json:"flat_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"required,len=10,numeric"`
	Role   string `json:"role" validate:"required,oneof=OWNER TENANT"`
}

type UpdateCustomerRequest struct {
	FlatID int    `json:"flat_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"required,len=10,numeric"`
	Role   string `json:"role" validate:"required,oneof=OWNER TENANT"`
}

type ApproveCustomerRequest struct {
	Approve bool `json:"approve"`
}
