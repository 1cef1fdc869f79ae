package models

import "time"

// CostConfig is a named set of billing-rate constants referenced by Projects.
// Invoice generation snapshots these values onto the invoice row.
type CostConfig struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	GasRate     float64   `json:"gas_rate"`
	AMCCost     float64   `json:"amc_cost"`
	UtilityTax  float64   `json:"utility_tax"`
	AppCharges  float64   `json:"app_charges"`
	PenaltyRate float64   `json:"penalty_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCostConfigRequest struct {
	Name        string  `json:"name" validate:"required"`
	GasRate     float64 `json:"gas_rate" validate:"gte=0"`
	AMCCost     float64 `json:"amc_cost" validate:"gte=0"`
	UtilityTax  float64 `json:"utility_tax" validate:"gte=0"`
	AppCharges  float64 `json:"app_charges" validate:"gte=0"`
	PenaltyRate float64 `json:"penalty_rate" validate:"gte=0"`
}
