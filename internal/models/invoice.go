package models

import "time"

// Invoice statuses (closed set)
const (
	InvoiceUnpaid        = "UNPAID"
	InvoicePaid          = "PAID"
	InvoiceOverdue       = "OVERDUE"
	InvoicePartiallyPaid = "PARTIALLY_PAID"
)

// Invoice is a billing document for a Customer covering a consumption period.
// The charge components are snapshotted from the project's cost config at
// generation time so later rate changes never rewrite issued invoices.
type Invoice struct {
	ID            int       `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerID    int       `json:"gmsCustomerId"`
	MeterLogID    *int      `json:"meter_log_id"`
	PeriodStart   time.Time `json:"period_start"`
	PeriodEnd     time.Time `json:"period_end"`
	UnitConsumed  float64   `json:"unit_consumed"`
	GasRate       float64   `json:"gas_rate"`
	AMCCost       float64   `json:"amc_cost"`
	UtilityTax    float64   `json:"utility_tax"`
	AppCharges    float64   `json:"app_charges"`
	Penalty       float64   `json:"penalty"`
	BillAmount    float64   `json:"bill_amount"`
	AmountPaid    float64   `json:"amount_paid"`
	Status        string    `json:"status"`
	DueDate       time.Time `json:"due_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type GenerateInvoiceRequest struct {
	CustomerID  int    `json:"gmsCustomerId" validate:"required,gt=0"`
	MeterLogID  int    `json:"meter_log_id" validate:"required,gt=0"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"required,datetime=2006-01-02"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type UpdateInvoiceRequest struct {
	Penalty *float64 `json:"penalty" validate:"omitempty,gte=0"`
	DueDate string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status  string   `json:"status" validate:"omitempty,oneof=PAID UNPAID OVERDUE PARTIALLY_PAID"`
}

// InvoiceWithCustomer joins display fields for the invoice table.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	FlatNumber    string `json:"flat_number"`
}
