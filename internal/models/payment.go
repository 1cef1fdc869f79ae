package models

import "time"

// Payment statuses
const (
	PaymentPending  = "PENDING"
	PaymentCaptured = "CAPTURED"
	PaymentFailed   = "FAILED"
)

// Payment methods
const (
	PaymentMethodCash    = "CASH"
	PaymentMethodUPI     = "UPI"
	PaymentMethodCard    = "CARD"
	PaymentMethodGateway = "GATEWAY"
)

// Payment belongs to an Invoice. Recording a captured payment rolls the
// invoice status forward (PARTIALLY_PAID, then PAID once covered).
type Payment struct {
	ID        int       `json:"id"`
	InvoiceID int       `json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Penalty   float64   `json:"penalty"`
	Status    string    `json:"status"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePaymentRequest struct {
	InvoiceID int     `json:"invoice_id" validate:"required,gt=0"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=CASH UPI CARD GATEWAY"`
	Penalty   float64 `json:"penalty" validate:"gte=0"`
	Reference string  `json:"reference"`
}

// GatewayFeedResponse wraps the three read-only Razorpay list feeds
// (orders, payments, settlements) into one paginated shape.
type GatewayFeedResponse struct {
	Entity string                   `json:"entity"`
	Count  int                      `json:"count"`
	Items  []map[string]interface{} `json:"items"`
}
