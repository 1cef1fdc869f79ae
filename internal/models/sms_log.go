package models

import "time"

// SMS message types
const (
	SMSTypeInvoice  = "invoice"
	SMSTypePayment  = "payment"
	SMSTypeReminder = "reminder"
	SMSTypeGeneral  = "general"
)

// SMS delivery statuses
const (
	SMSStatusPending = "pending"
	SMSStatusSent    = "sent"
	SMSStatusFailed  = "failed"
)

// SMSLog records every outbound SMS for auditing and cost tracking.
type SMSLog struct {
	ID          int       `json:"id"`
	CustomerID  *int      `json:"customer_id"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	MessageType string    `json:"message_type"`
	Status      string    `json:"status"`
	Cost        float64   `json:"cost"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendSmsRequest struct {
	TemplateID int               `json:"template_id" validate:"required,gt=0"`
	CustomerID int               `json:"customer_id" validate:"required,gt=0"`
	Values     map[string]string `json:"values"`
}
