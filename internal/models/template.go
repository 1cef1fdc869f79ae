package models

import "time"

// Template categories (shared by SMS and email templates)
const (
	TemplateCategoryInvoice  = "INVOICE"
	TemplateCategoryPayment  = "PAYMENT"
	TemplateCategoryReminder = "REMINDER"
	TemplateCategoryGeneral  = "GENERAL"
)

// SmsTemplate is a message template with {{variable}} placeholders substituted
// at render time from the Variables map.
type SmsTemplate struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Category  string            `json:"category"`
	Body      string            `json:"body"`
	Variables map[string]string `json:"variables"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type CreateSmsTemplateRequest struct {
	Name      string            `json:"name" validate:"required"`
	Category  string            `json:"category" validate:"required,oneof=INVOICE PAYMENT REMINDER GENERAL"`
	Body      string            `json:"body" validate:"required"`
	Variables map[string]string `json:"variables"`
}

type EmailTemplate struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Category  string            `json:"category"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body"`
	Variables map[string]string `json:"variables"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type CreateEmailTemplateRequest struct {
	Name      string            `json:"name" validate:"required"`
	Category  string            `json:"category" validate:"required,oneof=INVOICE PAYMENT REMINDER GENERAL"`
	Subject   string            `json:"subject" validate:"required"`
	Body      string            `json:"body" validate:"required"`
	Variables map[string]string `json:"variables"`
}

// RenderTemplateRequest previews a template with caller-supplied values.
type RenderTemplateRequest struct {
	Values map[string]string `json:"values"`
}

type RenderedTemplate struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}
