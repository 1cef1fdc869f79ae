package models

import "time"

// Report types
const (
	ReportTypeInvoices    = "INVOICES"
	ReportTypePayments    = "PAYMENTS"
	ReportTypeConsumption = "CONSUMPTION"
	ReportTypeCustomers   = "CUSTOMERS"
)

// Report statuses
const (
	ReportReady  = "READY"
	ReportFailed = "FAILED"
)

// Report is a generated artifact record. The binary itself is fetched through
// the download-by-id side channel; ContentType selects the saved extension.
type Report struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Format      string    `json:"format"`
	Status      string    `json:"status"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	FileKey     string    `json:"file_key"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type GenerateReportRequest struct {
	Type      string `json:"type" validate:"required,oneof=INVOICES PAYMENTS CONSUMPTION CUSTOMERS"`
	Format    string `json:"format" validate:"required,oneof=csv pdf"`
	ProjectID int    `json:"project_id" validate:"omitempty,gt=0"`
	From      string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}
