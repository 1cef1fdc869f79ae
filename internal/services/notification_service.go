package services

import (
	"context"
	"fmt"
	"strings"

	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/internal/sms"
	"gms-backend/pkg/format"
)

// NotificationService renders an SMS template for a customer and hands the
// result to the configured provider. Delivery records live in sms_logs.
type NotificationService struct {
	Provider     sms.Provider
	SmsRepo      *repositories.SmsTemplateRepository
	CustomerRepo *repositories.CustomerRepository
	LogRepo      *repositories.SMSLogRepository
}

func NewNotificationService(
	provider sms.Provider,
	smsRepo *repositories.SmsTemplateRepository,
	customerRepo *repositories.CustomerRepository,
	logRepo *repositories.SMSLogRepository,
) *NotificationService {
	return &NotificationService{
		Provider:     provider,
		SmsRepo:      smsRepo,
		CustomerRepo: customerRepo,
		LogRepo:      logRepo,
	}
}

func (s *NotificationService) SendTemplated(ctx context.Context, req *models.SendSmsRequest) error {
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}

	tpl, err := s.SmsRepo.Get(ctx, req.TemplateID)
	if err != nil {
		return fmt.Errorf("template not found: %w", err)
	}

	values := make(map[string]string, len(req.Values)+1)
	for k, v := range req.Values {
		values[k] = v
	}
	if _, ok := values["customer_name"]; !ok {
		values["customer_name"] = customer.Name
	}

	body := RenderTemplate(tpl.Body, tpl.Variables, values)
	return s.Provider.Send(customer.Phone, body, messageTypeFor(tpl.Category), &customer.ID)
}

// SendInvoiceNotice notifies a customer that an invoice was generated for
// them, without requiring a stored template.
func (s *NotificationService) SendInvoiceNotice(ctx context.Context, inv *models.Invoice) error {
	customer, err := s.CustomerRepo.Get(ctx, inv.CustomerID)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}
	msg := fmt.Sprintf("Invoice %s for %s is due on %s.",
		inv.InvoiceNumber,
		format.FormatCurrency(inv.BillAmount),
		format.FormatDate(inv.DueDate))
	return s.Provider.Send(customer.Phone, msg, models.SMSTypeInvoice, &customer.ID)
}

func (s *NotificationService) ListLogs(ctx context.Context) ([]*models.SMSLog, error) {
	return s.LogRepo.List(ctx)
}

func messageTypeFor(category string) string {
	switch strings.ToUpper(category) {
	case models.TemplateCategoryInvoice:
		return models.SMSTypeInvoice
	case models.TemplateCategoryPayment:
		return models.SMSTypePayment
	case models.TemplateCategoryReminder:
		return models.SMSTypeReminder
	default:
		return models.SMSTypeGeneral
	}
}
