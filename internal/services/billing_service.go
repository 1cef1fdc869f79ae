package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gms-backend/internal/metrics"
	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/internal/timeutil"
)

type BillingService struct {
	InvoiceRepo    *repositories.InvoiceRepository
	PaymentRepo    *repositories.PaymentRepository
	CustomerRepo   *repositories.CustomerRepository
	MeterLogRepo   *repositories.MeterLogRepository
	FlatRepo       *repositories.FlatRepository
	CostConfigRepo *repositories.CostConfigRepository
}

func NewBillingService(
	invoiceRepo *repositories.InvoiceRepository,
	paymentRepo *repositories.PaymentRepository,
	customerRepo *repositories.CustomerRepository,
	meterLogRepo *repositories.MeterLogRepository,
	flatRepo *repositories.FlatRepository,
	costConfigRepo *repositories.CostConfigRepository,
) *BillingService {
	return &BillingService{
		InvoiceRepo:    invoiceRepo,
		PaymentRepo:    paymentRepo,
		CustomerRepo:   customerRepo,
		MeterLogRepo:   meterLogRepo,
		FlatRepo:       flatRepo,
		CostConfigRepo: costConfigRepo,
	}
}

// ComputeBillAmount combines the charge components into the invoice total:
// consumption at the gas rate, plus the fixed AMC, tax and app charges, plus
// any penalty. Rounded to paise.
func ComputeBillAmount(units float64, cfg *models.CostConfig, penalty float64) float64 {
	total := units*cfg.GasRate + cfg.AMCCost + cfg.UtilityTax + cfg.AppCharges + penalty
	return math.Round(total*100) / 100
}

// NextStatus rolls an invoice's status after a captured payment.
func NextStatus(billAmount, paidSoFar, payment float64) string {
	if paidSoFar+payment >= billAmount {
		return models.InvoicePaid
	}
	return models.InvoicePartiallyPaid
}

// GenerateInvoice builds an invoice from a meter log, snapshotting the rates
// from the customer's project cost config.
func (s *BillingService) GenerateInvoice(ctx context.Context, req *models.GenerateInvoiceRequest) (*models.Invoice, error) {
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	if customer.Disabled {
		return nil, errors.New("customer is disabled")
	}
	if !customer.IsApproved() {
		return nil, errors.New("customer is not approved")
	}

	log, err := s.MeterLogRepo.Get(ctx, req.MeterLogID)
	if err != nil {
		return nil, errors.New("meter log not found")
	}
	if log.Status != models.MeterLogValid {
		return nil, errors.New("cannot invoice an invalid meter reading")
	}

	loc, err := s.FlatRepo.GetLocation(ctx, customer.FlatID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve flat location: %w", err)
	}

	cfg, err := s.CostConfigRepo.GetForProject(ctx, loc.ProjectID)
	if err != nil {
		return nil, errors.New("no cost configuration for this project")
	}

	periodStart, err := timeutil.ParseInIST(timeutil.DateLayout, req.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("invalid period_start: %w", err)
	}
	periodEnd, err := timeutil.ParseInIST(timeutil.DateLayout, req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid period_end: %w", err)
	}
	if periodEnd.Before(periodStart) {
		return nil, errors.New("period_end must not be before period_start")
	}
	dueDate, err := timeutil.ParseInIST(timeutil.DateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due_date: %w", err)
	}

	logID := log.ID
	inv := &models.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%s-%d-%d", timeutil.Now().Format("200601"), customer.ID, timeutil.Now().Unix()),
		CustomerID:    customer.ID,
		MeterLogID:    &logID,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		UnitConsumed:  log.UnitsConsumed,
		GasRate:       cfg.GasRate,
		AMCCost:       cfg.AMCCost,
		UtilityTax:    cfg.UtilityTax,
		AppCharges:    cfg.AppCharges,
		Penalty:       0,
		BillAmount:    ComputeBillAmount(log.UnitsConsumed, cfg, 0),
		Status:        models.InvoiceUnpaid,
		DueDate:       dueDate,
	}

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	metrics.InvoicesGenerated.Inc()
	return inv, nil
}

func (s *BillingService) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return s.InvoiceRepo.Get(ctx, id)
}

func (s *BillingService) GetInvoiceByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	return s.InvoiceRepo.GetByNumber(ctx, number)
}

func (s *BillingService) ListInvoices(ctx context.Context, status string) ([]*models.Invoice, error) {
	return s.InvoiceRepo.List(ctx, status)
}

func (s *BillingService) ListInvoicesWithCustomer(ctx context.Context) ([]*models.InvoiceWithCustomer, error) {
	return s.InvoiceRepo.ListWithCustomer(ctx)
}

func (s *BillingService) ListInvoicesByCustomer(ctx context.Context, customerID int) ([]*models.Invoice, error) {
	return s.InvoiceRepo.ListByCustomer(ctx, customerID)
}

// UpdateInvoice applies penalty/due-date/status edits. A penalty change
// recomputes the bill amount from the snapshotted components.
func (s *BillingService) UpdateInvoice(ctx context.Context, id int, req *models.UpdateInvoiceRequest) (*models.Invoice, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Penalty != nil {
		inv.BillAmount = inv.BillAmount - inv.Penalty + *req.Penalty
		inv.Penalty = *req.Penalty
	}
	if req.DueDate != "" {
		dueDate, err := timeutil.ParseInIST(timeutil.DateLayout, req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date: %w", err)
		}
		inv.DueDate = dueDate
	}
	if req.Status != "" {
		inv.Status = req.Status
	}

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *BillingService) DeleteInvoice(ctx context.Context, id int) error {
	return s.InvoiceRepo.Delete(ctx, id)
}

// MarkOverdueInvoices is run daily; unpaid invoices past due become OVERDUE.
func (s *BillingService) MarkOverdueInvoices(ctx context.Context) (int64, error) {
	return s.InvoiceRepo.MarkOverdue(ctx)
}

// RecordPayment stores the payment and rolls the invoice status. Last write
// wins under concurrent edits; the cache invalidation on success is what
// refreshes stale list reads.
func (s *BillingService) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	inv, err := s.InvoiceRepo.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, errors.New("invoice not found")
	}
	if inv.Status == models.InvoicePaid {
		return nil, errors.New("invoice is already paid")
	}

	payment := &models.Payment{
		InvoiceID: inv.ID,
		Amount:    req.Amount,
		Method:    req.Method,
		Penalty:   req.Penalty,
		Status:    models.PaymentCaptured,
		Reference: req.Reference,
		PaidAt:    timeutil.Now(),
	}

	if err := s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	next := NextStatus(inv.BillAmount, inv.AmountPaid, req.Amount)
	if err := s.InvoiceRepo.ApplyPayment(ctx, inv.ID, req.Amount, next); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.WithLabelValues(req.Method).Inc()
	return payment, nil
}

func (s *BillingService) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	return s.PaymentRepo.Get(ctx, id)
}

func (s *BillingService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.PaymentRepo.List(ctx)
}

func (s *BillingService) ListPaymentsByInvoice(ctx context.Context, invoiceID int) ([]*models.Payment, error) {
	return s.PaymentRepo.ListByInvoice(ctx, invoiceID)
}
