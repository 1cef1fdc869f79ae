package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/internal/storage"
	"gms-backend/internal/timeutil"
	"gms-backend/pkg/format"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService builds CSV and PDF exports, stores the artifact in the object
// store and keeps a reports row so the file can be re-downloaded by id.
type ReportService struct {
	ReportRepo   *repositories.ReportRepository
	InvoiceRepo  *repositories.InvoiceRepository
	PaymentRepo  *repositories.PaymentRepository
	CustomerRepo *repositories.CustomerRepository
	MeterLogRepo *repositories.MeterLogRepository
	Store        *storage.ObjectStore
}

func NewReportService(
	reportRepo *repositories.ReportRepository,
	invoiceRepo *repositories.InvoiceRepository,
	paymentRepo *repositories.PaymentRepository,
	customerRepo *repositories.CustomerRepository,
	meterLogRepo *repositories.MeterLogRepository,
	store *storage.ObjectStore,
) *ReportService {
	return &ReportService{
		ReportRepo:   reportRepo,
		InvoiceRepo:  invoiceRepo,
		PaymentRepo:  paymentRepo,
		CustomerRepo: customerRepo,
		MeterLogRepo: meterLogRepo,
		Store:        store,
	}
}

// reportTable is the flat header+rows shape both renderers consume.
type reportTable struct {
	Title  string
	Header []string
	Rows   [][]string
}

func (s *ReportService) Generate(ctx context.Context, req *models.GenerateReportRequest, userID int) (*models.Report, error) {
	table, err := s.buildTable(ctx, req)
	if err != nil {
		return nil, err
	}

	var data []byte
	var contentType string
	switch req.Format {
	case "pdf":
		data, err = renderPDF(table)
		contentType = "application/pdf"
	default:
		data, err = renderCSV(table)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", req.Type, err)
	}

	ext := format.ExtensionForContentType(contentType)
	rep := &models.Report{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Format:      req.Format,
		Status:      models.ReportReady,
		ContentType: contentType,
		CreatedBy:   userID,
	}
	rep.FileName = fmt.Sprintf("%s-%s%s", reportBaseName(req.Type), timeutil.Now().Format("20060102"), ext)
	rep.FileKey = fmt.Sprintf("reports/%s%s", rep.ID, ext)

	if err := s.Store.Put(ctx, rep.FileKey, contentType, data); err != nil {
		rep.Status = models.ReportFailed
		if createErr := s.ReportRepo.Create(ctx, rep); createErr != nil {
			return nil, createErr
		}
		return nil, fmt.Errorf("failed to store report artifact: %w", err)
	}

	if err := s.ReportRepo.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *ReportService) List(ctx context.Context) ([]*models.Report, error) {
	return s.ReportRepo.List(ctx)
}

// Download returns the report row together with the stored bytes.
func (s *ReportService) Download(ctx context.Context, id string) (*models.Report, []byte, error) {
	rep, err := s.ReportRepo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.Store.Get(ctx, rep.FileKey)
	if err != nil {
		return nil, nil, err
	}
	return rep, data, nil
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	rep, err := s.ReportRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, rep.FileKey); err != nil {
		return err
	}
	return s.ReportRepo.Delete(ctx, id)
}

func (s *ReportService) buildTable(ctx context.Context, req *models.GenerateReportRequest) (*reportTable, error) {
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return nil, err
	}

	switch req.Type {
	case models.ReportTypeInvoices:
		return s.invoiceTable(ctx, from, to)
	case models.ReportTypePayments:
		return s.paymentTable(ctx, from, to)
	case models.ReportTypeConsumption:
		return s.consumptionTable(ctx, from, to)
	case models.ReportTypeCustomers:
		return s.customerTable(ctx)
	default:
		return nil, fmt.Errorf("unknown report type: %s", req.Type)
	}
}

// parsePeriod turns optional YYYY-MM-DD bounds into an inclusive IST window.
// Missing bounds widen to everything.
func parsePeriod(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := timeutil.Now().AddDate(100, 0, 0)

	if fromStr != "" {
		t, err := timeutil.ParseInIST(timeutil.DateLayout, fromStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid from date: %w", err)
		}
		from = timeutil.StartOfDay(t)
	}
	if toStr != "" {
		t, err := timeutil.ParseInIST(timeutil.DateLayout, toStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid to date: %w", err)
		}
		to = timeutil.EndOfDay(t)
	}
	return from, to, nil
}

func inPeriod(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func (s *ReportService) invoiceTable(ctx context.Context, from, to time.Time) (*reportTable, error) {
	invoices, err := s.InvoiceRepo.ListWithCustomer(ctx)
	if err != nil {
		return nil, err
	}

	table := &reportTable{
		Title:  "Invoice Report",
		Header: []string{"Invoice #", "Customer", "Flat", "Units", "Bill Amount", "Paid", "Status", "Due Date"},
	}
	for _, inv := range invoices {
		if !inPeriod(inv.CreatedAt, from, to) {
			continue
		}
		table.Rows = append(table.Rows, []string{
			inv.InvoiceNumber,
			inv.CustomerName,
			inv.FlatNumber,
			strconv.FormatFloat(inv.UnitConsumed, 'f', 2, 64),
			format.FormatCurrency(inv.BillAmount),
			format.FormatCurrency(inv.AmountPaid),
			inv.Status,
			format.FormatDate(inv.DueDate),
		})
	}
	return table, nil
}

func (s *ReportService) paymentTable(ctx context.Context, from, to time.Time) (*reportTable, error) {
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	table := &reportTable{
		Title:  "Payment Report",
		Header: []string{"Payment #", "Invoice", "Amount", "Method", "Status", "Reference", "Paid At"},
	}
	for _, p := range payments {
		if !inPeriod(p.PaidAt, from, to) {
			continue
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.InvoiceID),
			format.FormatCurrency(p.Amount),
			p.Method,
			p.Status,
			p.Reference,
			format.FormatTimestamp(p.PaidAt),
		})
	}
	return table, nil
}

func (s *ReportService) consumptionTable(ctx context.Context, from, to time.Time) (*reportTable, error) {
	logs, err := s.MeterLogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	table := &reportTable{
		Title:  "Consumption Report",
		Header: []string{"Log #", "Meter", "Previous", "Current", "Units", "Status", "Read At"},
	}
	for _, l := range logs {
		if !inPeriod(l.ReadAt, from, to) {
			continue
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(l.ID),
			strconv.Itoa(l.MeterID),
			strconv.FormatFloat(l.PreviousReading, 'f', 2, 64),
			strconv.FormatFloat(l.CurrentReading, 'f', 2, 64),
			strconv.FormatFloat(l.UnitsConsumed, 'f', 2, 64),
			l.Status,
			format.FormatTimestamp(l.ReadAt),
		})
	}
	return table, nil
}

func (s *ReportService) customerTable(ctx context.Context) (*reportTable, error) {
	customers, err := s.CustomerRepo.List(ctx, "", "")
	if err != nil {
		return nil, err
	}

	table := &reportTable{
		Title:  "Customer Report",
		Header: []string{"ID", "Name", "Phone", "Email", "Role", "Approved", "Disabled", "Registered"},
	}
	for _, c := range customers {
		approved := "NO"
		if c.IsApproved() {
			approved = "YES"
		}
		disabled := "NO"
		if c.Disabled {
			disabled = "YES"
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Phone,
			c.Email,
			c.Role,
			approved,
			disabled,
			format.FormatDate(c.CreatedAt),
		})
	}
	return table, nil
}

func renderCSV(table *reportTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Header); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfCell prepares a value for the core Arial font, which cannot render the
// rupee sign, and truncates by rune so multi-byte characters are never split.
func pdfCell(cell string) string {
	cell = strings.ReplaceAll(cell, "₹", "Rs. ")
	runes := []rune(cell)
	if len(runes) > 28 {
		return string(runes[:25]) + "..."
	}
	return cell
}

func renderPDF(table *reportTable) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for wide tables
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "GMS Admin - "+table.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	colWidth := 277.0 / float64(len(table.Header))

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for _, h := range table.Header {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Table rows
	pdf.SetFont("Arial", "", 9)
	for _, row := range table.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 6, pdfCell(cell), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(277, 6, fmt.Sprintf("Total rows: %d", len(table.Rows)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reportBaseName(reportType string) string {
	switch reportType {
	case models.ReportTypeInvoices:
		return "invoices"
	case models.ReportTypePayments:
		return "payments"
	case models.ReportTypeConsumption:
		return "consumption"
	case models.ReportTypeCustomers:
		return "customers"
	default:
		return "report"
	}
}
