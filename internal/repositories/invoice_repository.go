package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

const invoiceColumns = `id, invoice_number, customer_id, meter_log_id, period_start, period_end,
	unit_consumed, gas_rate, amc_cost, utility_tax, app_charges, penalty,
	bill_amount, amount_paid, status, due_date, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &inv.MeterLogID,
		&inv.PeriodStart, &inv.PeriodEnd, &inv.UnitConsumed, &inv.GasRate, &inv.AMCCost,
		&inv.UtilityTax, &inv.AppCharges, &inv.Penalty, &inv.BillAmount, &inv.AmountPaid,
		&inv.Status, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt)
	return &inv, err
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO invoices(invoice_number, customer_id, meter_log_id, period_start, period_end,
		        unit_consumed, gas_rate, amc_cost, utility_tax, app_charges, penalty,
		        bill_amount, status, due_date)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
         RETURNING id, created_at, updated_at`,
		inv.InvoiceNumber, inv.CustomerID, inv.MeterLogID, inv.PeriodStart, inv.PeriodEnd,
		inv.UnitConsumed, inv.GasRate, inv.AMCCost, inv.UtilityTax, inv.AppCharges,
		inv.Penalty, inv.BillAmount, inv.Status, inv.DueDate,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
}

func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	return scanInvoice(r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id))
}

func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	return scanInvoice(r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number=$1`, number))
}

func (r *InvoiceRepository) List(ctx context.Context, status string) ([]*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []any{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query, args...)
}

func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Invoice, error) {
	return r.list(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE customer_id=$1 ORDER BY created_at DESC`,
		customerID)
}

func (r *InvoiceRepository) list(ctx context.Context, query string, args ...any) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// ListWithCustomer joins the display fields the invoice table shows.
func (r *InvoiceRepository) ListWithCustomer(ctx context.Context) ([]*models.InvoiceWithCustomer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.id, i.invoice_number, i.customer_id, i.meter_log_id, i.period_start, i.period_end,
		        i.unit_consumed, i.gas_rate, i.amc_cost, i.utility_tax, i.app_charges, i.penalty,
		        i.bill_amount, i.amount_paid, i.status, i.due_date, i.created_at, i.updated_at,
		        c.name, c.phone, f.flat_number
         FROM invoices i
         JOIN customers c ON i.customer_id = c.id
         JOIN flats f ON c.flat_id = f.id
         ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.InvoiceWithCustomer
	for rows.Next() {
		var inv models.InvoiceWithCustomer
		err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &inv.MeterLogID,
			&inv.PeriodStart, &inv.PeriodEnd, &inv.UnitConsumed, &inv.GasRate, &inv.AMCCost,
			&inv.UtilityTax, &inv.AppCharges, &inv.Penalty, &inv.BillAmount, &inv.AmountPaid,
			&inv.Status, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
			&inv.CustomerName, &inv.CustomerPhone, &inv.FlatNumber)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET penalty=$1, bill_amount=$2, status=$3, due_date=$4,
		        updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		inv.Penalty, inv.BillAmount, inv.Status, inv.DueDate, inv.ID)
	return err
}

// ApplyPayment adds a captured amount to the invoice and rolls its status.
func (r *InvoiceRepository) ApplyPayment(ctx context.Context, id int, amount float64, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET amount_paid=amount_paid+$1, status=$2, updated_at=CURRENT_TIMESTAMP
         WHERE id=$3`,
		amount, status, id)
	return err
}

// MarkOverdue flips every unpaid invoice past its due date to OVERDUE and
// returns how many rows changed.
func (r *InvoiceRepository) MarkOverdue(ctx context.Context) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE invoices SET status='OVERDUE', updated_at=CURRENT_TIMESTAMP
         WHERE status='UNPAID' AND due_date < CURRENT_DATE`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	return err
}
