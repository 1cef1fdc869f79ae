package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

const customerColumns = `id, flat_id, name, COALESCE(email, '') as email, phone, role,
	approved_by, disabled, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.FlatID, &c.Name, &c.Email, &c.Phone, &c.Role,
		&c.ApprovedBy, &c.Disabled, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO customers(flat_id, name, email, phone, role)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		c.FlatID, c.Name, c.Email, c.Phone, c.Role,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	return scanCustomer(r.DB.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id=$1`, id))
}

// List returns customers, optionally narrowed by a case-insensitive search over
// name/phone/email and by role. The filter is applied in SQL so repeating the
// same input always yields the same result set.
func (r *CustomerRepository) List(ctx context.Context, search, role string) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	args := []any{}

	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND (name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1)`
	}
	if role != "" {
		args = append(args, role)
		if len(args) == 1 {
			query += ` AND role=$1`
		} else {
			query += ` AND role=$2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) ListByFlat(ctx context.Context, flatID int) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE flat_id=$1 ORDER BY created_at DESC`, flatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customers SET flat_id=$1, name=$2, email=$3, phone=$4, role=$5,
		        updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		c.FlatID, c.Name, c.Email, c.Phone, c.Role, c.ID)
	return err
}

// SetApproval records who approved the customer, or clears the approval when
// approvedBy is nil.
func (r *CustomerRepository) SetApproval(ctx context.Context, id int, approvedBy *int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customers SET approved_by=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		approvedBy, id)
	return err
}

func (r *CustomerRepository) ToggleDisabled(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customers SET disabled=NOT disabled, updated_at=CURRENT_TIMESTAMP WHERE id=$1`, id)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}
