package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MeterRepository struct {
	DB *pgxpool.Pool
}

func NewMeterRepository(db *pgxpool.Pool) *MeterRepository {
	return &MeterRepository{DB: db}
}

const meterColumns = `id, flat_id, project_id, serial_number, installed_on, is_active, created_at, updated_at`

func scanMeter(row interface{ Scan(...any) error }) (*models.Meter, error) {
	var m models.Meter
	err := row.Scan(&m.ID, &m.FlatID, &m.ProjectID, &m.SerialNumber, &m.InstalledOn,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *MeterRepository) Create(ctx context.Context, m *models.Meter) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO meters(flat_id, project_id, serial_number, installed_on)
         VALUES($1, $2, $3, $4)
         RETURNING id, is_active, created_at, updated_at`,
		m.FlatID, m.ProjectID, m.SerialNumber, m.InstalledOn,
	).Scan(&m.ID, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MeterRepository) Get(ctx context.Context, id int) (*models.Meter, error) {
	return scanMeter(r.DB.QueryRow(ctx,
		`SELECT `+meterColumns+` FROM meters WHERE id=$1`, id))
}

// GetByFlat returns the flat's meter; a flat has at most one.
func (r *MeterRepository) GetByFlat(ctx context.Context, flatID int) (*models.Meter, error) {
	return scanMeter(r.DB.QueryRow(ctx,
		`SELECT `+meterColumns+` FROM meters WHERE flat_id=$1`, flatID))
}

func (r *MeterRepository) List(ctx context.Context) ([]*models.Meter, error) {
	return r.list(ctx, `SELECT `+meterColumns+` FROM meters ORDER BY created_at DESC`)
}

func (r *MeterRepository) ListByProject(ctx context.Context, projectID int) ([]*models.Meter, error) {
	return r.list(ctx,
		`SELECT `+meterColumns+` FROM meters WHERE project_id=$1 ORDER BY serial_number`, projectID)
}

func (r *MeterRepository) list(ctx context.Context, query string, args ...any) ([]*models.Meter, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meters []*models.Meter
	for rows.Next() {
		m, err := scanMeter(rows)
		if err != nil {
			return nil, err
		}
		meters = append(meters, m)
	}
	return meters, rows.Err()
}

func (r *MeterRepository) Update(ctx context.Context, m *models.Meter) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE meters SET serial_number=$1, is_active=$2, updated_at=CURRENT_TIMESTAMP
         WHERE id=$3`,
		m.SerialNumber, m.IsActive, m.ID)
	return err
}

func (r *MeterRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM meters WHERE id=$1`, id)
	return err
}
