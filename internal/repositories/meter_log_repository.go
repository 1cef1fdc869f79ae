package repositories

import (
	"context"
	"errors"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MeterLogRepository struct {
	DB *pgxpool.Pool
}

func NewMeterLogRepository(db *pgxpool.Pool) *MeterLogRepository {
	return &MeterLogRepository{DB: db}
}

const meterLogColumns = `id, meter_id, agent_id, previous_reading, current_reading,
	units_consumed, COALESCE(image_key, '') as image_key, status, read_at, created_at, updated_at`

func scanMeterLog(row interface{ Scan(...any) error }) (*models.MeterLog, error) {
	var l models.MeterLog
	err := row.Scan(&l.ID, &l.MeterID, &l.AgentID, &l.PreviousReading, &l.CurrentReading,
		&l.UnitsConsumed, &l.ImageKey, &l.Status, &l.ReadAt, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *MeterLogRepository) Create(ctx context.Context, l *models.MeterLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO meter_logs(meter_id, agent_id, previous_reading, current_reading,
		        units_consumed, image_key, status, read_at)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		l.MeterID, l.AgentID, l.PreviousReading, l.CurrentReading,
		l.UnitsConsumed, l.ImageKey, l.Status, l.ReadAt,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *MeterLogRepository) Get(ctx context.Context, id int) (*models.MeterLog, error) {
	return scanMeterLog(r.DB.QueryRow(ctx,
		`SELECT `+meterLogColumns+` FROM meter_logs WHERE id=$1`, id))
}

// GetLatestByMeter returns the newest reading for a meter, or pgx.ErrNoRows
// when the meter has never been read.
func (r *MeterLogRepository) GetLatestByMeter(ctx context.Context, meterID int) (*models.MeterLog, error) {
	return scanMeterLog(r.DB.QueryRow(ctx,
		`SELECT `+meterLogColumns+` FROM meter_logs
         WHERE meter_id=$1 ORDER BY read_at DESC LIMIT 1`, meterID))
}

func (r *MeterLogRepository) List(ctx context.Context) ([]*models.MeterLog, error) {
	return r.list(ctx, `SELECT `+meterLogColumns+` FROM meter_logs ORDER BY read_at DESC`)
}

func (r *MeterLogRepository) ListByMeter(ctx context.Context, meterID int) ([]*models.MeterLog, error) {
	return r.list(ctx,
		`SELECT `+meterLogColumns+` FROM meter_logs WHERE meter_id=$1 ORDER BY read_at DESC`, meterID)
}

func (r *MeterLogRepository) list(ctx context.Context, query string, args ...any) ([]*models.MeterLog, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.MeterLog
	for rows.Next() {
		l, err := scanMeterLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *MeterLogRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE meter_logs SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, status, id)
	return err
}

func (r *MeterLogRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM meter_logs WHERE id=$1`, id)
	return err
}

// IsNotFound reports whether err is the no-rows sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
