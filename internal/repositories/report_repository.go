package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepository struct {
	DB *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *models.Report) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO reports(id, type, format, status, file_name, content_type, file_key, created_by)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING created_at`,
		rep.ID, rep.Type, rep.Format, rep.Status, rep.FileName, rep.ContentType,
		rep.FileKey, rep.CreatedBy,
	).Scan(&rep.CreatedAt)
}

func (r *ReportRepository) Get(ctx context.Context, id string) (*models.Report, error) {
	var rep models.Report
	err := r.DB.QueryRow(ctx,
		`SELECT id, type, format, status, file_name, content_type, file_key,
		        COALESCE(created_by, 0), created_at
         FROM reports WHERE id=$1`, id).
		Scan(&rep.ID, &rep.Type, &rep.Format, &rep.Status, &rep.FileName,
			&rep.ContentType, &rep.FileKey, &rep.CreatedBy, &rep.CreatedAt)
	return &rep, err
}

func (r *ReportRepository) List(ctx context.Context) ([]*models.Report, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, type, format, status, file_name, content_type, file_key,
		        COALESCE(created_by, 0), created_at
         FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		var rep models.Report
		err := rows.Scan(&rep.ID, &rep.Type, &rep.Format, &rep.Status, &rep.FileName,
			&rep.ContentType, &rep.FileKey, &rep.CreatedBy, &rep.CreatedAt)
		if err != nil {
			return nil, err
		}
		reports = append(reports, &rep)
	}
	return reports, rows.Err()
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM reports WHERE id=$1`, id)
	return err
}
