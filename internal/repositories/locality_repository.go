package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LocalityRepository struct {
	DB *pgxpool.Pool
}

func NewLocalityRepository(db *pgxpool.Pool) *LocalityRepository {
	return &LocalityRepository{DB: db}
}

func (r *LocalityRepository) Create(ctx context.Context, l *models.Locality) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO localities(city_id, name, pincode) VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		l.CityID, l.Name, l.Pincode,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *LocalityRepository) Get(ctx context.Context, id int) (*models.Locality, error) {
	var l models.Locality
	err := r.DB.QueryRow(ctx,
		`SELECT id, city_id, name, pincode, created_at, updated_at FROM localities WHERE id=$1`, id).
		Scan(&l.ID, &l.CityID, &l.Name, &l.Pincode, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *LocalityRepository) List(ctx context.Context) ([]*models.Locality, error) {
	return r.list(ctx,
		`SELECT id, city_id, name, pincode, created_at, updated_at FROM localities ORDER BY name`)
}

func (r *LocalityRepository) ListByCity(ctx context.Context, cityID int) ([]*models.Locality, error) {
	return r.list(ctx,
		`SELECT id, city_id, name, pincode, created_at, updated_at
         FROM localities WHERE city_id=$1 ORDER BY name`, cityID)
}

func (r *LocalityRepository) list(ctx context.Context, query string, args ...any) ([]*models.Locality, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var localities []*models.Locality
	for rows.Next() {
		var l models.Locality
		if err := rows.Scan(&l.ID, &l.CityID, &l.Name, &l.Pincode, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		localities = append(localities, &l)
	}
	return localities, rows.Err()
}

func (r *LocalityRepository) Update(ctx context.Context, l *models.Locality) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE localities SET city_id=$1, name=$2, pincode=$3, updated_at=CURRENT_TIMESTAMP WHERE id=$4`,
		l.CityID, l.Name, l.Pincode, l.ID)
	return err
}

func (r *LocalityRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM localities WHERE id=$1`, id)
	return err
}
