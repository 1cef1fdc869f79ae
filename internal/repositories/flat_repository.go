package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FlatRepository struct {
	DB *pgxpool.Pool
}

func NewFlatRepository(db *pgxpool.Pool) *FlatRepository {
	return &FlatRepository{DB: db}
}

func (r *FlatRepository) Create(ctx context.Context, f *models.Flat) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO flats(floor_id, flat_number, area) VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		f.FloorID, f.FlatNumber, f.Area,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FlatRepository) Get(ctx context.Context, id int) (*models.Flat, error) {
	var f models.Flat
	err := r.DB.QueryRow(ctx,
		`SELECT id, floor_id, flat_number, area, created_at, updated_at FROM flats WHERE id=$1`, id).
		Scan(&f.ID, &f.FloorID, &f.FlatNumber, &f.Area, &f.CreatedAt, &f.UpdatedAt)
	return &f, err
}

// GetLocation resolves the full Tower -> Wing -> Floor -> Flat path.
func (r *FlatRepository) GetLocation(ctx context.Context, id int) (*models.FlatLocation, error) {
	var loc models.FlatLocation
	err := r.DB.QueryRow(ctx,
		`SELECT fl.id, fl.flat_number, f.number, w.name, t.name, t.project_id
         FROM flats fl
         JOIN floors f ON fl.floor_id = f.id
         JOIN wings w ON f.wing_id = w.id
         JOIN towers t ON w.tower_id = t.id
         WHERE fl.id=$1`, id).
		Scan(&loc.FlatID, &loc.FlatNumber, &loc.FloorNumber, &loc.WingName, &loc.TowerName, &loc.ProjectID)
	return &loc, err
}

func (r *FlatRepository) ListByFloor(ctx context.Context, floorID int) ([]*models.Flat, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, floor_id, flat_number, area, created_at, updated_at
         FROM flats WHERE floor_id=$1 ORDER BY flat_number`, floorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flats []*models.Flat
	for rows.Next() {
		var f models.Flat
		if err := rows.Scan(&f.ID, &f.FloorID, &f.FlatNumber, &f.Area, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flats = append(flats, &f)
	}
	return flats, rows.Err()
}

func (r *FlatRepository) Update(ctx context.Context, f *models.Flat) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE flats SET flat_number=$1, area=$2, updated_at=CURRENT_TIMESTAMP WHERE id=$3`,
		f.FlatNumber, f.Area, f.ID)
	return err
}

func (r *FlatRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM flats WHERE id=$1`, id)
	return err
}
