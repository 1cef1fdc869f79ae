package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FloorRepository struct {
	DB *pgxpool.Pool
}

func NewFloorRepository(db *pgxpool.Pool) *FloorRepository {
	return &FloorRepository{DB: db}
}

func (r *FloorRepository) Create(ctx context.Context, f *models.Floor) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO floors(wing_id, number) VALUES($1, $2)
         RETURNING id, created_at, updated_at`,
		f.WingID, f.Number,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FloorRepository) Get(ctx context.Context, id int) (*models.Floor, error) {
	var f models.Floor
	err := r.DB.QueryRow(ctx,
		`SELECT id, wing_id, number, created_at, updated_at FROM floors WHERE id=$1`, id).
		Scan(&f.ID, &f.WingID, &f.Number, &f.CreatedAt, &f.UpdatedAt)
	return &f, err
}

func (r *FloorRepository) ListByWing(ctx context.Context, wingID int) ([]*models.Floor, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, wing_id, number, created_at, updated_at
         FROM floors WHERE wing_id=$1 ORDER BY number`, wingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var floors []*models.Floor
	for rows.Next() {
		var f models.Floor
		if err := rows.Scan(&f.ID, &f.WingID, &f.Number, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		floors = append(floors, &f)
	}
	return floors, rows.Err()
}

func (r *FloorRepository) Update(ctx context.Context, f *models.Floor) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE floors SET number=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, f.Number, f.ID)
	return err
}

func (r *FloorRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM floors WHERE id=$1`, id)
	return err
}
