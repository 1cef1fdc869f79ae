package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WingRepository struct {
	DB *pgxpool.Pool
}

func NewWingRepository(db *pgxpool.Pool) *WingRepository {
	return &WingRepository{DB: db}
}

func (r *WingRepository) Create(ctx context.Context, w *models.Wing) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO wings(tower_id, name) VALUES($1, $2)
         RETURNING id, created_at, updated_at`,
		w.TowerID, w.Name,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

func (r *WingRepository) Get(ctx context.Context, id int) (*models.Wing, error) {
	var w models.Wing
	err := r.DB.QueryRow(ctx,
		`SELECT id, tower_id, name, created_at, updated_at FROM wings WHERE id=$1`, id).
		Scan(&w.ID, &w.TowerID, &w.Name, &w.CreatedAt, &w.UpdatedAt)
	return &w, err
}

func (r *WingRepository) ListByTower(ctx context.Context, towerID int) ([]*models.Wing, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, tower_id, name, created_at, updated_at
         FROM wings WHERE tower_id=$1 ORDER BY name`, towerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wings []*models.Wing
	for rows.Next() {
		var w models.Wing
		if err := rows.Scan(&w.ID, &w.TowerID, &w.Name, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		wings = append(wings, &w)
	}
	return wings, rows.Err()
}

func (r *WingRepository) Update(ctx context.Context, w *models.Wing) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE wings SET name=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, w.Name, w.ID)
	return err
}

func (r *WingRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM wings WHERE id=$1`, id)
	return err
}
