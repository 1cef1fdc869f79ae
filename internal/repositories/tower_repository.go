package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TowerRepository struct {
	DB *pgxpool.Pool
}

func NewTowerRepository(db *pgxpool.Pool) *TowerRepository {
	return &TowerRepository{DB: db}
}

func (r *TowerRepository) Create(ctx context.Context, t *models.Tower) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO towers(project_id, name) VALUES($1, $2)
         RETURNING id, created_at, updated_at`,
		t.ProjectID, t.Name,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TowerRepository) Get(ctx context.Context, id int) (*models.Tower, error) {
	var t models.Tower
	err := r.DB.QueryRow(ctx,
		`SELECT id, project_id, name, created_at, updated_at FROM towers WHERE id=$1`, id).
		Scan(&t.ID, &t.ProjectID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *TowerRepository) ListByProject(ctx context.Context, projectID int) ([]*models.Tower, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, project_id, name, created_at, updated_at
         FROM towers WHERE project_id=$1 ORDER BY name`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var towers []*models.Tower
	for rows.Next() {
		var t models.Tower
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		towers = append(towers, &t)
	}
	return towers, rows.Err()
}

func (r *TowerRepository) Update(ctx context.Context, t *models.Tower) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE towers SET name=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, t.Name, t.ID)
	return err
}

func (r *TowerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM towers WHERE id=$1`, id)
	return err
}
