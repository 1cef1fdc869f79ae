package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CityRepository struct {
	DB *pgxpool.Pool
}

func NewCityRepository(db *pgxpool.Pool) *CityRepository {
	return &CityRepository{DB: db}
}

func (r *CityRepository) Create(ctx context.Context, c *models.City) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO cities(name, state) VALUES($1, $2)
         RETURNING id, created_at, updated_at`,
		c.Name, c.State,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CityRepository) Get(ctx context.Context, id int) (*models.City, error) {
	var c models.City
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, state, created_at, updated_at FROM cities WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.State, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *CityRepository) List(ctx context.Context) ([]*models.City, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, state, created_at, updated_at FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []*models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, &c)
	}
	return cities, rows.Err()
}

func (r *CityRepository) Update(ctx context.Context, c *models.City) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE cities SET name=$1, state=$2, updated_at=CURRENT_TIMESTAMP WHERE id=$3`,
		c.Name, c.State, c.ID)
	return err
}

func (r *CityRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cities WHERE id=$1`, id)
	return err
}
