package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CostConfigRepository struct {
	DB *pgxpool.Pool
}

func NewCostConfigRepository(db *pgxpool.Pool) *CostConfigRepository {
	return &CostConfigRepository{DB: db}
}

const costConfigColumns = `id, name, gas_rate, amc_cost, utility_tax, app_charges, penalty_rate, created_at, updated_at`

func scanCostConfig(row interface{ Scan(...any) error }) (*models.CostConfig, error) {
	var c models.CostConfig
	err := row.Scan(&c.ID, &c.Name, &c.GasRate, &c.AMCCost, &c.UtilityTax,
		&c.AppCharges, &c.PenaltyRate, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *CostConfigRepository) Create(ctx context.Context, c *models.CostConfig) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO cost_configs(name, gas_rate, amc_cost, utility_tax, app_charges, penalty_rate)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		c.Name, c.GasRate, c.AMCCost, c.UtilityTax, c.AppCharges, c.PenaltyRate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CostConfigRepository) Get(ctx context.Context, id int) (*models.CostConfig, error) {
	return scanCostConfig(r.DB.QueryRow(ctx,
		`SELECT `+costConfigColumns+` FROM cost_configs WHERE id=$1`, id))
}

// GetForProject resolves the cost config referenced by a project.
func (r *CostConfigRepository) GetForProject(ctx context.Context, projectID int) (*models.CostConfig, error) {
	return scanCostConfig(r.DB.QueryRow(ctx,
		`SELECT c.id, c.name, c.gas_rate, c.amc_cost, c.utility_tax, c.app_charges, c.penalty_rate,
		        c.created_at, c.updated_at
         FROM cost_configs c
         JOIN projects p ON p.cost_config_id = c.id
         WHERE p.id=$1`, projectID))
}

func (r *CostConfigRepository) List(ctx context.Context) ([]*models.CostConfig, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+costConfigColumns+` FROM cost_configs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.CostConfig
	for rows.Next() {
		c, err := scanCostConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

func (r *CostConfigRepository) Update(ctx context.Context, c *models.CostConfig) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE cost_configs SET name=$1, gas_rate=$2, amc_cost=$3, utility_tax=$4,
		        app_charges=$5, penalty_rate=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		c.Name, c.GasRate, c.AMCCost, c.UtilityTax, c.AppCharges, c.PenaltyRate, c.ID)
	return err
}

func (r *CostConfigRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cost_configs WHERE id=$1`, id)
	return err
}
