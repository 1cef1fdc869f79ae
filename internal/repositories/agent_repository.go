package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AgentRepository struct {
	DB *pgxpool.Pool
}

func NewAgentRepository(db *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{DB: db}
}

const agentColumns = `id, project_id, name, phone, COALESCE(email, '') as email, is_active, created_at, updated_at`

func scanAgent(row interface{ Scan(...any) error }) (*models.Agent, error) {
	var a models.Agent
	err := row.Scan(&a.ID, &a.ProjectID, &a.Name, &a.Phone, &a.Email, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *AgentRepository) Create(ctx context.Context, a *models.Agent) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO agents(project_id, name, phone, email)
         VALUES($1, $2, $3, $4)
         RETURNING id, is_active, created_at, updated_at`,
		a.ProjectID, a.Name, a.Phone, a.Email,
	).Scan(&a.ID, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AgentRepository) Get(ctx context.Context, id int) (*models.Agent, error) {
	return scanAgent(r.DB.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE id=$1`, id))
}

func (r *AgentRepository) List(ctx context.Context) ([]*models.Agent, error) {
	return r.list(ctx, `SELECT `+agentColumns+` FROM agents ORDER BY created_at DESC`)
}

func (r *AgentRepository) ListByProject(ctx context.Context, projectID int) ([]*models.Agent, error) {
	return r.list(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE project_id=$1 ORDER BY name`, projectID)
}

func (r *AgentRepository) list(ctx context.Context, query string, args ...any) ([]*models.Agent, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*models.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (r *AgentRepository) Update(ctx context.Context, a *models.Agent) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE agents SET project_id=$1, name=$2, phone=$3, email=$4, is_active=$5,
		        updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		a.ProjectID, a.Name, a.Phone, a.Email, a.IsActive, a.ID)
	return err
}

func (r *AgentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM agents WHERE id=$1`, id)
	return err
}
