package repositories

import (
	"context"
	"encoding/json"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Variables maps are stored as JSONB; scanning goes through []byte.

type SmsTemplateRepository struct {
	DB *pgxpool.Pool
}

func NewSmsTemplateRepository(db *pgxpool.Pool) *SmsTemplateRepository {
	return &SmsTemplateRepository{DB: db}
}

func (r *SmsTemplateRepository) Create(ctx context.Context, t *models.SmsTemplate) error {
	vars, err := json.Marshal(t.Variables)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO sms_templates(name, category, body, variables)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		t.Name, t.Category, t.Body, vars,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *SmsTemplateRepository) Get(ctx context.Context, id int) (*models.SmsTemplate, error) {
	var t models.SmsTemplate
	var vars []byte
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, category, body, variables, created_at, updated_at
         FROM sms_templates WHERE id=$1`, id).
		Scan(&t.ID, &t.Name, &t.Category, &t.Body, &vars, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(vars, &t.Variables); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SmsTemplateRepository) List(ctx context.Context) ([]*models.SmsTemplate, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, category, body, variables, created_at, updated_at
         FROM sms_templates ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.SmsTemplate
	for rows.Next() {
		var t models.SmsTemplate
		var vars []byte
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Body, &vars, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(vars, &t.Variables); err != nil {
			return nil, err
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

func (r *SmsTemplateRepository) Update(ctx context.Context, t *models.SmsTemplate) error {
	vars, err := json.Marshal(t.Variables)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx,
		`UPDATE sms_templates SET name=$1, category=$2, body=$3, variables=$4,
		        updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		t.Name, t.Category, t.Body, vars, t.ID)
	return err
}

func (r *SmsTemplateRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM sms_templates WHERE id=$1`, id)
	return err
}

type EmailTemplateRepository struct {
	DB *pgxpool.Pool
}

func NewEmailTemplateRepository(db *pgxpool.Pool) *EmailTemplateRepository {
	return &EmailTemplateRepository{DB: db}
}

func (r *EmailTemplateRepository) Create(ctx context.Context, t *models.EmailTemplate) error {
	vars, err := json.Marshal(t.Variables)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO email_templates(name, category, subject, body, variables)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		t.Name, t.Category, t.Subject, t.Body, vars,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *EmailTemplateRepository) Get(ctx context.Context, id int) (*models.EmailTemplate, error) {
	var t models.EmailTemplate
	var vars []byte
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, category, subject, body, variables, created_at, updated_at
         FROM email_templates WHERE id=$1`, id).
		Scan(&t.ID, &t.Name, &t.Category, &t.Subject, &t.Body, &vars, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(vars, &t.Variables); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *EmailTemplateRepository) List(ctx context.Context) ([]*models.EmailTemplate, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, category, subject, body, variables, created_at, updated_at
         FROM email_templates ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.EmailTemplate
	for rows.Next() {
		var t models.EmailTemplate
		var vars []byte
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Subject, &t.Body, &vars, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(vars, &t.Variables); err != nil {
			return nil, err
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

func (r *EmailTemplateRepository) Update(ctx context.Context, t *models.EmailTemplate) error {
	vars, err := json.Marshal(t.Variables)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx,
		`UPDATE email_templates SET name=$1, category=$2, subject=$3, body=$4, variables=$5,
		        updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		t.Name, t.Category, t.Subject, t.Body, vars, t.ID)
	return err
}

func (r *EmailTemplateRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM email_templates WHERE id=$1`, id)
	return err
}
