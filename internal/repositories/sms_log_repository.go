package repositories

import (
	"context"

	"gms-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SMSLogRepository struct {
	DB *pgxpool.Pool
}

func NewSMSLogRepository(db *pgxpool.Pool) *SMSLogRepository {
	return &SMSLogRepository{DB: db}
}

func (r *SMSLogRepository) Create(ctx context.Context, l *models.SMSLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO sms_logs(customer_id, phone, message, message_type, status, cost)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		l.CustomerID, l.Phone, l.Message, l.MessageType, l.Status, l.Cost,
	).Scan(&l.ID, &l.CreatedAt)
}

func (r *SMSLogRepository) List(ctx context.Context) ([]*models.SMSLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, customer_id, phone, message, message_type, status, cost, created_at
         FROM sms_logs ORDER BY created_at DESC LIMIT 500`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.SMSLog
	for rows.Next() {
		var l models.SMSLog
		err := rows.Scan(&l.ID, &l.CustomerID, &l.Phone, &l.Message, &l.MessageType,
			&l.Status, &l.Cost, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
