package repository

import (
	"context"
	"time"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const notificationLogSchema = `CREATE TABLE IF NOT EXISTS payment_notification_logs (
	id BIGSERIAL PRIMARY KEY,
	order_id VARCHAR(64) NOT NULL,
	source VARCHAR(16) NOT NULL,
	transaction_status VARCHAR(32) NOT NULL,
	fraud_status VARCHAR(32) NOT NULL DEFAULT '',
	status_code VARCHAR(8) NOT NULL DEFAULT '',
	gross_amount VARCHAR(32) NOT NULL DEFAULT '',
	payment_type VARCHAR(32) NOT NULL DEFAULT '',
	outcome VARCHAR(32) NOT NULL,
	payload JSONB,
	created_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS payment_notification_logs_order_id_idx ON payment_notification_logs (order_id);`

type NotificationLogRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNotificationLogRepository(db *sqlx.DB) NotificationLogRepository {
	return &NotificationLogRepositoryImpl{
		db: db,
	}
}

// MigrateNotificationLog creates the ledger table when it does not exist yet.
func MigrateNotificationLog(ctx context.Context, db *sqlx.DB) (err error) {
	_, err = db.ExecContext(ctx, notificationLogSchema)
	if err != nil {
		log.Error().Err(err).Str("component", "MigrateNotificationLog").Msg("")
		return
	}

	return nil
}

func (r *NotificationLogRepositoryImpl) AddNotificationLog(ctx context.Context, data domain.PaymentNotificationLog) (err error) {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	_, err = r.db.NamedExecContext(ctx, "INSERT INTO payment_notification_logs(order_id, source, transaction_status, fraud_status, status_code, gross_amount, payment_type, outcome, payload, created_at) VALUES (:order_id, :source, :transaction_status, :fraud_status, :status_code, :gross_amount, :payment_type, :outcome, :payload, :created_at)", data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddNotificationLog").Msg("")
		return
	}

	return nil
}
