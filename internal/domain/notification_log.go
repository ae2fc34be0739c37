package domain

// PaymentNotificationLog is one row of the append-only ledger of gateway
// notifications, kept in PostgreSQL.
type PaymentNotificationLog struct {
	ID                int64  `db:"id"`
	OrderID           string `db:"order_id"`
	Source            string `db:"source"`
	TransactionStatus string `db:"transaction_status"`
	FraudStatus       string `db:"fraud_status"`
	StatusCode        string `db:"status_code"`
	GrossAmount       string `db:"gross_amount"`
	PaymentType       string `db:"payment_type"`
	Outcome           string `db:"outcome"`
	Payload           string `db:"payload"`
	CreatedAt         int64  `db:"created_at"`
}
