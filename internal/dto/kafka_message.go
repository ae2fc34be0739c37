package dto

const (
	EventTransactionCreated       = "transaction_created"
	EventTransactionStatusUpdated = "transaction_status_updated"
	EventTransactionDeleted       = "transaction_deleted"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type TransactionEvent struct {
	TransactionID  string `json:"transaction_id"`
	UserID         string `json:"user_id"`
	PreviousStatus string `json:"previous_status,omitempty"`
	Status         string `json:"status"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	GrossAmount    int64  `json:"gross_amount"`
}
