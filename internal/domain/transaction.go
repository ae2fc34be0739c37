package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	TransactionStatusPendingPayment = "PENDING_PAYMENT"
	TransactionStatusPaid           = "PAID"
	TransactionStatusCanceled       = "CANCELED"
)

type Transaction struct {
	ObjectID        primitive.ObjectID   `bson:"_id,omitempty"`
	ID              string               `bson:"id"`
	UserID          string               `bson:"user_id"`
	GrossAmount     int64                `bson:"gross_amount"`
	CustomerName    string               `bson:"customer_name"`
	CustomerEmail   string               `bson:"customer_email"`
	PhoneNumber     string               `bson:"phone_number"`
	Status          string               `bson:"status"`
	Token           string               `bson:"token,omitempty"`
	RedirectURL     string               `bson:"redirect_url,omitempty"`
	ShippingAddress string               `bson:"shipping_address"`
	ShippingCourier string               `bson:"shipping_courier"`
	ShippingService string               `bson:"shipping_service"`
	TrackingNumber  string               `bson:"tracking_number,omitempty"`
	PaymentMethod   string               `bson:"payment_method"`
	SettlementTime  string               `bson:"settlement_time"`
	PaidAt          *int64               `bson:"paid_at,omitempty"`
	Products        []TransactionProduct `bson:"products"`
	Version         int64                `bson:"version"`
	CreatedAt       int64                `bson:"created_at"`
	UpdatedAt       int64                `bson:"updated_at"`
}

type TransactionProduct struct {
	ID       string `bson:"id"`
	Name     string `bson:"name"`
	Price    int64  `bson:"price"`
	Quantity int32  `bson:"quantity"`
}

// TransactionStatusUpdate is a status change persisted with optimistic
// concurrency: it only applies while the stored version equals ExpectedVersion.
type TransactionStatusUpdate struct {
	ID              string
	Status          string
	PaymentMethod   string
	SettlementTime  string
	PaidAt          *int64
	ExpectedVersion int64
}
