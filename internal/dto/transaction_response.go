package dto

type TransactionProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int32  `json:"quantity"`
}

type TransactionResponse struct {
	ID              string                       `json:"id"`
	UserID          string                       `json:"userId"`
	GrossAmount     int64                        `json:"grossAmount"`
	CustomerName    string                       `json:"customerName"`
	CustomerEmail   string                       `json:"customerEmail"`
	PhoneNumber     string                       `json:"phoneNumber"`
	Status          string                       `json:"status"`
	Token           string                       `json:"token,omitempty"`
	RedirectURL     string                       `json:"redirectUrl,omitempty"`
	ShippingAddress string                       `json:"shippingAddress"`
	ShippingCourier string                       `json:"shippingCourier"`
	ShippingService string                       `json:"shippingService"`
	TrackingNumber  string                       `json:"trackingNumber,omitempty"`
	PaymentMethod   string                       `json:"paymentMethod"`
	SettlementTime  string                       `json:"settlementTime"`
	Products        []TransactionProductResponse `json:"products"`
	CreatedAt       int64                        `json:"createdAt"`
	UpdatedAt       int64                        `json:"updatedAt"`
}

type CreateTransactionResponse struct {
	ID            string `json:"id"`
	GrossAmount   int64  `json:"grossAmount"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Token         string `json:"token"`
	RedirectURL   string `json:"redirectUrl"`
}

// NotificationResult reports what a gateway notification did to the
// referenced transaction.
type NotificationResult struct {
	Applied     bool                `json:"applied"`
	Transaction TransactionResponse `json:"transaction"`
}
