package dto

import (
	"strings"

	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
)

type TransactionProductRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int32  `json:"quantity"`
}

type TransactionRequest struct {
	UserID          string                      `json:"userId"`
	Products        []TransactionProductRequest `json:"products"`
	GrossAmount     int64                       `json:"grossAmount"`
	FirstName       string                      `json:"firstName"`
	LastName        string                      `json:"lastName"`
	CustomerEmail   string                      `json:"customerEmail"`
	PhoneNumber     string                      `json:"phoneNumber"`
	ShippingService string                      `json:"shippingService"`
	ShippingCourier string                      `json:"shippingCourier"`
	TrackingNumber  string                      `json:"trackingNumber"`
	ShippingAddress string                      `json:"shippingAddress"`
	PaymentMethod   string                      `json:"paymentMethod"`
}

// Validate applies the checks in the order the checkout form reports them.
func (r TransactionRequest) Validate() error {
	if len(r.Products) == 0 {
		return errs.ErrEmptyProducts
	}

	if r.GrossAmount <= 0 {
		return errs.ErrInvalidGrossAmount
	}

	if strings.TrimSpace(r.ShippingAddress) == "" || strings.TrimSpace(r.ShippingCourier) == "" || strings.TrimSpace(r.ShippingService) == "" {
		return errs.ErrMissingShipping
	}

	return nil
}

type TransactionStatusRequest struct {
	Status string `json:"status"`
}
