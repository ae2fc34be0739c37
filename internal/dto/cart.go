package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

type CartRequest struct {
	ID        string `json:"-"`
	UserID    string `json:"-"`
	ProductID string `json:"product"`
	Quantity  int64  `json:"quantity"`
}

func (r CartRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(int64(1))),
	)
}

type CartItemResponse struct {
	ID       string           `json:"id"`
	Quantity int64            `json:"quantity"`
	Product  *ProductResponse `json:"product,omitempty"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	TotalQuantity int64              `json:"totalQuantity"`
}

type WishlistRequest struct {
	UserID    string `json:"-"`
	ProductID string `json:"productId"`
}

func (r WishlistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
	)
}

type WishlistItemResponse struct {
	ID      string           `json:"id"`
	Product *ProductResponse `json:"product,omitempty"`
}
