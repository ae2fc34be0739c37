package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

type ShippingCostRequest struct {
	Origin          string `json:"origin"`
	OriginType      string `json:"originType"`
	Destination     string `json:"destination"`
	DestinationType string `json:"destinationType"`
	Weight          int64  `json:"weight"`
	Courier         string `json:"courier"`
}

func (r ShippingCostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Origin, validation.Required),
		validation.Field(&r.Destination, validation.Required),
		validation.Field(&r.Weight, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Courier, validation.Required),
	)
}

type WaybillRequest struct {
	Waybill string `json:"waybill"`
	Courier string `json:"courier"`
}

func (r WaybillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Waybill, validation.Required),
		validation.Field(&r.Courier, validation.Required),
	)
}
