package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

type ProductRequest struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Stock       int64   `json:"stock"`
	Promo       bool    `json:"promo"`
	IsActive    *bool   `json:"isActive"`
}

func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.Min(int64(0))),
		validation.Field(&r.Stock, validation.Min(int64(0))),
	)
}

// ProductUpdateRequest carries a partial update; nil fields are left as-is.
type ProductUpdateRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name"`
	Brand       *string  `json:"brand"`
	Price       *int64   `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Stock       *int64   `json:"stock"`
	Promo       *bool    `json:"promo"`
	IsActive    *bool    `json:"isActive"`
}

type ProductSearchRequest struct {
	Name        string `query:"name"`
	Brand       string `query:"brand"`
	Category    string `query:"category"`
	Description string `query:"description"`
}

type CategoryRequest struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Author   string `json:"author"`
	IsActive *bool  `json:"isActive"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.IsActive, validation.NotNil),
	)
}

type BannerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Author      string `json:"author"`
	IsActive    *bool  `json:"isActive"`
}

func (r BannerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}
