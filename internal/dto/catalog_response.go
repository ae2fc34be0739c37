package dto

type ProductResponse struct {
	ID          string  `json:"id"`
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
	IsActive    bool    `json:"isActive"`
}

type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Author   string `json:"author"`
	IsActive bool   `json:"isActive"`
}

type BannerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Author      string `json:"author"`
	IsActive    bool   `json:"isActive"`
}
