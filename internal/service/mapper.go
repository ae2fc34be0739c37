package service

import (
	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
)

func toTransactionResponse(data domain.Transaction) dto.TransactionResponse {
	products := make([]dto.TransactionProductResponse, len(data.Products))
	for i, p := range data.Products {
		products[i] = dto.TransactionProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		}
	}

	return dto.TransactionResponse{
		ID:              data.ID,
		UserID:          data.UserID,
		GrossAmount:     data.GrossAmount,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		PhoneNumber:     data.PhoneNumber,
		Status:          data.Status,
		Token:           data.Token,
		RedirectURL:     data.RedirectURL,
		ShippingAddress: data.ShippingAddress,
		ShippingCourier: data.ShippingCourier,
		ShippingService: data.ShippingService,
		TrackingNumber:  data.TrackingNumber,
		PaymentMethod:   data.PaymentMethod,
		SettlementTime:  data.SettlementTime,
		Products:        products,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toUserResponse(data domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          data.ID.Hex(),
		ExternalID:  data.ExternalID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Username:    data.Username,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Role:        data.Role,
		ImageURL:    data.ImageURL,
		Address:     data.Address,
		ZipCode:     data.ZipCode,
		City:        data.City,
		Province:    data.Province,
		Country:     data.Country,
	}
}

func toProductResponse(data domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          data.ID.Hex(),
		Name:        data.Name,
		Brand:       data.Brand,
		Price:       data.Price,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
		Rating:      data.Rating,
		Author:      data.Author,
		Description: data.Description,
		Stock:       data.Stock,
		Promo:       data.Promo,
		IsActive:    data.IsActive,
	}
}

func toCategoryResponse(data domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       data.ID.Hex(),
		Name:     data.Name,
		ImageURL: data.ImageURL,
		Author:   data.Author,
		IsActive: data.IsActive,
	}
}

func toBannerResponse(data domain.Banner) dto.BannerResponse {
	return dto.BannerResponse{
		ID:          data.ID.Hex(),
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Author:      data.Author,
		IsActive:    data.IsActive,
	}
}
