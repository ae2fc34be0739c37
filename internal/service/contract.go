package service

import (
	"context"
	"encoding/json"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	paymentgateway "github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/payment-gateway"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
)

type TransactionService interface {
	AddTransaction(ctx context.Context, req dto.TransactionRequest) (resp dto.CreateTransactionResponse, err error)
	GetTransactions(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.Pagination, err error)
	GetTransactionByID(ctx context.Context, id string, userID string) (resp dto.TransactionResponse, err error)
	GetTransactionsByUserID(ctx context.Context, userID string) (resp []dto.TransactionResponse, err error)
	UpdateTransactionStatus(ctx context.Context, id string, req dto.TransactionStatusRequest) (resp dto.TransactionResponse, err error)
	DeleteTransaction(ctx context.Context, id string, userID string) (err error)
	HandlePaymentNotification(ctx context.Context, req dto.PaymentNotification) (resp dto.NotificationResult, err error)
	SyncTransactionStatus(ctx context.Context, id string) (resp dto.NotificationResult, err error)
	ExpirePendingTransactions(ctx context.Context) (expired int, err error)
}

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	GetUserByID(ctx context.Context, id string) (resp dto.UserResponse, err error)
	UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (resp dto.UserResponse, err error)
	IsAdmin(ctx context.Context, id string) (ok bool, err error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error)
	DeleteUser(ctx context.Context, id string) (err error)
}

type CatalogService interface {
	AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	SearchProducts(ctx context.Context, req dto.ProductSearchRequest) (resp []dto.ProductResponse, err error)
	GetProductsByCategory(ctx context.Context, category string) (resp []dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, req dto.ProductUpdateRequest) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)

	AddCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.CategoryResponse, err error)
	GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error)
	GetCategoryByID(ctx context.Context, id string) (resp dto.CategoryResponse, err error)
	UpdateCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.CategoryResponse, err error)
	DeleteCategory(ctx context.Context, id string) (err error)

	AddBanner(ctx context.Context, req dto.BannerRequest) (resp dto.BannerResponse, err error)
	GetBanners(ctx context.Context) (resp []dto.BannerResponse, err error)
	DeleteBanner(ctx context.Context, id string) (err error)
}

type CartService interface {
	GetCart(ctx context.Context, userID string) (resp dto.CartResponse, err error)
	AddToCart(ctx context.Context, req dto.CartRequest) (resp dto.CartItemResponse, err error)
	UpdateCartQuantity(ctx context.Context, req dto.CartRequest) (resp dto.CartItemResponse, err error)
	DeleteCart(ctx context.Context, id string, userID string) (err error)
}

type WishlistService interface {
	GetWishlist(ctx context.Context, userID string) (resp []dto.WishlistItemResponse, err error)
	AddToWishlist(ctx context.Context, req dto.WishlistRequest) (resp dto.WishlistItemResponse, err error)
	DeleteFromWishlist(ctx context.Context, req dto.WishlistRequest) (err error)
}

type ShippingService interface {
	GetCouriers() []string
	GetShippingCosts(ctx context.Context, req dto.ShippingCostRequest) (resp json.RawMessage, err error)
	GetProvinces(ctx context.Context) (resp json.RawMessage, err error)
	GetCities(ctx context.Context, provinceID string) (resp json.RawMessage, err error)
	CheckWaybill(ctx context.Context, req dto.WaybillRequest) (resp json.RawMessage, err error)
}

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

type PaymentGateway interface {
	CreateSnapTransaction(ctx context.Context, trx domain.Transaction) (paymentgateway.SnapSession, error)
	CheckTransaction(ctx context.Context, orderID string) (dto.PaymentNotification, error)
}

type ReceiptMailer interface {
	SendPaymentReceipt(ctx context.Context, trx domain.Transaction) error
}
