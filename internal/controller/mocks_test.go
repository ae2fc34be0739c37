package controller

import (
	"context"
	"encoding/json"

	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) AddTransaction(ctx context.Context, req dto.TransactionRequest) (dto.CreateTransactionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.CreateTransactionResponse), args.Error(1)
}

func (m *MockTransactionService) GetTransactions(ctx context.Context, filter pkgdto.Filter) (pkgdto.Pagination, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(pkgdto.Pagination), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, id string, userID string) (dto.TransactionResponse, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(dto.TransactionResponse), args.Error(1)
}

func (m *MockTransactionService) GetTransactionsByUserID(ctx context.Context, userID string) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}

func (m *MockTransactionService) UpdateTransactionStatus(ctx context.Context, id string, req dto.TransactionStatusRequest) (dto.TransactionResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.TransactionResponse), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockTransactionService) HandlePaymentNotification(ctx context.Context, req dto.PaymentNotification) (dto.NotificationResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.NotificationResult), args.Error(1)
}

func (m *MockTransactionService) SyncTransactionStatus(ctx context.Context, id string) (dto.NotificationResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.NotificationResult), args.Error(1)
}

func (m *MockTransactionService) ExpirePendingTransactions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, userID string) (dto.CartResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(dto.CartResponse), args.Error(1)
}

func (m *MockCartService) AddToCart(ctx context.Context, req dto.CartRequest) (dto.CartItemResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.CartItemResponse), args.Error(1)
}

func (m *MockCartService) UpdateCartQuantity(ctx context.Context, req dto.CartRequest) (dto.CartItemResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.CartItemResponse), args.Error(1)
}

func (m *MockCartService) DeleteCart(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) GetWishlist(ctx context.Context, userID string) ([]dto.WishlistItemResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]dto.WishlistItemResponse), args.Error(1)
}

func (m *MockWishlistService) AddToWishlist(ctx context.Context, req dto.WishlistRequest) (dto.WishlistItemResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.WishlistItemResponse), args.Error(1)
}

func (m *MockWishlistService) DeleteFromWishlist(ctx context.Context, req dto.WishlistRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockShippingService struct {
	mock.Mock
}

func (m *MockShippingService) GetCouriers() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockShippingService) GetShippingCosts(ctx context.Context, req dto.ShippingCostRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockShippingService) GetProvinces(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockShippingService) GetCities(ctx context.Context, provinceID string) (json.RawMessage, error) {
	args := m.Called(ctx, provinceID)
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockShippingService) CheckWaybill(ctx context.Context, req dto.WaybillRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// asUser stands in for IsLoggedIn in handler tests.
func asUser(id string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("userId", id)
			return next(c)
		}
	}
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.LoginResponse), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string) (dto.UserResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *MockUserService) IsAdmin(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) AddProduct(ctx context.Context, req dto.ProductRequest) (dto.ProductResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) GetProductByID(ctx context.Context, id string) (dto.ProductResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) SearchProducts(ctx context.Context, req dto.ProductSearchRequest) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) GetProductsByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, req dto.ProductUpdateRequest) (dto.ProductResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) AddCategory(ctx context.Context, req dto.CategoryRequest) (dto.CategoryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.CategoryResponse), args.Error(1)
}

func (m *MockCatalogService) GetCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.CategoryResponse), args.Error(1)
}

func (m *MockCatalogService) GetCategoryByID(ctx context.Context, id string) (dto.CategoryResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.CategoryResponse), args.Error(1)
}

func (m *MockCatalogService) UpdateCategory(ctx context.Context, req dto.CategoryRequest) (dto.CategoryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.CategoryResponse), args.Error(1)
}

func (m *MockCatalogService) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) AddBanner(ctx context.Context, req dto.BannerRequest) (dto.BannerResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.BannerResponse), args.Error(1)
}

func (m *MockCatalogService) GetBanners(ctx context.Context) ([]dto.BannerResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.BannerResponse), args.Error(1)
}

func (m *MockCatalogService) DeleteBanner(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
