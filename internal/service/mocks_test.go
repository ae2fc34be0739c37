package service

import (
	"context"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	paymentgateway "github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/payment-gateway"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) AddTransaction(ctx context.Context, data domain.Transaction) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetTransactionByID(ctx context.Context, id string) (domain.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetTransactions(ctx context.Context, filter pkgdto.Filter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context, filter pkgdto.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) GetTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetPendingTransactionsCreatedBefore(ctx context.Context, createdBefore int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, createdBefore)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionToken(ctx context.Context, id string, token string, redirectURL string) error {
	args := m.Called(ctx, id, token, redirectURL)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, data domain.TransactionStatusUpdate) (domain.Transaction, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationLogRepository struct {
	mock.Mock
}

func (m *MockNotificationLogRepository) AddNotificationLog(ctx context.Context, data domain.PaymentNotificationLog) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateSnapTransaction(ctx context.Context, trx domain.Transaction) (paymentgateway.SnapSession, error) {
	args := m.Called(ctx, trx)
	return args.Get(0).(paymentgateway.SnapSession), args.Error(1)
}

func (m *MockPaymentGateway) CheckTransaction(ctx context.Context, orderID string) (dto.PaymentNotification, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(dto.PaymentNotification), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	args := m.Called(ctx, key, msg)
	return args.Error(0)
}

type MockReceiptMailer struct {
	mock.Mock
}

func (m *MockReceiptMailer) SendPaymentReceipt(ctx context.Context, trx domain.Transaction) error {
	args := m.Called(ctx, trx)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) AddUser(ctx context.Context, data domain.User) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (domain.User, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id string, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) AddProduct(ctx context.Context, data domain.Product) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, param dto.ProductSearchRequest) ([]domain.Product, error) {
	args := m.Called(ctx, param)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) AddCategory(ctx context.Context, data domain.Category) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockCategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByID(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, data domain.Category) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBannerRepository struct {
	mock.Mock
}

func (m *MockBannerRepository) AddBanner(ctx context.Context, data domain.Banner) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockBannerRepository) GetBanners(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func (m *MockBannerRepository) DeleteBanner(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetCartsByUserID(ctx context.Context, userID string) ([]domain.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Cart), args.Error(1)
}

func (m *MockCartRepository) GetCartByUserAndProduct(ctx context.Context, userID string, productID string) (domain.Cart, error) {
	args := m.Called(ctx, userID, productID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartRepository) GetCartByID(ctx context.Context, id string, userID string) (domain.Cart, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartRepository) AddCart(ctx context.Context, data domain.Cart) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockCartRepository) UpdateCartQuantity(ctx context.Context, id string, quantity int64) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteCart(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) GetWishlistsByUserID(ctx context.Context, userID string) ([]domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) GetWishlistByUserAndProduct(ctx context.Context, userID string, productID string) (domain.Wishlist, error) {
	args := m.Called(ctx, userID, productID)
	return args.Get(0).(domain.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) AddWishlist(ctx context.Context, data domain.Wishlist) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockWishlistRepository) DeleteWishlist(ctx context.Context, userID string, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}
