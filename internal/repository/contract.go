package repository

import (
	"context"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
)

type TransactionRepository interface {
	AddTransaction(ctx context.Context, data domain.Transaction) (err error)
	GetTransactionByID(ctx context.Context, id string) (data domain.Transaction, err error)
	GetTransactions(ctx context.Context, filter pkgdto.Filter) (data []domain.Transaction, err error)
	CountTransactions(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	GetTransactionsByUserID(ctx context.Context, userID string) (data []domain.Transaction, err error)
	GetPendingTransactionsCreatedBefore(ctx context.Context, createdBefore int64) (data []domain.Transaction, err error)
	UpdateTransactionToken(ctx context.Context, id string, token string, redirectURL string) (err error)
	UpdateTransactionStatus(ctx context.Context, data domain.TransactionStatusUpdate) (updated domain.Transaction, err error)
	DeleteTransaction(ctx context.Context, id string) (err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id string, err error)
	GetUserByID(ctx context.Context, id string) (data domain.User, err error)
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (data domain.User, err error)
	GetUserByUsername(ctx context.Context, username string) (data domain.User, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	UpdatePassword(ctx context.Context, id string, hashedPassword string) (err error)
	DeleteUser(ctx context.Context, id string) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id string, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (data domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []string) (data []domain.Product, err error)
	SearchProducts(ctx context.Context, param dto.ProductSearchRequest) (data []domain.Product, err error)
	GetProductsByCategory(ctx context.Context, category string) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (id string, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id string) (data domain.Category, err error)
	UpdateCategory(ctx context.Context, data domain.Category) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type BannerRepository interface {
	AddBanner(ctx context.Context, data domain.Banner) (id string, err error)
	GetBanners(ctx context.Context) (data []domain.Banner, err error)
	DeleteBanner(ctx context.Context, id string) (err error)
}

type CartRepository interface {
	GetCartsByUserID(ctx context.Context, userID string) (data []domain.Cart, err error)
	GetCartByUserAndProduct(ctx context.Context, userID string, productID string) (data domain.Cart, err error)
	GetCartByID(ctx context.Context, id string, userID string) (data domain.Cart, err error)
	AddCart(ctx context.Context, data domain.Cart) (id string, err error)
	UpdateCartQuantity(ctx context.Context, id string, quantity int64) (err error)
	DeleteCart(ctx context.Context, id string, userID string) (err error)
}

type WishlistRepository interface {
	GetWishlistsByUserID(ctx context.Context, userID string) (data []domain.Wishlist, err error)
	GetWishlistByUserAndProduct(ctx context.Context, userID string, productID string) (data domain.Wishlist, err error)
	AddWishlist(ctx context.Context, data domain.Wishlist) (id string, err error)
	DeleteWishlist(ctx context.Context, userID string, productID string) (err error)
}

type NotificationLogRepository interface {
	AddNotificationLog(ctx context.Context, data domain.PaymentNotificationLog) (err error)
}
