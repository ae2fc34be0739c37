package service

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/repository"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func CreateWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &WishlistServiceImpl{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (s *WishlistServiceImpl) GetWishlist(ctx context.Context, userID string) (resp []dto.WishlistItemResponse, err error) {
	wishlists, err := s.wishlistRepo.GetWishlistsByUserID(ctx, userID)
	if err != nil {
		return
	}

	ids := make([]string, len(wishlists))
	for i, w := range wishlists {
		ids[i] = w.ProductID.Hex()
	}

	products, err := productsByID(ctx, s.productRepo, ids)
	if err != nil {
		return
	}

	resp = make([]dto.WishlistItemResponse, 0, len(wishlists))
	for _, w := range wishlists {
		item := dto.WishlistItemResponse{ID: w.ID.Hex()}
		if p, ok := products[w.ProductID.Hex()]; ok {
			pr := toProductResponse(p)
			item.Product = &pr
		}
		resp = append(resp, item)
	}

	return resp, nil
}

func (s *WishlistServiceImpl) AddToWishlist(ctx context.Context, req dto.WishlistRequest) (resp dto.WishlistItemResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return
	}

	_, err = s.wishlistRepo.GetWishlistByUserAndProduct(ctx, req.UserID, req.ProductID)
	if err == nil {
		return resp, errs.ErrAlreadyInWishlist
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return resp, errs.ErrInvalidToken
	}

	id, err := s.wishlistRepo.AddWishlist(ctx, domain.Wishlist{
		UserID:    userID,
		ProductID: product.ID,
	})
	if err != nil {
		return
	}

	p := toProductResponse(product)

	return dto.WishlistItemResponse{ID: id, Product: &p}, nil
}

func (s *WishlistServiceImpl) DeleteFromWishlist(ctx context.Context, req dto.WishlistRequest) (err error) {
	return s.wishlistRepo.DeleteWishlist(ctx, req.UserID, req.ProductID)
}
