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

type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func CreateCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo, productRepo: productRepo}
}

// productsByID loads the products referenced by ids, keyed by hex id.
func productsByID(ctx context.Context, repo repository.ProductRepository, ids []string) (map[string]domain.Product, error) {
	products := map[string]domain.Product{}
	if len(ids) == 0 {
		return products, nil
	}

	datas, err := repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, p := range datas {
		products[p.ID.Hex()] = p
	}

	return products, nil
}

func cartItem(cart domain.Cart, product *domain.Product) dto.CartItemResponse {
	item := dto.CartItemResponse{
		ID:       cart.ID.Hex(),
		Quantity: cart.Quantity,
	}
	if product != nil {
		p := toProductResponse(*product)
		item.Product = &p
	}

	return item
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (resp dto.CartResponse, err error) {
	carts, err := s.cartRepo.GetCartsByUserID(ctx, userID)
	if err != nil {
		return
	}

	ids := make([]string, len(carts))
	for i, c := range carts {
		ids[i] = c.ProductID.Hex()
	}

	products, err := productsByID(ctx, s.productRepo, ids)
	if err != nil {
		return
	}

	resp.Items = make([]dto.CartItemResponse, 0, len(carts))
	for _, c := range carts {
		var product *domain.Product
		if p, ok := products[c.ProductID.Hex()]; ok {
			product = &p
		}
		resp.Items = append(resp.Items, cartItem(c, product))
		resp.TotalQuantity += c.Quantity
	}

	return resp, nil
}

// AddToCart adds quantity to the user's line for the product, creating the
// line when it does not exist yet.
func (s *CartServiceImpl) AddToCart(ctx context.Context, req dto.CartRequest) (resp dto.CartItemResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return
	}

	existing, err := s.cartRepo.GetCartByUserAndProduct(ctx, req.UserID, req.ProductID)
	if err == nil {
		existing.Quantity += req.Quantity
		if err = s.cartRepo.UpdateCartQuantity(ctx, existing.ID.Hex(), existing.Quantity); err != nil {
			return
		}
		return cartItem(existing, &product), nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return resp, errs.ErrInvalidToken
	}

	cart := domain.Cart{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
	}

	id, err := s.cartRepo.AddCart(ctx, cart)
	if err != nil {
		return
	}

	cart.ID, _ = primitive.ObjectIDFromHex(id)

	return cartItem(cart, &product), nil
}

func (s *CartServiceImpl) UpdateCartQuantity(ctx context.Context, req dto.CartRequest) (resp dto.CartItemResponse, err error) {
	if req.Quantity < 1 {
		return resp, errs.ErrClient
	}

	cart, err := s.cartRepo.GetCartByID(ctx, req.ID, req.UserID)
	if err != nil {
		return
	}

	if err = s.cartRepo.UpdateCartQuantity(ctx, req.ID, req.Quantity); err != nil {
		return
	}

	cart.Quantity = req.Quantity

	return cartItem(cart, nil), nil
}

func (s *CartServiceImpl) DeleteCart(ctx context.Context, id string, userID string) (err error) {
	return s.cartRepo.DeleteCart(ctx, id, userID)
}
