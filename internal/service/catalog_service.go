package service

import (
	"context"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/repository"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	bannerRepo   repository.BannerRepository
}

func CreateCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, bannerRepo repository.BannerRepository) CatalogService {
	return &CatalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		bannerRepo:   bannerRepo,
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}

	return *v
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	product := domain.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		Author:      req.Author,
		Description: req.Description,
		Stock:       req.Stock,
		Promo:       req.Promo,
		IsActive:    boolOr(req.IsActive, true),
	}

	id, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID, _ = primitive.ObjectIDFromHex(id)

	return toProductResponse(product), nil
}

func toProductResponses(datas []domain.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, len(datas))
	for i, data := range datas {
		resp[i] = toProductResponse(data)
	}

	return resp
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error) {
	datas, err := s.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	return toProductResponses(datas), nil
}

func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	data, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(data), nil
}

func (s *CatalogServiceImpl) SearchProducts(ctx context.Context, req dto.ProductSearchRequest) (resp []dto.ProductResponse, err error) {
	datas, err := s.productRepo.SearchProducts(ctx, req)
	if err != nil {
		return
	}

	return toProductResponses(datas), nil
}

func (s *CatalogServiceImpl) GetProductsByCategory(ctx context.Context, category string) (resp []dto.ProductResponse, err error) {
	datas, err := s.productRepo.GetProductsByCategory(ctx, category)
	if err != nil {
		return
	}

	return toProductResponses(datas), nil
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, req dto.ProductUpdateRequest) (resp dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, req.ID)
	if err != nil {
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Promo != nil {
		product.Promo = *req.Promo
	}
	product.IsActive = boolOr(req.IsActive, product.IsActive)

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return
	}

	return toProductResponse(product), nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.productRepo.DeleteProduct(ctx, id)
}

func (s *CatalogServiceImpl) AddCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.CategoryResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	category := domain.Category{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Author:   req.Author,
		IsActive: boolOr(req.IsActive, true),
	}

	id, err := s.categoryRepo.AddCategory(ctx, category)
	if err != nil {
		return
	}

	category.ID, _ = primitive.ObjectIDFromHex(id)

	return toCategoryResponse(category), nil
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error) {
	datas, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	resp = make([]dto.CategoryResponse, len(datas))
	for i, data := range datas {
		resp[i] = toCategoryResponse(data)
	}

	return
}

func (s *CatalogServiceImpl) GetCategoryByID(ctx context.Context, id string) (resp dto.CategoryResponse, err error) {
	data, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return
	}

	return toCategoryResponse(data), nil
}

func (s *CatalogServiceImpl) UpdateCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.CategoryResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, req.ID)
	if err != nil {
		return
	}

	category.Name = req.Name
	category.Author = req.Author
	category.IsActive = boolOr(req.IsActive, category.IsActive)
	if req.ImageURL != "" {
		category.ImageURL = req.ImageURL
	}

	if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return
	}

	return toCategoryResponse(category), nil
}

func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	return s.categoryRepo.DeleteCategory(ctx, id)
}

func (s *CatalogServiceImpl) AddBanner(ctx context.Context, req dto.BannerRequest) (resp dto.BannerResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	banner := domain.Banner{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Author:      req.Author,
		IsActive:    boolOr(req.IsActive, true),
	}

	id, err := s.bannerRepo.AddBanner(ctx, banner)
	if err != nil {
		return
	}

	banner.ID, _ = primitive.ObjectIDFromHex(id)

	return toBannerResponse(banner), nil
}

func (s *CatalogServiceImpl) GetBanners(ctx context.Context) (resp []dto.BannerResponse, err error) {
	datas, err := s.bannerRepo.GetBanners(ctx)
	if err != nil {
		return
	}

	resp = make([]dto.BannerResponse, len(datas))
	for i, data := range datas {
		resp[i] = toBannerResponse(data)
	}

	return
}

func (s *CatalogServiceImpl) DeleteBanner(ctx context.Context, id string) (err error) {
	return s.bannerRepo.DeleteBanner(ctx, id)
}
