package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateProductRepository(db *mongo.Database) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id string, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProductRepositoryImpl) find(ctx context.Context, component string, filter bson.D, opts ...*options.FindOptions) (data []domain.Product, err error) {
	cursor, err := r.db.Collection(productCollection).Find(ctx, filter, opts...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	opts := options.Find()
	if filter.Limit != 0 && filter.Page != 0 {
		opts = opts.SetSkip(filter.Skip()).SetLimit(int64(filter.Limit))
	}

	query := bson.D{}
	if filter.Q != "" {
		query = append(query, bson.E{Key: "name", Value: caseInsensitive(filter.Q)})
	}

	return r.find(ctx, "GetProducts", query, opts)
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}

	err = r.db.Collection(productCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&data)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		}
		return data, notFoundOr(err)
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []string) (data []domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: objectIDs(ids)}}}}
	return r.find(ctx, "GetProductsByIDs", filter)
}

func caseInsensitive(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func (r *ProductRepositoryImpl) SearchProducts(ctx context.Context, param dto.ProductSearchRequest) (data []domain.Product, err error) {
	query := bson.D{}
	fields := []struct {
		key  string
		term string
	}{
		{"name", param.Name},
		{"brand", param.Brand},
		{"category", param.Category},
		{"description", param.Description},
	}
	for _, f := range fields {
		if f.term != "" {
			query = append(query, bson.E{Key: f.key, Value: caseInsensitive(f.term)})
		}
	}

	return r.find(ctx, "SearchProducts", query)
}

func (r *ProductRepositoryImpl) GetProductsByCategory(ctx context.Context, category string) (data []domain.Product, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, "GetProductsByCategory", bson.D{{Key: "category", Value: category}}, opts)
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "brand", Value: data.Brand},
		{Key: "price", Value: data.Price},
		{Key: "category", Value: data.Category},
		{Key: "image_url", Value: data.ImageURL},
		{Key: "rating", Value: data.Rating},
		{Key: "description", Value: data.Description},
		{Key: "stock", Value: data.Stock},
		{Key: "promo", Value: data.Promo},
		{Key: "is_active", Value: data.IsActive},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := r.db.Collection(productCollection).UpdateOne(ctx, bson.D{{Key: "_id", Value: data.ID}}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}

	result, err := r.db.Collection(productCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
