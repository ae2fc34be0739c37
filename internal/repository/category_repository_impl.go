package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateCategoryRepository(db *mongo.Database) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id string, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection(categoryCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection(categoryCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	data = []domain.Category{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (data domain.Category, err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}

	err = r.db.Collection(categoryCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&data)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		}
		return data, notFoundOr(err)
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "image_url", Value: data.ImageURL},
		{Key: "author", Value: data.Author},
		{Key: "is_active", Value: data.IsActive},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := r.db.Collection(categoryCollection).UpdateOne(ctx, bson.D{{Key: "_id", Value: data.ID}}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *CategoryRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}

	result, err := r.db.Collection(categoryCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
