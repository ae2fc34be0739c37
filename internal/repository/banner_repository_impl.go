package repository

import (
	"context"
	"time"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BannerRepositoryImpl struct {
	db *mongo.Database
}

func CreateBannerRepository(db *mongo.Database) BannerRepository {
	return &BannerRepositoryImpl{db: db}
}

func (r *BannerRepositoryImpl) AddBanner(ctx context.Context, data domain.Banner) (id string, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection(bannerCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddBanner").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BannerRepositoryImpl) GetBanners(ctx context.Context) (data []domain.Banner, err error) {
	cursor, err := r.db.Collection(bannerCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBanners").Msg("")
		return
	}

	data = []domain.Banner{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBanners").Msg("")
		return
	}

	return data, nil
}

func (r *BannerRepositoryImpl) DeleteBanner(ctx context.Context, id string) (err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}

	result, err := r.db.Collection(bannerCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteBanner").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
