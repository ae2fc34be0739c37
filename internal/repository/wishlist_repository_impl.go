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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WishlistRepositoryImpl struct {
	db *mongo.Database
}

func CreateWishlistRepository(db *mongo.Database) WishlistRepository {
	return &WishlistRepositoryImpl{db: db}
}

func (r *WishlistRepositoryImpl) GetWishlistsByUserID(ctx context.Context, userID string) (data []domain.Wishlist, err error) {
	uid, err := objectID(userID)
	if err != nil {
		return []domain.Wishlist{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.Collection(wishlistCollection).Find(ctx, bson.D{{Key: "user", Value: uid}}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistsByUserID").Msg("")
		return
	}

	data = []domain.Wishlist{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistsByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *WishlistRepositoryImpl) GetWishlistByUserAndProduct(ctx context.Context, userID string, productID string) (data domain.Wishlist, err error) {
	uid, err := objectID(userID)
	if err != nil {
		return
	}
	pid, err := objectID(productID)
	if err != nil {
		return
	}

	err = r.db.Collection(wishlistCollection).FindOne(ctx, bson.D{{Key: "user", Value: uid}, {Key: "product", Value: pid}}).Decode(&data)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistByUserAndProduct").Msg("")
		}
		return data, notFoundOr(err)
	}

	return data, nil
}

func (r *WishlistRepositoryImpl) AddWishlist(ctx context.Context, data domain.Wishlist) (id string, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection(wishlistCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddWishlist").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return "", errs.ErrAlreadyInWishlist
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *WishlistRepositoryImpl) DeleteWishlist(ctx context.Context, userID string, productID string) (err error) {
	uid, err := objectID(userID)
	if err != nil {
		return
	}
	pid, err := objectID(productID)
	if err != nil {
		return
	}

	result, err := r.db.Collection(wishlistCollection).DeleteOne(ctx, bson.D{{Key: "user", Value: uid}, {Key: "product", Value: pid}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteWishlist").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
