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

type CartRepositoryImpl struct {
	db *mongo.Database
}

func CreateCartRepository(db *mongo.Database) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) GetCartsByUserID(ctx context.Context, userID string) (data []domain.Cart, err error) {
	uid, err := objectID(userID)
	if err != nil {
		return []domain.Cart{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.db.Collection(cartCollection).Find(ctx, bson.D{{Key: "user", Value: uid}}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartsByUserID").Msg("")
		return
	}

	data = []domain.Cart{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartsByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *CartRepositoryImpl) findOne(ctx context.Context, component string, filter bson.D) (data domain.Cart, err error) {
	err = r.db.Collection(cartCollection).FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		}
		return data, notFoundOr(err)
	}

	return data, nil
}

func (r *CartRepositoryImpl) GetCartByUserAndProduct(ctx context.Context, userID string, productID string) (data domain.Cart, err error) {
	uid, err := objectID(userID)
	if err != nil {
		return
	}
	pid, err := objectID(productID)
	if err != nil {
		return
	}

	return r.findOne(ctx, "GetCartByUserAndProduct", bson.D{{Key: "user", Value: uid}, {Key: "product", Value: pid}})
}

func (r *CartRepositoryImpl) GetCartByID(ctx context.Context, id string, userID string) (data domain.Cart, err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}
	uid, err := objectID(userID)
	if err != nil {
		return
	}

	return r.findOne(ctx, "GetCartByID", bson.D{{Key: "_id", Value: oid}, {Key: "user", Value: uid}})
}

func (r *CartRepositoryImpl) AddCart(ctx context.Context, data domain.Cart) (id string, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection(cartCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCart").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return "", errs.ErrConflict
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CartRepositoryImpl) UpdateCartQuantity(ctx context.Context, id string, quantity int64) (err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "quantity", Value: quantity},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := r.db.Collection(cartCollection).UpdateByID(ctx, oid, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCartQuantity").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteCart(ctx context.Context, id string, userID string) (err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}
	uid, err := objectID(userID)
	if err != nil {
		return
	}

	result, err := r.db.Collection(cartCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}, {Key: "user", Value: uid}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCart").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
