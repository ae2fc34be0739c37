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

type UserRepositoryImpl struct {
	db *mongo.Database
}

func CreateUserRepository(db *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id string, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection(userCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return "", errs.ErrEmailAlreadyUsed
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, component string, filter bson.D) (data domain.User, err error) {
	err = r.db.Collection(userCollection).FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		}
		return data, notFoundOr(err)
	}

	return data, nil
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id string) (data domain.User, err error) {
	oid, err := objectID(id)
	if err != nil {
		return
	}

	return r.findOne(ctx, "GetUserByID", bson.D{{Key: "_id", Value: oid}})
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (data domain.User, err error) {
	return r.findOne(ctx, "GetUserByEmail", bson.D{{Key: "email", Value: email}})
}

func (r *UserRepositoryImpl) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (data domain.User, err error) {
	return r.findOne(ctx, "GetUserByPhoneNumber", bson.D{{Key: "phone_number", Value: phoneNumber}})
}

func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (data domain.User, err error) {
	return r.findOne(ctx, "GetUserByUsername", bson.D{{Key: "username", Value: username}})
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	fields := bson.D{
		{Key: "first_name", Value: data.FirstName},
		{Key: "last_name", Value: data.LastName},
		{Key: "image_url", Value: data.ImageURL},
		{Key: "address", Value: data.Address},
		{Key: "zip_code", Value: data.ZipCode},
		{Key: "city", Value: data.City},
		{Key: "province", Value: data.Province},
		{Key: "country", Value: data.Country},
		{Key: "updated_at", Value: time.Now().Unix()},
	}
	// username is covered by a sparse unique index, so an empty value is never written
	if data.Username != "" {
		fields = append(fields, bson.E{Key: "username", Value: data.Username})
	}
	update := bson.D{{Key: "$set", Value: fields}}

	result, err := r.db.Collection(userCollection).UpdateOne(ctx, bson.D{{Key: "_id", Value: data.ID}}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("Failed to update user")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrUsernameAlreadyUsed
		}
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id string, hashedPassword string) (err error) {
	oid, err := objectID(id)
	if err != nil {
		return errs.ErrAccountNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "hashed_password", Value: hashedPassword},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := r.db.Collection(userCollection).UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdatePassword").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

// DeleteUser removes the user's dependent documents first and the user
// document last.
func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id string) (err error) {
	oid, err := objectID(id)
	if err != nil {
		return errs.ErrAccountNotFound
	}

	dependents := []struct {
		collection string
		filter     bson.D
	}{
		{cartCollection, bson.D{{Key: "user", Value: oid}}},
		{wishlistCollection, bson.D{{Key: "user", Value: oid}}},
		{transactionCollection, bson.D{{Key: "user_id", Value: id}}},
	}
	for _, d := range dependents {
		result, err := r.db.Collection(d.collection).DeleteMany(ctx, d.filter)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Str("collection", d.collection).Msg("")
			return err
		}
		log.Ctx(ctx).Info().Str("component", "DeleteUser").Str("collection", d.collection).Int64("deleted", result.DeletedCount).Msg("")
	}

	result, err := r.db.Collection(userCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}
