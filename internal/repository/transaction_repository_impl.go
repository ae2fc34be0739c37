package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionRepositoryImpl struct {
	db *mongo.Database
}

func CreateTransactionRepository(db *mongo.Database) TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(transactionCollection)
}

func (r *TransactionRepositoryImpl) AddTransaction(ctx context.Context, data domain.Transaction) (err error) {
	_, err = r.collection().InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddTransaction").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrConflict
		}
		return
	}

	return nil
}

func (r *TransactionRepositoryImpl) GetTransactionByID(ctx context.Context, id string) (data domain.Transaction, err error) {
	err = r.collection().FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&data)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactionByID").Msg("")
		}
		return data, notFoundOr(err)
	}

	return
}

func transactionFilter(filter pkgdto.Filter) bson.D {
	query := bson.D{}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: filter.Status})
	}

	return query
}

func (r *TransactionRepositoryImpl) GetTransactions(ctx context.Context, filter pkgdto.Filter) (data []domain.Transaction, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit != 0 && filter.Page != 0 {
		opts = opts.SetSkip(filter.Skip()).SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection().Find(ctx, transactionFilter(filter), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactions").Msg("")
		return
	}

	data = []domain.Transaction{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactions").Msg("")
		return
	}

	return data, nil
}

func (r *TransactionRepositoryImpl) CountTransactions(ctx context.Context, filter pkgdto.Filter) (count int64, err error) {
	count, err = r.collection().CountDocuments(ctx, transactionFilter(filter))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountTransactions").Msg("")
	}

	return
}

func (r *TransactionRepositoryImpl) GetTransactionsByUserID(ctx context.Context, userID string) (data []domain.Transaction, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactionsByUserID").Msg("")
		return
	}

	data = []domain.Transaction{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactionsByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *TransactionRepositoryImpl) GetPendingTransactionsCreatedBefore(ctx context.Context, createdBefore int64) (data []domain.Transaction, err error) {
	filter := bson.D{
		{Key: "status", Value: domain.TransactionStatusPendingPayment},
		{Key: "created_at", Value: bson.D{{Key: "$lt", Value: createdBefore}}},
	}

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPendingTransactionsCreatedBefore").Msg("")
		return
	}

	data = []domain.Transaction{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPendingTransactionsCreatedBefore").Msg("")
		return
	}

	return data, nil
}

func (r *TransactionRepositoryImpl) UpdateTransactionToken(ctx context.Context, id string, token string, redirectURL string) (err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "token", Value: token},
		{Key: "redirect_url", Value: redirectURL},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := r.collection().UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateTransactionToken").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// UpdateTransactionStatus applies data only if the stored version still equals
// data.ExpectedVersion and bumps the version. A missing match is reported as
// errs.ErrConflict when the transaction exists and errs.ErrNotFound otherwise.
func (r *TransactionRepositoryImpl) UpdateTransactionStatus(ctx context.Context, data domain.TransactionStatusUpdate) (updated domain.Transaction, err error) {
	filter := bson.D{
		{Key: "id", Value: data.ID},
		{Key: "version", Value: data.ExpectedVersion},
	}

	set := bson.D{
		{Key: "status", Value: data.Status},
		{Key: "updated_at", Value: time.Now().Unix()},
	}
	if data.PaymentMethod != "" {
		set = append(set, bson.E{Key: "payment_method", Value: data.PaymentMethod})
	}
	if data.SettlementTime != "" {
		set = append(set, bson.E{Key: "settlement_time", Value: data.SettlementTime})
	}
	if data.PaidAt != nil {
		set = append(set, bson.E{Key: "paid_at", Value: *data.PaidAt})
	}

	update := bson.D{
		{Key: "$set", Value: set},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.collection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return updated, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateTransactionStatus").Msg("")
		return updated, err
	}

	if _, lookupErr := r.GetTransactionByID(ctx, data.ID); lookupErr != nil {
		return updated, lookupErr
	}

	log.Ctx(ctx).Warn().Str("component", "UpdateTransactionStatus").Str("transaction_id", data.ID).Int64("expected_version", data.ExpectedVersion).Msg("transaction changed concurrently")

	return updated, errs.ErrConflict
}

func (r *TransactionRepositoryImpl) DeleteTransaction(ctx context.Context, id string) (err error) {
	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteTransaction").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
