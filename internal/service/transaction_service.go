package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/payment"
	"github.com/alimikegami/e-commerce/storefront-service/internal/repository"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const transactionIDPrefix = "TRX-"

const (
	sourceWebhook = "webhook"
	sourceSync    = "sync"
)

// Notification outcomes recorded in the ledger and in metrics.
const (
	outcomeApplied          = "applied"
	outcomeIgnored          = "ignored"
	outcomeRejected         = "rejected"
	outcomeConflict         = "conflict"
	outcomeNotFound         = "not_found"
	outcomeInvalidSignature = "invalid_signature"
	outcomeError            = "error"
)

type TransactionServiceImpl struct {
	repo       repository.TransactionRepository
	ledger     repository.NotificationLogRepository
	gateway    PaymentGateway
	publisher  EventPublisher
	mailer     ReceiptMailer
	reconciler *payment.Reconciler
	policy     payment.TransitionPolicy
	config     *config.Config
	now        func() time.Time
}

// CreateTransactionService wires the transaction use cases. ledger and
// mailer may be nil when PostgreSQL or SMTP are not configured.
func CreateTransactionService(repo repository.TransactionRepository, ledger repository.NotificationLogRepository, gateway PaymentGateway, publisher EventPublisher, mailer ReceiptMailer, policy payment.TransitionPolicy, config *config.Config) TransactionService {
	return &TransactionServiceImpl{
		repo:       repo,
		ledger:     ledger,
		gateway:    gateway,
		publisher:  publisher,
		mailer:     mailer,
		reconciler: payment.NewReconciler(repo, config.MidtransConfig.ServerKey),
		policy:     policy,
		config:     config,
		now:        time.Now,
	}
}

func (s *TransactionServiceImpl) AddTransaction(ctx context.Context, req dto.TransactionRequest) (resp dto.CreateTransactionResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	trxUUID, err := uuid.NewV7()
	if err != nil {
		return resp, fmt.Errorf("error generating transaction id: %w", err)
	}

	products := make([]domain.TransactionProduct, len(req.Products))
	for i, p := range req.Products {
		products[i] = domain.TransactionProduct{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		}
	}

	timestamp := s.now().Unix()
	trx := domain.Transaction{
		ID:              transactionIDPrefix + trxUUID.String(),
		UserID:          req.UserID,
		GrossAmount:     req.GrossAmount,
		CustomerName:    strings.TrimSpace(req.FirstName + " " + req.LastName),
		CustomerEmail:   req.CustomerEmail,
		PhoneNumber:     req.PhoneNumber,
		Status:          domain.TransactionStatusPendingPayment,
		ShippingAddress: req.ShippingAddress,
		ShippingCourier: req.ShippingCourier,
		ShippingService: req.ShippingService,
		TrackingNumber:  req.TrackingNumber,
		PaymentMethod:   req.PaymentMethod,
		Products:        products,
		CreatedAt:       timestamp,
		UpdatedAt:       timestamp,
	}

	if err = s.repo.AddTransaction(ctx, trx); err != nil {
		return
	}

	session, err := s.gateway.CreateSnapTransaction(ctx, trx)
	if err != nil {
		return
	}

	if err = s.repo.UpdateTransactionToken(ctx, trx.ID, session.Token, session.RedirectURL); err != nil {
		return
	}

	s.publish(ctx, dto.EventTransactionCreated, trx, "")

	return dto.CreateTransactionResponse{
		ID:            trx.ID,
		GrossAmount:   trx.GrossAmount,
		CustomerName:  trx.CustomerName,
		CustomerEmail: trx.CustomerEmail,
		Token:         session.Token,
		RedirectURL:   session.RedirectURL,
	}, nil
}

func (s *TransactionServiceImpl) GetTransactions(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.Pagination, err error) {
	datas, err := s.repo.GetTransactions(ctx, filter)
	if err != nil {
		return
	}

	count, err := s.repo.CountTransactions(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.TransactionResponse, len(datas))
	for i, data := range datas {
		records[i] = toTransactionResponse(data)
	}

	resp.Records = records
	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: count,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}

	return
}

func (s *TransactionServiceImpl) getTransaction(ctx context.Context, id string) (domain.Transaction, error) {
	trx, err := s.repo.GetTransactionByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return trx, errs.ErrOrderNotFound
	}

	return trx, err
}

// getOwnedTransaction hides transactions of other users behind the same
// error as a missing one.
func (s *TransactionServiceImpl) getOwnedTransaction(ctx context.Context, id string, userID string) (domain.Transaction, error) {
	trx, err := s.getTransaction(ctx, id)
	if err != nil {
		return trx, err
	}

	if trx.UserID != userID {
		return domain.Transaction{}, errs.ErrOrderNotFound
	}

	return trx, nil
}

func (s *TransactionServiceImpl) GetTransactionByID(ctx context.Context, id string, userID string) (resp dto.TransactionResponse, err error) {
	trx, err := s.getOwnedTransaction(ctx, id, userID)
	if err != nil {
		return
	}

	return toTransactionResponse(trx), nil
}

func (s *TransactionServiceImpl) GetTransactionsByUserID(ctx context.Context, userID string) (resp []dto.TransactionResponse, err error) {
	datas, err := s.repo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		return
	}

	if len(datas) == 0 {
		return nil, errs.ErrOrderNotFound
	}

	resp = make([]dto.TransactionResponse, len(datas))
	for i, data := range datas {
		resp[i] = toTransactionResponse(data)
	}

	return
}

// UpdateTransactionStatus is the administrative override. It bypasses the
// transition policy but still honours optimistic concurrency.
func (s *TransactionServiceImpl) UpdateTransactionStatus(ctx context.Context, id string, req dto.TransactionStatusRequest) (resp dto.TransactionResponse, err error) {
	status := payment.OrderStatus(req.Status)
	if !status.Valid() {
		return resp, errs.ErrInvalidStatus
	}

	trx, err := s.getTransaction(ctx, id)
	if err != nil {
		return
	}

	update := domain.TransactionStatusUpdate{
		ID:              trx.ID,
		Status:          string(status),
		ExpectedVersion: trx.Version,
	}
	if status == payment.StatusPaid && trx.Status != domain.TransactionStatusPaid {
		paidAt := s.now().Unix()
		update.PaidAt = &paidAt
	}

	updated, err := s.repo.UpdateTransactionStatus(ctx, update)
	if err != nil {
		return resp, s.translateUpdateErr(err)
	}

	s.publish(ctx, dto.EventTransactionStatusUpdated, updated, trx.Status)

	return toTransactionResponse(updated), nil
}

func (s *TransactionServiceImpl) DeleteTransaction(ctx context.Context, id string, userID string) (err error) {
	trx, err := s.getOwnedTransaction(ctx, id, userID)
	if err != nil {
		return
	}

	if err = s.repo.DeleteTransaction(ctx, id); err != nil {
		return s.translateUpdateErr(err)
	}

	s.publish(ctx, dto.EventTransactionDeleted, trx, trx.Status)

	return nil
}

func (s *TransactionServiceImpl) HandlePaymentNotification(ctx context.Context, req dto.PaymentNotification) (resp dto.NotificationResult, err error) {
	return s.applyNotification(ctx, req, sourceWebhook)
}

// SyncTransactionStatus asks the gateway for the current state of id and
// feeds the answer through the same path as a webhook notification.
func (s *TransactionServiceImpl) SyncTransactionStatus(ctx context.Context, id string) (resp dto.NotificationResult, err error) {
	if _, err = s.getTransaction(ctx, id); err != nil {
		return
	}

	n, err := s.gateway.CheckTransaction(ctx, id)
	if err != nil {
		return
	}

	return s.applyNotification(ctx, n, sourceSync)
}

func (s *TransactionServiceImpl) applyNotification(ctx context.Context, n dto.PaymentNotification, source string) (resp dto.NotificationResult, err error) {
	outcome := outcomeError
	defer func() {
		paymentNotifications.WithLabelValues(source, outcome).Inc()
		s.recordNotification(ctx, n, source, outcome)
	}()

	result, err := s.reconciler.Reconcile(ctx, n)
	if err != nil {
		outcome = notificationOutcome(err)
		return
	}

	resp.Transaction = toTransactionResponse(result.Order)

	if result.Update == nil {
		outcome = outcomeIgnored
		log.Ctx(ctx).Info().Str("component", "applyNotification").Str("order_id", n.OrderID).Str("transaction_status", n.TransactionStatus).Str("fraud_status", n.FraudStatus).Msg("notification does not change the transaction")
		return resp, nil
	}

	upd := result.Update
	if !s.policy.Allow(upd.PreviousStatus, upd.NewStatus) {
		outcome = outcomeRejected
		log.Ctx(ctx).Warn().Str("component", "applyNotification").Str("order_id", n.OrderID).Str("from", string(upd.PreviousStatus)).Str("to", string(upd.NewStatus)).Msg("transition rejected by policy")
		return resp, nil
	}

	statusUpdate := domain.TransactionStatusUpdate{
		ID:              upd.OrderID,
		Status:          string(upd.NewStatus),
		PaymentMethod:   upd.PaymentMethod,
		SettlementTime:  upd.SettlementTime,
		ExpectedVersion: upd.ExpectedVersion,
	}
	if upd.NewStatus == payment.StatusPaid {
		statusUpdate.PaidAt = s.paidAt(upd.SettlementTime)
	}

	updated, err := s.repo.UpdateTransactionStatus(ctx, statusUpdate)
	if err != nil {
		err = s.translateUpdateErr(err)
		outcome = notificationOutcome(err)
		return resp, err
	}

	outcome = outcomeApplied
	resp.Applied = true
	resp.Transaction = toTransactionResponse(updated)

	s.publish(ctx, dto.EventTransactionStatusUpdated, updated, string(upd.PreviousStatus))

	if upd.NewStatus == payment.StatusPaid && upd.PreviousStatus != payment.StatusPaid {
		s.sendReceipt(ctx, updated)
	}

	return resp, nil
}

// ExpirePendingTransactions cancels transactions that stayed in
// PENDING_PAYMENT longer than the configured expiry.
func (s *TransactionServiceImpl) ExpirePendingTransactions(ctx context.Context) (expired int, err error) {
	cutoff := s.now().Add(-s.config.PaymentConfig.Expiry).Unix()

	datas, err := s.repo.GetPendingTransactionsCreatedBefore(ctx, cutoff)
	if err != nil {
		return
	}

	for _, trx := range datas {
		if !s.policy.Allow(payment.OrderStatus(trx.Status), payment.StatusCanceled) {
			continue
		}

		updated, err := s.repo.UpdateTransactionStatus(ctx, domain.TransactionStatusUpdate{
			ID:              trx.ID,
			Status:          domain.TransactionStatusCanceled,
			ExpectedVersion: trx.Version,
		})
		if err != nil {
			if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrNotFound) {
				continue
			}
			return expired, fmt.Errorf("failed to expire transaction %s: %w", trx.ID, err)
		}

		expired++
		expiredTransactions.Inc()
		s.publish(ctx, dto.EventTransactionStatusUpdated, updated, trx.Status)
	}

	if expired > 0 {
		log.Ctx(ctx).Info().Str("component", "ExpirePendingTransactions").Int("expired", expired).Msg("pending transactions canceled")
	}

	return expired, nil
}

func (s *TransactionServiceImpl) paidAt(settlementTime string) *int64 {
	ts := s.now().Unix()
	if settlementTime != "" {
		if parsed, err := utils.ConvertDateTimeWibToUnixTimestamp(settlementTime); err == nil {
			ts = parsed
		}
	}

	return &ts
}

func (s *TransactionServiceImpl) translateUpdateErr(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.ErrOrderNotFound
	}

	return err
}

func notificationOutcome(err error) string {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		return outcomeNotFound
	case errors.Is(err, errs.ErrInvalidSignature):
		return outcomeInvalidSignature
	case errors.Is(err, errs.ErrConflict):
		return outcomeConflict
	}

	return outcomeError
}

func (s *TransactionServiceImpl) recordNotification(ctx context.Context, n dto.PaymentNotification, source string, outcome string) {
	if s.ledger == nil {
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "recordNotification").Msg("")
		return
	}

	err = s.ledger.AddNotificationLog(ctx, domain.PaymentNotificationLog{
		OrderID:           n.OrderID,
		Source:            source,
		TransactionStatus: n.TransactionStatus,
		FraudStatus:       n.FraudStatus,
		StatusCode:        string(n.StatusCode),
		GrossAmount:       string(n.GrossAmount),
		PaymentType:       n.PaymentType,
		Outcome:           outcome,
		Payload:           string(payload),
		CreatedAt:         s.now().Unix(),
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "recordNotification").Str("order_id", n.OrderID).Msg("failed to append notification ledger")
	}
}

func (s *TransactionServiceImpl) publish(ctx context.Context, eventType string, trx domain.Transaction, previousStatus string) {
	err := s.publisher.Publish(ctx, trx.ID, dto.KafkaMessage{
		EventType: eventType,
		Data: dto.TransactionEvent{
			TransactionID:  trx.ID,
			UserID:         trx.UserID,
			PreviousStatus: previousStatus,
			Status:         trx.Status,
			PaymentMethod:  trx.PaymentMethod,
			GrossAmount:    trx.GrossAmount,
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publish").Str("event_type", eventType).Str("transaction_id", trx.ID).Msg("")
	}
}

func (s *TransactionServiceImpl) sendReceipt(ctx context.Context, trx domain.Transaction) {
	if s.mailer == nil {
		return
	}

	if err := s.mailer.SendPaymentReceipt(ctx, trx); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "sendReceipt").Str("transaction_id", trx.ID).Msg("")
	}
}
