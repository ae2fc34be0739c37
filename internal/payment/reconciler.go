package payment

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

// OrderLookup finds a transaction by its public id. Implementations return
// errs.ErrNotFound when it does not exist.
type OrderLookup interface {
	GetTransactionByID(ctx context.Context, id string) (domain.Transaction, error)
}

type OrderUpdate struct {
	OrderID         string
	PreviousStatus  OrderStatus
	NewStatus       OrderStatus
	PaymentMethod   string
	SettlementTime  string
	ExpectedVersion int64
}

// Outcome is the result of a successful reconciliation. Update is nil when
// the notification leaves the order unchanged.
type Outcome struct {
	Order  domain.Transaction
	Update *OrderUpdate
}

type Reconciler struct {
	lookup OrderLookup
	secret string
}

func NewReconciler(lookup OrderLookup, secret string) *Reconciler {
	return &Reconciler{lookup: lookup, secret: secret}
}

// Reconcile authenticates n and computes the update it implies for the
// referenced order. Nothing is persisted.
func (r *Reconciler) Reconcile(ctx context.Context, n dto.PaymentNotification) (Outcome, error) {
	order, err := r.lookup.GetTransactionByID(ctx, n.OrderID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Outcome{}, errs.ErrOrderNotFound
		}
		return Outcome{}, err
	}

	if !VerifySignature(n.OrderID, string(n.StatusCode), string(n.GrossAmount), r.secret, n.SignatureKey) {
		log.Ctx(ctx).Warn().Str("component", "Reconcile").Str("order_id", n.OrderID).Msg("signature mismatch on payment notification")
		return Outcome{}, errs.ErrInvalidSignature
	}

	outcome := Outcome{Order: order}

	status, ok := MapStatus(n.TransactionStatus, n.FraudStatus)
	if !ok {
		return outcome, nil
	}

	outcome.Update = &OrderUpdate{
		OrderID:         order.ID,
		PreviousStatus:  OrderStatus(order.Status),
		NewStatus:       status,
		PaymentMethod:   PaymentMethod(n),
		SettlementTime:  n.SettlementTime,
		ExpectedVersion: order.Version,
	}

	return outcome, nil
}
