package payment

import (
	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
)

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = domain.TransactionStatusPendingPayment
	StatusPaid           OrderStatus = domain.TransactionStatusPaid
	StatusCanceled       OrderStatus = domain.TransactionStatusCanceled
)

// Gateway transaction_status values.
const (
	GatewayCapture    = "capture"
	GatewaySettlement = "settlement"
	GatewayCancel     = "cancel"
	GatewayDeny       = "deny"
	GatewayExpire     = "expire"
	GatewayPending    = "pending"

	FraudAccept = "accept"

	paymentTypeBankTransfer = "bank_transfer"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPendingPayment, StatusPaid, StatusCanceled:
		return true
	}

	return false
}

// MapStatus translates a gateway status into an order status. ok is false
// when the notification must not change the order.
func MapStatus(transactionStatus, fraudStatus string) (status OrderStatus, ok bool) {
	switch transactionStatus {
	case GatewayCapture:
		if fraudStatus == FraudAccept {
			return StatusPaid, true
		}
		return "", false
	case GatewaySettlement:
		return StatusPaid, true
	case GatewayCancel, GatewayDeny, GatewayExpire:
		return StatusCanceled, true
	case GatewayPending:
		return StatusPendingPayment, true
	}

	return "", false
}

// PaymentMethod returns the channel recorded on the order. Bank transfers
// are recorded by the bank of the first virtual account.
func PaymentMethod(n dto.PaymentNotification) string {
	if n.PaymentType == paymentTypeBankTransfer && len(n.VANumbers) > 0 {
		return n.VANumbers[0].Bank
	}

	return n.PaymentType
}
