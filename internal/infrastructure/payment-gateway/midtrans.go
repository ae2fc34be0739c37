package paymentgateway

import (
	"context"
	"fmt"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	circuitbreaker "github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// SnapSession is what the storefront needs to hand the buyer over to the
// hosted payment page.
type SnapSession struct {
	Token       string
	RedirectURL string
}

type MidtransGateway struct {
	snapClient *snap.Client
	coreClient *coreapi.Client
	finishURL  string
	snapCB     *gobreaker.CircuitBreaker[SnapSession]
	statusCB   *gobreaker.CircuitBreaker[dto.PaymentNotification]
}

func CreateMidtransGateway(config *config.Config) *MidtransGateway {
	env := midtrans.Sandbox
	if config.MidtransConfig.Production {
		env = midtrans.Production
	}

	snapClient := &snap.Client{}
	snapClient.New(config.MidtransConfig.ServerKey, env)

	coreClient := &coreapi.Client{}
	coreClient.New(config.MidtransConfig.ServerKey, env)

	return &MidtransGateway{
		snapClient: snapClient,
		coreClient: coreClient,
		finishURL:  fmt.Sprintf("%s/transaction", config.FrontendURL),
		snapCB:     circuitbreaker.CreateCircuitBreaker[SnapSession]("midtrans-snap"),
		statusCB:   circuitbreaker.CreateCircuitBreaker[dto.PaymentNotification]("midtrans-status"),
	}
}

func snapRequest(trx domain.Transaction, finishURL string) *snap.Request {
	items := make([]midtrans.ItemDetails, len(trx.Products))
	for i, p := range trx.Products {
		items[i] = midtrans.ItemDetails{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Qty:   p.Quantity,
		}
	}

	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  trx.ID,
			GrossAmt: trx.GrossAmount,
		},
		Items: &items,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: trx.CustomerName,
			Email: trx.CustomerEmail,
			Phone: trx.PhoneNumber,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s?transaction_id=%s", finishURL, trx.ID),
		},
	}
}

func (g *MidtransGateway) CreateSnapTransaction(ctx context.Context, trx domain.Transaction) (SnapSession, error) {
	req := snapRequest(trx, g.finishURL)

	session, err := g.snapCB.Execute(func() (SnapSession, error) {
		resp, mErr := g.snapClient.CreateTransaction(req)
		if mErr != nil {
			return SnapSession{}, mErr
		}

		return SnapSession{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateSnapTransaction").Str("order_id", trx.ID).Msg("")
		return SnapSession{}, fmt.Errorf("%w: %v", errs.ErrPaymentGateway, err)
	}

	return session, nil
}

// CheckTransaction fetches the current gateway view of orderID in the shape
// of a webhook notification, signature included.
func (g *MidtransGateway) CheckTransaction(ctx context.Context, orderID string) (dto.PaymentNotification, error) {
	n, err := g.statusCB.Execute(func() (dto.PaymentNotification, error) {
		resp, mErr := g.coreClient.CheckTransaction(orderID)
		if mErr != nil {
			return dto.PaymentNotification{}, mErr
		}

		return notificationFromStatus(resp), nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CheckTransaction").Str("order_id", orderID).Msg("")
		return dto.PaymentNotification{}, fmt.Errorf("%w: %v", errs.ErrPaymentGateway, err)
	}

	return n, nil
}

func notificationFromStatus(resp *coreapi.TransactionStatusResponse) dto.PaymentNotification {
	vaNumbers := make([]dto.VANumber, len(resp.VaNumbers))
	for i, va := range resp.VaNumbers {
		vaNumbers[i] = dto.VANumber{Bank: va.Bank, VANumber: va.VANumber}
	}

	return dto.PaymentNotification{
		TransactionTime:   resp.TransactionTime,
		TransactionStatus: resp.TransactionStatus,
		TransactionID:     resp.TransactionID,
		StatusMessage:     resp.StatusMessage,
		StatusCode:        dto.NumericString(resp.StatusCode),
		SignatureKey:      resp.SignatureKey,
		SettlementTime:    resp.SettlementTime,
		PaymentType:       resp.PaymentType,
		OrderID:           resp.OrderID,
		MerchantID:        resp.MerchantID,
		GrossAmount:       dto.NumericString(resp.GrossAmount),
		FraudStatus:       resp.FraudStatus,
		Currency:          resp.Currency,
		VANumbers:         vaNumbers,
	}
}
