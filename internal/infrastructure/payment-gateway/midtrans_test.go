package paymentgateway

import (
	"testing"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapRequest(t *testing.T) {
	trx := domain.Transaction{
		ID:            "TRX-1",
		GrossAmount:   30000,
		CustomerName:  "Budi Santoso",
		CustomerEmail: "budi@example.com",
		PhoneNumber:   "081234567890",
		Products: []domain.TransactionProduct{
			{ID: "p1", Name: "Kopi", Price: 15000, Quantity: 2},
		},
	}

	req := snapRequest(trx, "https://shop.example.com/transaction")

	assert.Equal(t, "TRX-1", req.TransactionDetails.OrderID)
	assert.Equal(t, int64(30000), req.TransactionDetails.GrossAmt)
	require.NotNil(t, req.Items)
	require.Len(t, *req.Items, 1)
	assert.Equal(t, int32(2), (*req.Items)[0].Qty)
	assert.Equal(t, "Budi Santoso", req.CustomerDetail.FName)
	assert.Equal(t, "https://shop.example.com/transaction?transaction_id=TRX-1", req.Callbacks.Finish)
}

func TestNotificationFromStatus(t *testing.T) {
	resp := &coreapi.TransactionStatusResponse{
		OrderID:           "TRX-1",
		StatusCode:        "200",
		GrossAmount:       "30000.00",
		SignatureKey:      "abc",
		TransactionStatus: "settlement",
		PaymentType:       "bank_transfer",
		SettlementTime:    "2024-01-02 07:00:00",
		VaNumbers:         []coreapi.VANumber{{Bank: "bni", VANumber: "9881"}},
	}

	n := notificationFromStatus(resp)

	assert.Equal(t, "TRX-1", n.OrderID)
	assert.Equal(t, dto.NumericString("30000.00"), n.GrossAmount)
	assert.Equal(t, "abc", n.SignatureKey)
	assert.Equal(t, "settlement", n.TransactionStatus)
	require.Len(t, n.VANumbers, 1)
	assert.Equal(t, "bni", n.VANumbers[0].Bank)
}
