package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	messages []*gomail.Message
	err      error
}

func (s *recordingSender) DialAndSend(m ...*gomail.Message) error {
	s.messages = append(s.messages, m...)
	return s.err
}

func TestSendPaymentReceipt(t *testing.T) {
	paidAt := int64(1704153600)
	trx := domain.Transaction{
		ID:            "TRX-1",
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		GrossAmount:   30000,
		PaymentMethod: "bca",
		PaidAt:        &paidAt,
		Products: []domain.TransactionProduct{
			{ID: "p1", Name: "Kopi", Price: 15000, Quantity: 2},
		},
	}

	t.Run("sends to customer", func(t *testing.T) {
		sender := &recordingSender{}
		mailer := NewMailer(sender, "shop@example.com")

		require.NoError(t, mailer.SendPaymentReceipt(context.Background(), trx))
		require.Len(t, sender.messages, 1)
		assert.Equal(t, []string{"budi@example.com"}, sender.messages[0].GetHeader("To"))
		assert.Equal(t, []string{"Payment received for TRX-1"}, sender.messages[0].GetHeader("Subject"))
	})

	t.Run("skips when no email", func(t *testing.T) {
		sender := &recordingSender{}
		mailer := NewMailer(sender, "shop@example.com")

		noEmail := trx
		noEmail.CustomerEmail = ""
		require.NoError(t, mailer.SendPaymentReceipt(context.Background(), noEmail))
		assert.Empty(t, sender.messages)
	})

	t.Run("propagates send error", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("smtp down")}
		mailer := NewMailer(sender, "shop@example.com")

		assert.Error(t, mailer.SendPaymentReceipt(context.Background(), trx))
	})
}

func TestReceiptBody(t *testing.T) {
	paidAt := int64(1704153600)
	body := receiptBody(domain.Transaction{
		ID:           "TRX-1",
		CustomerName: "Budi",
		GrossAmount:  30000,
		PaidAt:       &paidAt,
		Products:     []domain.TransactionProduct{{Name: "Kopi", Price: 15000, Quantity: 2}},
	})

	assert.Contains(t, body, "Kopi x2: Rp30000")
	assert.Contains(t, body, "Total: Rp30000")
	assert.Contains(t, body, "TRX-1")
}
