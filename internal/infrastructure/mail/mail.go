package mail

import (
	"context"
	"fmt"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/utils"
	"gopkg.in/gomail.v2"
)

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender Sender
	from   string
}

func CreateMailer(config *config.Config) *Mailer {
	return &Mailer{
		sender: gomail.NewDialer(config.SMTPConfig.Server, config.SMTPConfig.Port, config.SMTPConfig.Sender, config.SMTPConfig.Password),
		from:   config.SMTPConfig.Sender,
	}
}

func NewMailer(sender Sender, from string) *Mailer {
	return &Mailer{sender: sender, from: from}
}

func (m *Mailer) SendPaymentReceipt(ctx context.Context, trx domain.Transaction) error {
	if trx.CustomerEmail == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", trx.CustomerEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Payment received for %s", trx.ID))
	msg.SetBody("text/html", receiptBody(trx))

	return m.sender.DialAndSend(msg)
}

func receiptBody(trx domain.Transaction) string {
	paidAt := "-"
	if trx.PaidAt != nil {
		paidAt = utils.ConvertDateTimeToHumanReadableFormat(*trx.PaidAt)
	}

	body := fmt.Sprintf("<p>Hi %s,</p><p>We received your payment for transaction <b>%s</b>.</p><ul>", trx.CustomerName, trx.ID)
	for _, p := range trx.Products {
		body += fmt.Sprintf("<li>%s x%d: Rp%d</li>", p.Name, p.Quantity, p.Price*int64(p.Quantity))
	}
	body += fmt.Sprintf("</ul><p>Total: Rp%d<br>Payment method: %s<br>Paid at: %s</p>", trx.GrossAmount, trx.PaymentMethod, paidAt)

	return body
}
