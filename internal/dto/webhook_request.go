package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type VANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

// NumericString holds a gateway field that may arrive as a JSON string or a
// JSON number. The text is kept exactly as sent since it feeds the signature.
type NumericString string

func (s *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = NumericString(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = NumericString(number)

	return nil
}

type PaymentNotification struct {
	TransactionType   string        `json:"transaction_type"`
	TransactionTime   string        `json:"transaction_time"`
	TransactionStatus string        `json:"transaction_status"`
	TransactionID     string        `json:"transaction_id"`
	StatusMessage     string        `json:"status_message"`
	StatusCode        NumericString `json:"status_code"`
	SignatureKey      string        `json:"signature_key"`
	SettlementTime    string        `json:"settlement_time"`
	PaymentType       string        `json:"payment_type"`
	OrderID           string        `json:"order_id"`
	MerchantID        string        `json:"merchant_id"`
	GrossAmount       NumericString `json:"gross_amount"`
	FraudStatus       string        `json:"fraud_status"`
	Currency          string        `json:"currency"`
	VANumbers         []VANumber    `json:"va_numbers"`
}
