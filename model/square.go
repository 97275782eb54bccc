package model

type SquareConfig struct {
	AccessToken   string
	ApplicationId string
	LocationId    string
	Environment   string
	BaseURL       string
	Version       string
}

type SquareMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type SquareCreatePayment struct {
	SourceId          string      `json:"source_id"`
	IdempotencyKey    string      `json:"idempotency_key"`
	AmountMoney       SquareMoney `json:"amount_money"`
	LocationId        string      `json:"location_id,omitempty"`
	Note              string      `json:"note,omitempty"`
	BuyerEmailAddress string      `json:"buyer_email_address,omitempty"`
	ReferenceId       string      `json:"reference_id,omitempty"`
}

type SquareRefundPayment struct {
	IdempotencyKey string      `json:"idempotency_key"`
	PaymentId      string      `json:"payment_id"`
	AmountMoney    SquareMoney `json:"amount_money"`
	Reason         string      `json:"reason,omitempty"`
}

type SquarePayment struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	ReceiptUrl  string      `json:"receipt_url"`
	AmountMoney SquareMoney `json:"amount_money"`
}

type SquareRefund struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	PaymentId   string      `json:"payment_id"`
	AmountMoney SquareMoney `json:"amount_money"`
}

type SquareError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

type SquarePaymentResponse struct {
	Payment *SquarePayment `json:"payment"`
	Errors  []SquareError  `json:"errors"`
}

type SquareRefundResponse struct {
	Refund *SquareRefund `json:"refund"`
	Errors []SquareError `json:"errors"`
}
