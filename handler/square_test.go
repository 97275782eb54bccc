package handler

import (
	"context"
	"cruise_manager/config"
	"cruise_manager/model"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareServer(t *testing.T, status int, body string, check func(r *http.Request)) *Square {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewSquareWithConfig(model.SquareConfig{
		AccessToken: "token-123",
		LocationId:  "LOC1",
		BaseURL:     srv.URL,
	}, srv.Client())
}

func TestSquareCreatePayment(t *testing.T) {
	var got model.SquareCreatePayment
	sq := squareServer(t, 200, `{"payment":{"id":"sq-1","status":"COMPLETED","receipt_url":"https://squareup.com/receipt/sq-1","amount_money":{"amount":188000,"currency":"EUR"}}}`, func(r *http.Request) {
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, squareVersion, r.Header.Get("Square-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	payment, err := sq.CreatePayment(context.Background(), model.SquareCreatePayment{
		SourceId:       "cnon:card-nonce-ok",
		IdempotencyKey: "key-1",
		AmountMoney:    model.SquareMoney{Amount: 188000, Currency: "EUR"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sq-1", payment.ID)
	assert.Equal(t, "https://squareup.com/receipt/sq-1", payment.ReceiptUrl)

	assert.Equal(t, "LOC1", got.LocationId)
	assert.Equal(t, int64(188000), got.AmountMoney.Amount)
	assert.Equal(t, "key-1", got.IdempotencyKey)
}

func TestSquareCreatePaymentErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		detail string
	}{
		{"card declined", 402, `{"errors":[{"category":"PAYMENT_METHOD_ERROR","code":"CARD_DECLINED","detail":"Card declined."}]}`, ErrPaymentDeclined, "CARD_DECLINED"},
		{"bad request", 400, `{"errors":[{"category":"INVALID_REQUEST_ERROR","code":"INVALID_CARD_DATA","detail":"Invalid card data."}]}`, ErrPaymentDeclined, "INVALID_CARD_DATA"},
		{"auth", 401, `{"errors":[{"category":"AUTHENTICATION_ERROR","code":"UNAUTHORIZED","detail":"Bad token."}]}`, ErrGatewayUnavailable, "UNAUTHORIZED"},
		{"server", 500, `{"errors":[{"category":"API_ERROR","code":"INTERNAL_SERVER_ERROR","detail":"Oops."}]}`, ErrGatewayUnavailable, "INTERNAL_SERVER_ERROR"},
		{"not json", 502, `<html>bad gateway</html>`, ErrGatewayUnavailable, "status 502"},
		{"failed status", 200, `{"payment":{"id":"sq-2","status":"FAILED"}}`, ErrPaymentDeclined, "failed"},
		{"empty", 200, `{}`, ErrGatewayUnavailable, "empty payment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := squareServer(t, tt.status, tt.body, nil)
			_, err := sq.CreatePayment(context.Background(), model.SquareCreatePayment{SourceId: "x", IdempotencyKey: "k"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestSquareUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	sq := NewSquareWithConfig(model.SquareConfig{BaseURL: url}, nil)
	_, err := sq.CreatePayment(context.Background(), model.SquareCreatePayment{SourceId: "x"})
	assert.True(t, errors.Is(err, ErrGatewayUnavailable), "got %v", err)
}

func TestSquareRefundPayment(t *testing.T) {
	var got model.SquareRefundPayment
	sq := squareServer(t, 200, `{"refund":{"id":"rf-1","status":"PENDING","payment_id":"sq-1","amount_money":{"amount":5000,"currency":"EUR"}}}`, func(r *http.Request) {
		assert.Equal(t, "/v2/refunds", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	refund, err := sq.RefundPayment(context.Background(), model.SquareRefundPayment{
		IdempotencyKey: "key-2",
		PaymentId:      "sq-1",
		AmountMoney:    model.SquareMoney{Amount: 5000, Currency: "EUR"},
	})
	require.NoError(t, err)
	assert.Equal(t, "rf-1", refund.ID)
	assert.Equal(t, "sq-1", got.PaymentId)
	assert.Equal(t, int64(5000), got.AmountMoney.Amount)
}

func TestNewSquareEnvironment(t *testing.T) {
	sandbox := NewSquare(&config.Settings{SquareEnvironment: "sandbox", SquareApplicationID: "app", SquareLocationID: "loc"})
	assert.Equal(t, squareSandboxURL, sandbox.Config.BaseURL)
	assert.Equal(t, model.PaymentConfig{ApplicationId: "app", LocationId: "loc", Environment: "sandbox"}, sandbox.PublicConfig())

	prod := NewSquare(&config.Settings{SquareEnvironment: "production"})
	assert.Equal(t, squareProductionURL, prod.Config.BaseURL)
}
