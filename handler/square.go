package handler

import (
	"bytes"
	"context"
	"cruise_manager/config"
	"cruise_manager/metrics"
	"cruise_manager/model"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	squareSandboxURL    = "https://connect.squareupsandbox.com"
	squareProductionURL = "https://connect.squareup.com"
	squareVersion       = "2024-01-18"
)

var (
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// PaymentGateway charges and refunds card payments. Amounts are minor units.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req model.SquareCreatePayment) (*model.SquarePayment, error)
	RefundPayment(ctx context.Context, req model.SquareRefundPayment) (*model.SquareRefund, error)
	PublicConfig() model.PaymentConfig
}

// Square talks to the Square Payments API
type Square struct {
	Config model.SquareConfig
	client *http.Client
}

func NewSquare(s *config.Settings) *Square {
	cfg := model.SquareConfig{
		AccessToken:   s.SquareAccessToken,
		ApplicationId: s.SquareApplicationID,
		LocationId:    s.SquareLocationID,
		Environment:   s.SquareEnvironment,
		BaseURL:       squareSandboxURL,
		Version:       squareVersion,
	}
	if s.SquareEnvironment == "production" {
		cfg.BaseURL = squareProductionURL
	}
	return NewSquareWithConfig(cfg, &http.Client{Timeout: 30 * time.Second})
}

func NewSquareWithConfig(cfg model.SquareConfig, client *http.Client) *Square {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Version == "" {
		cfg.Version = squareVersion
	}
	return &Square{Config: cfg, client: client}
}

func (s *Square) PublicConfig() model.PaymentConfig {
	return model.PaymentConfig{
		ApplicationId: s.Config.ApplicationId,
		LocationId:    s.Config.LocationId,
		Environment:   s.Config.Environment,
	}
}

func (s *Square) CreatePayment(ctx context.Context, req model.SquareCreatePayment) (*model.SquarePayment, error) {
	if req.LocationId == "" {
		req.LocationId = s.Config.LocationId
	}

	var out model.SquarePaymentResponse
	status, err := s.post(ctx, "create_payment", "/v2/payments", req, &out)
	if err != nil {
		return nil, err
	}
	if err := classify(status, out.Errors); err != nil {
		return nil, err
	}
	if out.Payment == nil {
		return nil, errors.Wrap(ErrGatewayUnavailable, "empty payment in response")
	}
	switch out.Payment.Status {
	case "FAILED", "CANCELED":
		return nil, errors.Wrapf(ErrPaymentDeclined, "payment %s", strings.ToLower(out.Payment.Status))
	}
	return out.Payment, nil
}

func (s *Square) RefundPayment(ctx context.Context, req model.SquareRefundPayment) (*model.SquareRefund, error) {
	var out model.SquareRefundResponse
	status, err := s.post(ctx, "refund_payment", "/v2/refunds", req, &out)
	if err != nil {
		return nil, err
	}
	if err := classify(status, out.Errors); err != nil {
		return nil, err
	}
	if out.Refund == nil {
		return nil, errors.Wrap(ErrGatewayUnavailable, "empty refund in response")
	}
	return out.Refund, nil
}

func (s *Square) post(ctx context.Context, operation, path string, body, out interface{}) (int, error) {
	start := time.Now()
	defer func() {
		metrics.GatewayLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	raw, err := json.Marshal(body)
	if err != nil {
		return 0, errors.Wrap(err, "encode square request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Config.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, errors.Wrap(err, "build square request")
	}
	req.Header.Set("Authorization", "Bearer "+s.Config.AccessToken)
	req.Header.Set("Square-Version", s.Config.Version)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.ErrorsCount.WithLabelValues(operation).Inc()
		return 0, errors.Wrap(ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ErrorsCount.WithLabelValues(operation).Inc()
		return resp.StatusCode, errors.Wrapf(ErrGatewayUnavailable, "decode %s response (status %d)", operation, resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// classify maps a Square error payload to ErrPaymentDeclined for problems
// with the card or the request, and ErrGatewayUnavailable for the rest.
func classify(status int, errs []model.SquareError) error {
	if status < 300 && len(errs) == 0 {
		return nil
	}

	details := make([]string, 0, len(errs))
	declined := status < 500 && status != http.StatusUnauthorized && status != http.StatusTooManyRequests
	for _, e := range errs {
		details = append(details, e.Code+": "+e.Detail)
		switch e.Category {
		case "PAYMENT_METHOD_ERROR", "INVALID_REQUEST_ERROR":
		default:
			declined = false
		}
	}
	if len(details) == 0 {
		details = append(details, http.StatusText(status))
	}

	if declined {
		return errors.Wrap(ErrPaymentDeclined, strings.Join(details, "; "))
	}
	return errors.Wrap(ErrGatewayUnavailable, strings.Join(details, "; "))
}
