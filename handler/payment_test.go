package handler

import (
	"cruise_manager/constants"
	"cruise_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPaymentBody() map[string]any {
	return map[string]any{
		"sourceId":      "cnon:card-nonce-ok",
		"cruiseId":      1,
		"bookingType":   "cabin",
		"passengers":    2,
		"cardId":        "12months",
		"cardQuantity":  1,
		"customerEmail": "Jane@Example.com",
		"customerName":  "Jane Doe",
	}
}

func TestGetPaymentConfig(t *testing.T) {
	app := newTestApp()

	withGateway(t, nil)
	resp, _ := doJSON(t, app, "GET", "/api/v1/payments/config", nil)
	assert.Equal(t, 503, resp.StatusCode)

	withGateway(t, &fakeGateway{})
	resp, raw := doJSON(t, app, "GET", "/api/v1/payments/config", nil)
	require.Equal(t, 200, resp.StatusCode)
	cfg := decode[model.PaymentConfig](t, raw).Data
	assert.Equal(t, "sandbox-app", cfg.ApplicationId)
	assert.Equal(t, "L1", cfg.LocationId)
}

func TestCreatePaymentValidation(t *testing.T) {
	app := newTestApp()
	gw := &fakeGateway{}
	withGateway(t, gw)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing source", func(b map[string]any) { delete(b, "sourceId") }},
		{"bad email", func(b map[string]any) { b["customerEmail"] = "not-an-email" }},
		{"short name", func(b map[string]any) { b["customerName"] = "J" }},
		{"booking type", func(b map[string]any) { b["bookingType"] = "boat" }},
		{"no passengers", func(b map[string]any) { b["passengers"] = 0 }},
		{"too many passengers", func(b map[string]any) { b["passengers"] = 9 }},
		{"more cards than passengers", func(b map[string]any) { b["cardQuantity"] = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validPaymentBody()
			tt.mutate(body)
			resp, raw := doJSON(t, app, "POST", "/api/v1/payments", body)
			assert.Equal(t, 400, resp.StatusCode, string(raw))
			assert.Equal(t, constants.ERROR_INPUT, decode[any](t, raw).Message)
		})
	}
	assert.Zero(t, gw.calls)
}

func TestCreatePaymentUnknownCard(t *testing.T) {
	app := newTestApp()
	gw := &fakeGateway{}
	withGateway(t, gw)

	body := validPaymentBody()
	body["cardId"] = "48months"
	resp, raw := doJSON(t, app, "POST", "/api/v1/payments", body)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, constants.UNKNOWN_CLUB_CARD, decode[any](t, raw).Message)
	assert.Zero(t, gw.calls)
}

func TestCreatePaymentWithoutGateway(t *testing.T) {
	app := newTestApp()
	withGateway(t, nil)

	resp, _ := doJSON(t, app, "POST", "/api/v1/payments", validPaymentBody())
	assert.Equal(t, 503, resp.StatusCode)
}

func TestBoardingPassQR(t *testing.T) {
	date := "15-22 juin 2026"
	png, err := boardingPassQR(&model.Payment{PaymentCode: "abc", CruiseId: 3, Passengers: 2, SelectedDate: &date})
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestSendContactValidation(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, "POST", "/api/v1/contact", map[string]any{"name": "Jane", "message": "hello"})
	assert.Equal(t, 400, resp.StatusCode)

	prev := Settings.ContactEmail
	Settings.ContactEmail = ""
	t.Cleanup(func() { Settings.ContactEmail = prev })

	resp, _ = doJSON(t, app, "POST", "/api/v1/contact", map[string]any{"name": "Jane", "email": "jane@example.com", "message": "hello"})
	assert.Equal(t, 503, resp.StatusCode)
}
