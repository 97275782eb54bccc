package handler

import (
	"cruise_manager/constants"
	"cruise_manager/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAmount(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, decimal.NewFromInt(want).Equal(got), "%s: want %d, got %s", field, want, got)
}

func TestGetClubCards(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, "GET", "/api/v1/club-cards?lang=en", nil)
	require.Equal(t, 200, resp.StatusCode)
	out := decode[[]ClubCardView](t, raw)

	require.Len(t, out.Data, 3)
	assert.Equal(t, "12months", out.Data[0].ID)
	assert.Equal(t, 10, out.Data[0].DiscountPercent)
	assert.Equal(t, "€90", out.Data[0].Display)
	assert.Equal(t, "36months", out.Data[2].ID)
	assertAmount(t, 140, out.Data[2].UnitPrice, "unitPrice")
}

func TestCreateQuoteWithExplicitPrice(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, "POST", "/api/v1/quotes?lang=en", map[string]any{
		"basePricePerPerson": 500,
		"passengers":         4,
		"cardId":             "36months",
		"cardQuantity":       2,
	})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	q := decode[model.QuoteResponse](t, raw).Data

	assertAmount(t, 2000, q.TotalBasePrice, "totalBasePrice")
	assertAmount(t, 400, q.DiscountAmount, "discountAmount")
	assertAmount(t, 280, q.TotalCardCost, "totalCardCost")
	assertAmount(t, 1880, q.TotalToPay, "totalToPay")
	assertAmount(t, 120, q.ImmediateSavings, "immediateSavings")
	assert.Equal(t, int64(188000), q.TotalToPayMinor)
	assert.Equal(t, "€1,880", q.Display.TotalToPay)
	assert.Equal(t, constants.BookingCabin, q.BookingType)
	assert.Equal(t, constants.Currency, q.Currency)
	require.NotNil(t, q.CardId)
	assert.Equal(t, "36months", *q.CardId)
	assert.Nil(t, q.PrivateOnlyNotice)
}

func TestCreateQuotePrivateOnlyDestination(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, "POST", "/api/v1/quotes", map[string]any{
		"basePricePerPerson": 5000,
		"destination":        "Greece",
		"passengers":         8,
		"cardId":             "24months",
		"cardQuantity":       1,
	})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	q := decode[model.QuoteResponse](t, raw).Data

	assertAmount(t, 40000, q.TotalBasePrice, "totalBasePrice")
	assertAmount(t, 34150, q.TotalToPay, "totalToPay")
	assertAmount(t, 5850, q.ImmediateSavings, "immediateSavings")
	assert.True(t, q.IsPrivateOnlyDestination)
	assert.Equal(t, "34 150 €", q.Display.TotalToPay)
	require.NotNil(t, q.PrivateOnlyNotice)
	assert.Contains(t, *q.PrivateOnlyNotice, "base 8 passagers")
}

func TestCreateQuoteDefaultsAndClamps(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, "POST", "/api/v1/quotes", map[string]any{
		"basePricePerPerson": 500,
		"cardId":             "12months",
		"cardQuantity":       5,
	})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	q := decode[model.QuoteResponse](t, raw).Data

	assert.Equal(t, 2, q.PassengerCount)
	assert.Equal(t, 2, q.CardQuantity)
	assertAmount(t, 1080, q.TotalToPay, "totalToPay")

	resp, raw = doJSON(t, app, "POST", "/api/v1/quotes", map[string]any{"basePricePerPerson": 500, "passengers": 3, "cardId": "none", "cardQuantity": 2})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	q = decode[model.QuoteResponse](t, raw).Data
	assert.Nil(t, q.CardId)
	assert.Equal(t, 0, q.CardQuantity)
	assertAmount(t, 1500, q.TotalToPay, "totalToPay")
}

func TestCreateQuoteRejectsBadInput(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{"no price source", map[string]any{"passengers": 2}, constants.ERROR_INPUT},
		{"negative price", map[string]any{"basePricePerPerson": -1}, constants.ERROR_INPUT},
		{"too many passengers", map[string]any{"basePricePerPerson": 500, "passengers": 9}, constants.ERROR_INPUT},
		{"bad booking type", map[string]any{"basePricePerPerson": 500, "bookingType": "boat"}, constants.ERROR_INPUT},
		{"unknown card", map[string]any{"basePricePerPerson": 500, "cardId": "48months"}, constants.UNKNOWN_CLUB_CARD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := doJSON(t, app, "POST", "/api/v1/quotes", tt.body)
			assert.Equal(t, 400, resp.StatusCode)
			assert.Equal(t, tt.message, decode[any](t, raw).Message)
		})
	}
}

func TestSelectionActions(t *testing.T) {
	app := newTestApp()

	apply := func(state *model.SelectionState, body map[string]any) model.SelectionResponse {
		t.Helper()
		body["basePricePerPerson"] = 500
		if state != nil {
			body["selection"] = state
		}
		resp, raw := doJSON(t, app, "POST", "/api/v1/quotes/selection", body)
		require.Equal(t, 200, resp.StatusCode, string(raw))
		return decode[model.SelectionResponse](t, raw).Data
	}

	out := apply(nil, map[string]any{"action": "select_card", "cardId": "12months"})
	assert.Equal(t, model.SelectionState{Passengers: 2, CardId: "12months", CardQuantity: 1}, out.Selection)
	assertAmount(t, 990, out.Quote.TotalToPay, "totalToPay")

	out = apply(&out.Selection, map[string]any{"action": "set_passengers", "value": 4})
	out = apply(&out.Selection, map[string]any{"action": "set_card_quantity", "value": 3})
	assert.Equal(t, 3, out.Selection.CardQuantity)

	out = apply(&out.Selection, map[string]any{"action": "set_passengers", "value": 2})
	assert.Equal(t, model.SelectionState{Passengers: 2, CardId: "12months", CardQuantity: 2}, out.Selection)

	out = apply(&out.Selection, map[string]any{"action": "select_card", "cardId": "36months"})
	assert.Equal(t, "36months", out.Selection.CardId)
	assert.Equal(t, 2, out.Selection.CardQuantity)

	out = apply(&out.Selection, map[string]any{"action": "select_card", "cardId": "36months"})
	assert.Equal(t, model.SelectionState{Passengers: 2, CardId: "none", CardQuantity: 0}, out.Selection)
	assertAmount(t, 1000, out.Quote.TotalToPay, "totalToPay")

	out = apply(&out.Selection, map[string]any{"action": "decrement_passengers"})
	out = apply(&out.Selection, map[string]any{"action": "decrement_passengers"})
	assert.Equal(t, 1, out.Selection.Passengers)
}

func TestSelectionActionRequiresValue(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, "POST", "/api/v1/quotes/selection", map[string]any{"action": "set_passengers"})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/v1/quotes/selection", map[string]any{"action": "jump"})
	assert.Equal(t, 400, resp.StatusCode)
}
