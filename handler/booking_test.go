package handler

import (
	"cruise_manager/constants"
	"cruise_manager/helper"
	"cruise_manager/model"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const julyDeparture = "5 - 11 juillet"

func seedBookableCruise(t *testing.T, db *gorm.DB) model.Cruise {
	t.Helper()
	cabin := decimal.NewFromInt(2560)
	private := decimal.NewFromInt(12900)
	july := decimal.NewFromInt(3450)
	places := 6

	cruise := model.Cruise{
		Slug:         "tour-de-corse",
		NameFr:       "Tour de Corse",
		NameEn:       "Corsica tour",
		Destination:  "corsica",
		CruiseType:   "both",
		CabinPrice:   &cabin,
		PrivatePrice: &private,
		Currency:     constants.Currency,
		IsActive:     true,
		Availabilities: []model.CruiseAvailability{
			{DateRange: julyDeparture, Price: &july, RemainingPlaces: &places},
		},
	}
	require.NoError(t, db.Create(&cruise).Error)
	require.Len(t, cruise.Availabilities, 1)
	return cruise
}

func bookingBody(cruise model.Cruise, bookingType string) map[string]any {
	body := validPaymentBody()
	body["cruiseId"] = cruise.ID
	body["availabilityId"] = cruise.Availabilities[0].ID
	body["bookingType"] = bookingType
	return body
}

func reloadAvailability(t *testing.T, db *gorm.DB, id uint) model.CruiseAvailability {
	t.Helper()
	var a model.CruiseAvailability
	require.NoError(t, db.First(&a, id).Error)
	return a
}

func completedGateway() *fakeGateway {
	return &fakeGateway{payment: &model.SquarePayment{ID: "sq-1", Status: "COMPLETED", ReceiptUrl: "https://squareup.com/receipt/sq-1"}}
}

func TestSelectionQuoteMatchesCharge(t *testing.T) {
	db := withDB(t)
	cruise := seedBookableCruise(t, db)
	gw := completedGateway()
	withGateway(t, gw)
	app := newTestApp()

	tests := []struct {
		bookingType string
		minor       int64
	}{
		{constants.BookingCabin, 630000},
		{constants.BookingPrivate, 1170000},
	}
	for _, tt := range tests {
		resp, raw := doJSON(t, app, "POST", "/api/v1/quotes/selection", map[string]any{
			"action":         "select_card",
			"cardId":         "12months",
			"cruiseId":       cruise.ID,
			"availabilityId": cruise.Availabilities[0].ID,
			"bookingType":    tt.bookingType,
		})
		require.Equal(t, 200, resp.StatusCode, string(raw))
		out := decode[model.SelectionResponse](t, raw).Data
		assert.Equal(t, tt.bookingType, out.Quote.BookingType)
		assert.Equal(t, tt.minor, out.Quote.TotalToPayMinor, tt.bookingType)
	}

	resp, raw := doJSON(t, app, "POST", "/api/v1/quotes/selection", map[string]any{
		"action":         "select_card",
		"cardId":         "12months",
		"cruiseId":       cruise.ID,
		"availabilityId": cruise.Availabilities[0].ID,
	})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	shown := decode[model.SelectionResponse](t, raw).Data.Quote
	assert.Equal(t, constants.BookingCabin, shown.BookingType)

	resp, raw = doJSON(t, app, "POST", "/api/v1/payments", bookingBody(cruise, constants.BookingCabin))
	require.Equal(t, 201, resp.StatusCode, string(raw))
	require.Len(t, gw.charges, 1)
	assert.Equal(t, shown.TotalToPayMinor, gw.charges[0].AmountMoney.Amount)
}

func TestSelectionWithoutPassengersDefaultsToTwo(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, "POST", "/api/v1/quotes/selection", map[string]any{
		"action":             "select_card",
		"cardId":             "12months",
		"basePricePerPerson": 500,
		"selection":          map[string]any{"cardId": "none"},
	})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	out := decode[model.SelectionResponse](t, raw).Data
	assert.Equal(t, 2, out.Selection.Passengers)
	assertAmount(t, 990, out.Quote.TotalToPay, "totalToPay")

	resp, raw = doJSON(t, app, "POST", "/api/v1/quotes/selection", map[string]any{
		"action":             "increment_passengers",
		"basePricePerPerson": 500,
		"selection":          map[string]any{},
	})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	assert.Equal(t, 3, decode[model.SelectionResponse](t, raw).Data.Selection.Passengers)
}

func TestCreatePaymentChargesServerQuote(t *testing.T) {
	db := withDB(t)
	mr := withRedis(t)
	cruise := seedBookableCruise(t, db)
	gw := completedGateway()
	withGateway(t, gw)
	app := newTestApp()

	body := bookingBody(cruise, constants.BookingCabin)
	body["totalToPay"] = 1
	body["amount"] = 100

	resp, raw := doJSON(t, app, "POST", "/api/v1/payments", body)
	require.Equal(t, 201, resp.StatusCode, string(raw))
	payment := decode[model.Payment](t, raw).Data

	assert.Equal(t, constants.PaymentCompleted, payment.Status)
	assert.Equal(t, int64(630000), payment.Amount)
	assert.Equal(t, "jane@example.com", payment.CustomerEmail)
	require.NotNil(t, payment.SquarePaymentId)
	assert.Equal(t, "sq-1", *payment.SquarePaymentId)
	require.NotNil(t, payment.SelectedDate)
	assert.Equal(t, julyDeparture, *payment.SelectedDate)

	require.Len(t, gw.charges, 1)
	charge := gw.charges[0]
	assert.Equal(t, int64(630000), charge.AmountMoney.Amount)
	assert.Equal(t, constants.Currency, charge.AmountMoney.Currency)
	assert.Equal(t, chargeIdempotencyKey("cnon:card-nonce-ok"), charge.IdempotencyKey)
	assert.Equal(t, payment.PaymentCode, charge.ReferenceId)

	departure := reloadAvailability(t, db, cruise.Availabilities[0].ID)
	require.NotNil(t, departure.RemainingPlaces)
	assert.Equal(t, 4, *departure.RemainingPlaces)
	assert.Equal(t, constants.AvailabilityLimited, departure.Status)
	assert.Equal(t, "Reste 4 places", departure.StatusLabel)

	assert.True(t, mr.Exists(helper.BookingLockKey(cruise.ID, "jane@example.com", julyDeparture)))

	resp, raw = doJSON(t, app, "POST", "/api/v1/payments", body)
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, constants.PAYMENT_DUPLICATE, decode[any](t, raw).Message)
	assert.Equal(t, 1, gw.calls)
}

func TestCreatePaymentPrivateCharterTakesTheBoat(t *testing.T) {
	db := withDB(t)
	cruise := seedBookableCruise(t, db)
	gw := completedGateway()
	withGateway(t, gw)
	app := newTestApp()

	resp, raw := doJSON(t, app, "POST", "/api/v1/payments", bookingBody(cruise, constants.BookingPrivate))
	require.Equal(t, 201, resp.StatusCode, string(raw))
	assert.Equal(t, int64(1170000), gw.charges[0].AmountMoney.Amount)

	departure := reloadAvailability(t, db, cruise.Availabilities[0].ID)
	assert.Equal(t, 0, *departure.RemainingPlaces)
	assert.Equal(t, constants.AvailabilityFull, departure.Status)
	assert.Equal(t, "COMPLET", departure.StatusLabel)

	body := bookingBody(cruise, constants.BookingCabin)
	body["customerEmail"] = "other@example.com"
	resp, raw = doJSON(t, app, "POST", "/api/v1/payments", body)
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, constants.AVAILABILITY_FULL, decode[any](t, raw).Message)
	assert.Equal(t, 1, gw.calls)
}

func TestCreatePaymentGatewayFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"declined", errors.Wrap(ErrPaymentDeclined, "CARD_DECLINED"), 400, constants.PAYMENT_DECLINED},
		{"unavailable", errors.Wrap(ErrGatewayUnavailable, "status 503"), 502, constants.PAYMENT_GATEWAY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := withDB(t)
			mr := withRedis(t)
			cruise := seedBookableCruise(t, db)
			withGateway(t, &fakeGateway{err: tt.err})
			app := newTestApp()

			resp, raw := doJSON(t, app, "POST", "/api/v1/payments", bookingBody(cruise, constants.BookingCabin))
			assert.Equal(t, tt.status, resp.StatusCode, string(raw))
			assert.Equal(t, tt.message, decode[any](t, raw).Message)

			var payment model.Payment
			require.NoError(t, db.Where("cruise_id = ?", cruise.ID).First(&payment).Error)
			assert.Equal(t, constants.PaymentFailed, payment.Status)
			require.NotNil(t, payment.ErrorMessage)
			assert.Contains(t, *payment.ErrorMessage, tt.err.Error())

			assert.False(t, mr.Exists(helper.BookingLockKey(cruise.ID, "jane@example.com", julyDeparture)))
			assert.Equal(t, 6, *reloadAvailability(t, db, cruise.Availabilities[0].ID).RemainingPlaces)
		})
	}
}

func TestTakePlacesNeverGoesNegative(t *testing.T) {
	db := withDB(t)
	cruise := seedBookableCruise(t, db)
	id := cruise.Availabilities[0].ID

	require.NoError(t, takePlaces(db, id, constants.BookingCabin, 5))
	assert.Equal(t, 1, *reloadAvailability(t, db, id).RemainingPlaces)
	assert.Equal(t, "Reste 1 place", reloadAvailability(t, db, id).StatusLabel)

	require.NoError(t, takePlaces(db, id, constants.BookingCabin, 3))
	departure := reloadAvailability(t, db, id)
	assert.Equal(t, 0, *departure.RemainingPlaces)
	assert.Equal(t, constants.AvailabilityFull, departure.Status)
}

func TestRefundPaymentAccumulates(t *testing.T) {
	db := withDB(t)
	gw := &fakeGateway{refund: &model.SquareRefund{ID: "rf-1", Status: "PENDING"}}
	withGateway(t, gw)
	app := newTestApp()

	squareId := "sq-1"
	payment := model.Payment{
		Amount:          630000,
		Currency:        constants.Currency,
		Status:          constants.PaymentCompleted,
		SquarePaymentId: &squareId,
		CruiseId:        1,
		CruiseName:      "Tour de Corse",
		BookingType:     constants.BookingCabin,
		Passengers:      2,
		CustomerEmail:   "jane@example.com",
		CustomerName:    "Jane Doe",
	}
	require.NoError(t, db.Create(&payment).Error)
	path := fmt.Sprintf("/api/v1/admin/payments/%d/refund", payment.ID)

	resp, raw := doJSON(t, app, "POST", path, map[string]any{"amount": 200000})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	got := decode[model.Payment](t, raw).Data
	assert.Equal(t, int64(200000), got.RefundedAmount)
	assert.Equal(t, constants.PaymentCompleted, got.Status)

	resp, raw = doJSON(t, app, "POST", path, map[string]any{"amount": 500000})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, constants.REFUND_TOO_LARGE, decode[any](t, raw).Message)
	assert.Len(t, gw.refunds, 1)

	resp, raw = doJSON(t, app, "POST", path, map[string]any{})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	got = decode[model.Payment](t, raw).Data
	assert.Equal(t, int64(630000), got.RefundedAmount)
	assert.Equal(t, constants.PaymentRefunded, got.Status)
	require.Len(t, gw.refunds, 2)
	assert.Equal(t, int64(430000), gw.refunds[1].AmountMoney.Amount)
	assert.Equal(t, "sq-1", gw.refunds[1].PaymentId)

	resp, raw = doJSON(t, app, "POST", path, map[string]any{})
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, constants.REFUND_NOT_ALLOWED, decode[any](t, raw).Message)
	assert.Len(t, gw.refunds, 2)
}
