package helper

import (
	"context"
	"cruise_manager/constants"
	"cruise_manager/model"
	"cruise_manager/pricing"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func selection(t *testing.T, passengers int, cardID string, qty int) pricing.Selection {
	t.Helper()
	card, err := pricing.DefaultCatalog().Lookup(cardID)
	require.NoError(t, err)
	return pricing.Selection{Passengers: passengers, Card: card, CardQuantity: qty}
}

func TestQuoteForCruise(t *testing.T) {
	policy := pricing.DefaultDestinationPolicy()
	mixed := &model.Cruise{Destination: "corsica", CabinPrice: price(1470), PrivatePrice: price(12900)}
	greece := &model.Cruise{Destination: "greece", PrivatePrice: price(5000)}

	tests := []struct {
		name         string
		cruise       *model.Cruise
		availability *model.CruiseAvailability
		bookingType  string
		sel          pricing.Selection
		toPay        int64
		privateOnly  bool
	}{
		{"cabin uses per person price", mixed, nil, constants.BookingCabin, selection(t, 2, "", 0), 2940, false},
		{"departure price overrides", mixed, &model.CruiseAvailability{Price: price(1290)}, constants.BookingCabin, selection(t, 2, "", 0), 2580, false},
		{"private books the whole boat", mixed, nil, constants.BookingPrivate, selection(t, 6, "36months", 2), 10600, false},
		{"private only is per person", greece, nil, constants.BookingPrivate, selection(t, 8, "24months", 1), 34150, true},
		{"quantity clamped", mixed, nil, constants.BookingCabin, selection(t, 1, "12months", 4), 1413, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := QuoteForCruise(tt.cruise, tt.availability, tt.bookingType, tt.sel, policy)
			assert.Truef(t, decimal.NewFromInt(tt.toPay).Equal(res.TotalToPay), "want %d got %s", tt.toPay, res.TotalToPay)
			assert.Equal(t, tt.privateOnly, res.IsPrivateOnlyDestination)
		})
	}

	unpriced := QuoteForCruise(&model.Cruise{Destination: "corsica"}, nil, constants.BookingCabin, pricing.NewSelection(), policy)
	assert.True(t, unpriced.TotalToPay.IsZero())
}

func TestConversationKey(t *testing.T) {
	assert.Equal(t, ConversationKey("b-1", "a-2"), ConversationKey("a-2", "b-1"))
	assert.Equal(t, "a-2-b-1", ConversationKey("b-1", "a-2"))
}

func TestBookingLockWithoutRedis(t *testing.T) {
	Redis = nil
	key := BookingLockKey(3, " Jane@Example.com ", "15-22 juin")
	assert.Equal(t, "booking-lock:3:jane@example.com:15-22 juin", key)

	ok, err := AcquireLock(context.Background(), key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	ReleaseLock(context.Background(), key)
	assert.NoError(t, Publish(context.Background(), MessageChannel("m-1"), map[string]string{"a": "b"}))
}

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "cruises/cruises_1700000000", PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1/cruises/cruises_1700000000.jpg"))
	assert.Equal(t, "", PublicIDFromURL("nope"))
}

func TestPasswordAndToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "helper-secret")

	hash, err := HashPassword("sognudimare")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("sognudimare", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))

	token, err := GenerateAccessToken(model.TokenClaim{AccountId: 7, Username: "admin", Role: "ADMIN"})
	require.NoError(t, err)
	parsed, err := ParseToken(token)
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "ADMIN", claims["role"])

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
