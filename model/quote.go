package model

import (
	"cruise_manager/pricing"

	"github.com/shopspring/decimal"
)

type QuoteInput struct {
	CruiseId           *uint            `json:"cruiseId" validate:"omitempty,gt=0"`
	AvailabilityId     *uint            `json:"availabilityId" validate:"omitempty,gt=0"`
	BasePricePerPerson *decimal.Decimal `json:"basePricePerPerson"`
	Destination        string           `json:"destination"`
	BookingType        string           `json:"bookingType" validate:"omitempty,oneof=cabin private"`
	Passengers         int              `json:"passengers" validate:"gte=0,lte=8"`
	CardId             string           `json:"cardId"`
	CardQuantity       int              `json:"cardQuantity" validate:"gte=0"`
}

// QuoteDisplay holds the rounded strings shown to the customer.
type QuoteDisplay struct {
	TotalBasePrice     string `json:"totalBasePrice"`
	DiscountAmount     string `json:"discountAmount"`
	PriceAfterDiscount string `json:"priceAfterDiscount"`
	TotalCardCost      string `json:"totalCardCost"`
	TotalToPay         string `json:"totalToPay"`
	ImmediateSavings   string `json:"immediateSavings"`
}

type QuoteResponse struct {
	pricing.QuotationResult
	BookingType       string       `json:"bookingType"`
	PassengerCount    int          `json:"passengerCount"`
	CardId            *string      `json:"cardId"`
	Display           QuoteDisplay `json:"display"`
	TotalToPayMinor   int64        `json:"totalToPayMinor"`
	Currency          string       `json:"currency"`
	PrivateOnlyNotice *string      `json:"privateOnlyNotice"`
}

type SelectionState struct {
	Passengers   int    `json:"passengers"`
	CardId       string `json:"cardId"`
	CardQuantity int    `json:"cardQuantity"`
}

type SelectionActionInput struct {
	Selection          *SelectionState  `json:"selection"`
	Action             string           `json:"action" validate:"required,oneof=set_passengers increment_passengers decrement_passengers select_card set_card_quantity"`
	Value              *int             `json:"value"`
	CardId             string           `json:"cardId"`
	CruiseId           *uint            `json:"cruiseId" validate:"omitempty,gt=0"`
	AvailabilityId     *uint            `json:"availabilityId" validate:"omitempty,gt=0"`
	BookingType        string           `json:"bookingType" validate:"omitempty,oneof=cabin private"`
	BasePricePerPerson *decimal.Decimal `json:"basePricePerPerson"`
	Destination        string           `json:"destination"`
}

type SelectionResponse struct {
	Selection SelectionState `json:"selection"`
	Quote     QuoteResponse  `json:"quote"`
}

type ContactInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=120"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,max=5000"`
}
