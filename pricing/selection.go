package pricing

import "github.com/shopspring/decimal"

const (
	MinPassengers     = 1
	MaxPassengers     = 8
	DefaultPassengers = 2
)

// Selection is the mutable part of a booking screen. Every method returns
// an updated copy; card and quantity always change together.
type Selection struct {
	Passengers   int           `json:"passengers"`
	Card         *DiscountCard `json:"card"`
	CardQuantity int           `json:"cardQuantity"`
}

func NewSelection() Selection {
	return Selection{Passengers: DefaultPassengers}
}

// SetPassengers clamps n to [MinPassengers, MaxPassengers] and pulls the
// card quantity down if it no longer fits.
func (s Selection) SetPassengers(n int) Selection {
	s.Passengers = clampInt(n, MinPassengers, MaxPassengers)
	if s.CardQuantity > s.Passengers {
		s.CardQuantity = s.Passengers
	}
	return s
}

func (s Selection) IncrementPassengers() Selection {
	return s.SetPassengers(s.Passengers + 1)
}

func (s Selection) DecrementPassengers() Selection {
	return s.SetPassengers(s.Passengers - 1)
}

// SelectCard activates card, replacing any previous one. Selecting the
// active card again, nil, or the NoCardID entry clears the selection.
func (s Selection) SelectCard(card *DiscountCard) Selection {
	if card == nil || card.ID == NoCardID || (s.Card != nil && s.Card.ID == card.ID) {
		s.Card = nil
		s.CardQuantity = 0
		return s
	}
	c := *card
	s.Card = &c
	if s.CardQuantity == 0 {
		s.CardQuantity = 1
	}
	s.CardQuantity = clampInt(s.CardQuantity, 0, s.Passengers)
	return s
}

// SetCardQuantity keeps the quantity at 0 while no card is active.
func (s Selection) SetCardQuantity(q int) Selection {
	if s.Card == nil {
		s.CardQuantity = 0
		return s
	}
	s.CardQuantity = clampInt(q, 0, s.Passengers)
	return s
}

// Normalize re-applies the bounds to a selection built from outside input.
func (s Selection) Normalize() Selection {
	s.Passengers = clampInt(s.Passengers, MinPassengers, MaxPassengers)
	if s.Card == nil || s.Card.ID == NoCardID {
		s.Card = nil
		s.CardQuantity = 0
		return s
	}
	s.CardQuantity = clampInt(s.CardQuantity, 0, s.Passengers)
	return s
}

func (s Selection) Quote(basePricePerPerson *decimal.Decimal, privateOnly bool) QuotationResult {
	return ComputeQuote(QuotationRequest{
		BasePricePerPerson:       basePricePerPerson,
		PassengerCount:           s.Passengers,
		IsPrivateOnlyDestination: privateOnly,
		SelectedCard:             s.Card,
		CardQuantity:             s.CardQuantity,
	})
}
