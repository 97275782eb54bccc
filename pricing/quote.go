package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CruisePricing holds the two price fields of a cruise record.
// At least one of them is set for a bookable cruise.
type CruisePricing struct {
	CabinPricePerPerson *decimal.Decimal `json:"cabinPricePerPerson"`
	PrivatePriceTotal   *decimal.Decimal `json:"privatePriceTotal"`
}

type QuotationRequest struct {
	BasePricePerPerson       *decimal.Decimal
	PassengerCount           int
	IsPrivateOnlyDestination bool
	SelectedCard             *DiscountCard
	CardQuantity             int
}

// QuotationResult is the itemized breakdown shown before submission.
// Every field is derived from the request; nothing here is stored.
type QuotationResult struct {
	TotalBasePrice           decimal.Decimal `json:"totalBasePrice"`
	DiscountPercent          int             `json:"discountPercent"`
	DiscountAmount           decimal.Decimal `json:"discountAmount"`
	PriceAfterDiscount       decimal.Decimal `json:"priceAfterDiscount"`
	CardUnitPrice            decimal.Decimal `json:"cardUnitPrice"`
	CardQuantity             int             `json:"cardQuantity"`
	TotalCardCost            decimal.Decimal `json:"totalCardCost"`
	TotalToPay               decimal.Decimal `json:"totalToPay"`
	ImmediateSavings         decimal.Decimal `json:"immediateSavings"`
	ExtraCost                decimal.Decimal `json:"extraCost"`
	IsPrivateOnlyDestination bool            `json:"isPrivateOnlyDestination"`
}

// ComputeQuote prices a booking selection: base price times passengers,
// minus the card discount, plus the cost of the cards bought.
// A request without a base price yields an all-zero result.
func ComputeQuote(req QuotationRequest) QuotationResult {
	if req.BasePricePerPerson == nil {
		return QuotationResult{IsPrivateOnlyDestination: req.IsPrivateOnlyDestination}
	}
	passengers := atLeastZero(req.PassengerCount)
	base := nonNegativeMoney(*req.BasePricePerPerson)
	totalBase := base.Mul(decimal.NewFromInt(int64(passengers)))

	res := settle(totalBase, passengers, req.SelectedCard, req.CardQuantity)
	res.IsPrivateOnlyDestination = req.IsPrivateOnlyDestination
	return res
}

// ComputeCharterQuote prices a full-boat charter of a mixed cruise: the base
// total is the flat charter price, the card rules are the same as ComputeQuote.
func ComputeCharterQuote(privatePriceTotal *decimal.Decimal, passengerCount int, card *DiscountCard, cardQuantity int) QuotationResult {
	if privatePriceTotal == nil {
		return QuotationResult{}
	}
	return settle(nonNegativeMoney(*privatePriceTotal), atLeastZero(passengerCount), card, cardQuantity)
}

// ResolveBasePrice returns the per-person figure used for cabin quotes,
// falling back to the charter price for cruises sold only privately.
func ResolveBasePrice(p CruisePricing) *decimal.Decimal {
	if p.CabinPricePerPerson != nil {
		return p.CabinPricePerPerson
	}
	return p.PrivatePriceTotal
}

func settle(totalBase decimal.Decimal, passengers int, card *DiscountCard, cardQuantity int) QuotationResult {
	res := QuotationResult{
		TotalBasePrice:     totalBase,
		PriceAfterDiscount: totalBase,
		TotalToPay:         totalBase,
	}
	if card == nil {
		return res
	}

	percent := clampInt(card.DiscountPercent, 0, 100)
	qty := clampInt(cardQuantity, 0, passengers)
	unit := nonNegativeMoney(card.UnitPrice)

	res.DiscountPercent = percent
	res.DiscountAmount = totalBase.Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
	res.PriceAfterDiscount = totalBase.Sub(res.DiscountAmount)
	res.CardUnitPrice = unit
	res.CardQuantity = qty
	res.TotalCardCost = unit.Mul(decimal.NewFromInt(int64(qty)))
	res.TotalToPay = res.PriceAfterDiscount.Add(res.TotalCardCost)

	diff := totalBase.Sub(res.TotalToPay)
	if diff.IsNegative() {
		res.ExtraCost = diff.Neg()
	} else {
		res.ImmediateSavings = diff
	}
	return res
}

func nonNegativeMoney(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func atLeastZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
