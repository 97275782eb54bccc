package helper

import (
	"cruise_manager/constants"
	"cruise_manager/model"
	"cruise_manager/pricing"
)

// QuoteForCruise prices a selection against a stored cruise. A private
// booking of a cruise that also sells cabins is a flat charter; otherwise the
// per-person base applies, taken from the chosen departure when it has its own price.
func QuoteForCruise(cruise *model.Cruise, availability *model.CruiseAvailability, bookingType string, sel pricing.Selection, policy pricing.DestinationPolicy) pricing.QuotationResult {
	privateOnly := policy.IsPrivateOnly(cruise.Destination)
	sel = sel.Normalize()

	if bookingType == constants.BookingPrivate && !privateOnly && cruise.CabinPrice != nil && cruise.PrivatePrice != nil {
		return pricing.ComputeCharterQuote(cruise.PrivatePrice, sel.Passengers, sel.Card, sel.CardQuantity)
	}

	base := pricing.ResolveBasePrice(cruise.Pricing())
	if bookingType != constants.BookingPrivate && availability != nil && availability.Price != nil {
		base = availability.Price
	}
	return sel.Quote(base, privateOnly)
}
