package validate

import (
	"cruise_manager/model"
	"cruise_manager/pricing"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func Quote() fiber.Handler {
	return parseBody("inputQuote", func(in *model.QuoteInput) error {
		if in.CruiseId == nil && in.BasePricePerPerson == nil {
			return errors.New("cruiseId or basePricePerPerson is required")
		}
		if err := checkPrice("basePricePerPerson", in.BasePricePerPerson); err != nil {
			return err
		}
		if in.Passengers == 0 {
			in.Passengers = pricing.DefaultPassengers
		}
		if in.BookingType == "" {
			in.BookingType = "cabin"
		}
		return nil
	})
}

func SelectionAction() fiber.Handler {
	return parseBody("inputSelectionAction", func(in *model.SelectionActionInput) error {
		switch in.Action {
		case "set_passengers", "set_card_quantity":
			if in.Value == nil {
				return errors.New("value is required for " + in.Action)
			}
		}
		if in.BookingType == "" {
			in.BookingType = "cabin"
		}
		return checkPrice("basePricePerPerson", in.BasePricePerPerson)
	})
}
