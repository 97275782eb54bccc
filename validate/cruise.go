package validate

import (
	"cruise_manager/constants"
	"cruise_manager/model"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func checkPrice(field string, d *decimal.Decimal) error {
	if d != nil && d.IsNegative() {
		return errors.New(field + " must not be negative")
	}
	return nil
}

func checkCruisePricing(cruiseType string, cabin, private *decimal.Decimal) error {
	if err := checkPrice("cabinPrice", cabin); err != nil {
		return err
	}
	if err := checkPrice("privatePrice", private); err != nil {
		return err
	}
	switch {
	case cabin == nil && private == nil:
		return errors.New("cabinPrice or privatePrice is required")
	case cruiseType == constants.BookingCabin && cabin == nil:
		return errors.New("cabinPrice is required for a cabin cruise")
	case cruiseType == constants.BookingPrivate && private == nil:
		return errors.New("privatePrice is required for a private cruise")
	}
	return nil
}

func checkAvailabilities(list []model.AvailabilityInput) error {
	for _, a := range list {
		if err := checkPrice("availability price", a.Price); err != nil {
			return err
		}
	}
	return nil
}

func CreateCruise() fiber.Handler {
	return parseBody("inputCreateCruise", func(in *model.CreateCruiseInput) error {
		if err := checkCruisePricing(in.CruiseType, in.CabinPrice, in.PrivatePrice); err != nil {
			return err
		}
		return checkAvailabilities(in.Departures)
	})
}

// UpdateCruise checks the fields present in the body only. The resulting
// pricing is checked again against the stored cruise by the handler.
func UpdateCruise() fiber.Handler {
	return parseBody("inputUpdateCruise", func(in *model.UpdateCruiseInput) error {
		if err := checkPrice("cabinPrice", in.CabinPrice); err != nil {
			return err
		}
		if err := checkPrice("privatePrice", in.PrivatePrice); err != nil {
			return err
		}
		if in.Departures != nil {
			for _, a := range *in.Departures {
				if err := validate.Struct(&a); err != nil {
					return err
				}
			}
			return checkAvailabilities(*in.Departures)
		}
		return nil
	})
}

func FilterCruise() fiber.Handler {
	return parseQuery[model.FilterCruise]("inputFilterCruise")
}

// CruisePricingValid is reused by the update handler after merging.
func CruisePricingValid(cruiseType string, cabin, private *decimal.Decimal) error {
	return checkCruisePricing(cruiseType, cabin, private)
}
