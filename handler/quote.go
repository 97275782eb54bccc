package handler

import (
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/helper"
	"cruise_manager/metrics"
	"cruise_manager/middleware"
	"cruise_manager/model"
	"cruise_manager/pricing"
	"cruise_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClubCardView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	TermMonths      int             `json:"termMonths"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent int             `json:"discountPercent"`
	Display         string          `json:"display"`
}

func GetClubCards(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	cards := ClubCards.Cards()

	views := make([]ClubCardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, ClubCardView{
			ID:              card.ID,
			Name:            card.Name.In(lang),
			TermMonths:      card.TermMonths,
			UnitPrice:       card.UnitPrice,
			DiscountPercent: card.DiscountPercent,
			Display:         pricing.FormatAmount(card.UnitPrice, lang),
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, views)
}

func CreateQuote(c *fiber.Ctx) error {
	input, ok := c.Locals("inputQuote").(model.QuoteInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	card, err := ClubCards.Lookup(input.CardId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_CLUB_CARD, err)
	}
	sel := pricing.Selection{Passengers: input.Passengers, Card: card, CardQuantity: input.CardQuantity}.Normalize()

	var result pricing.QuotationResult
	if input.CruiseId != nil {
		cruise, availability, status, msg, err := loadCruiseForQuote(*input.CruiseId, input.AvailabilityId)
		if err != nil {
			return utils.ErrorResponse(c, status, msg, err)
		}
		result = helper.QuoteForCruise(cruise, availability, input.BookingType, sel, Destinations)
	} else {
		result = sel.Quote(input.BasePricePerPerson, Destinations.IsPrivateOnly(input.Destination))
	}

	metrics.QuotesComputed.WithLabelValues("quote").Inc()
	return utils.SuccessResponse(c, fiber.StatusOK, buildQuoteResponse(result, input.BookingType, sel, middleware.Lang(c)))
}

// ApplySelectionAction replays one booking-screen action on the submitted
// selection and returns the normalized selection with its fresh quote.
func ApplySelectionAction(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSelectionAction").(model.SelectionActionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	state := model.SelectionState{}
	if input.Selection != nil {
		state = *input.Selection
	}
	if state.Passengers == 0 {
		state.Passengers = pricing.DefaultPassengers
	}
	current, err := ClubCards.Lookup(state.CardId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_CLUB_CARD, err)
	}
	sel := pricing.Selection{Passengers: state.Passengers, Card: current, CardQuantity: state.CardQuantity}.Normalize()

	switch input.Action {
	case "set_passengers":
		sel = sel.SetPassengers(*input.Value)
	case "increment_passengers":
		sel = sel.IncrementPassengers()
	case "decrement_passengers":
		sel = sel.DecrementPassengers()
	case "select_card":
		card, err := ClubCards.Lookup(input.CardId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_CLUB_CARD, err)
		}
		sel = sel.SelectCard(card)
	case "set_card_quantity":
		sel = sel.SetCardQuantity(*input.Value)
	}

	var result pricing.QuotationResult
	if input.CruiseId != nil {
		cruise, availability, status, msg, err := loadCruiseForQuote(*input.CruiseId, input.AvailabilityId)
		if err != nil {
			return utils.ErrorResponse(c, status, msg, err)
		}
		result = helper.QuoteForCruise(cruise, availability, input.BookingType, sel, Destinations)
	} else {
		result = sel.Quote(input.BasePricePerPerson, Destinations.IsPrivateOnly(input.Destination))
	}

	metrics.QuotesComputed.WithLabelValues("selection").Inc()
	return utils.SuccessResponse(c, fiber.StatusOK, model.SelectionResponse{
		Selection: selectionState(sel),
		Quote:     buildQuoteResponse(result, input.BookingType, sel, middleware.Lang(c)),
	})
}

func selectionState(sel pricing.Selection) model.SelectionState {
	state := model.SelectionState{Passengers: sel.Passengers, CardId: pricing.NoCardID, CardQuantity: sel.CardQuantity}
	if sel.Card != nil {
		state.CardId = sel.Card.ID
	}
	return state
}

func buildQuoteResponse(result pricing.QuotationResult, bookingType string, sel pricing.Selection, lang string) model.QuoteResponse {
	resp := model.QuoteResponse{
		QuotationResult: result,
		BookingType:     bookingType,
		PassengerCount:  sel.Passengers,
		Display: model.QuoteDisplay{
			TotalBasePrice:     pricing.FormatAmount(result.TotalBasePrice, lang),
			DiscountAmount:     pricing.FormatAmount(result.DiscountAmount, lang),
			PriceAfterDiscount: pricing.FormatAmount(result.PriceAfterDiscount, lang),
			TotalCardCost:      pricing.FormatAmount(result.TotalCardCost, lang),
			TotalToPay:         pricing.FormatAmount(result.TotalToPay, lang),
			ImmediateSavings:   pricing.FormatAmount(result.ImmediateSavings, lang),
		},
		TotalToPayMinor: pricing.MinorUnits(result.TotalToPay),
		Currency:        constants.Currency,
	}
	if sel.Card != nil {
		resp.CardId = &sel.Card.ID
	}
	if result.IsPrivateOnlyDestination {
		notice := Destinations.Notice(lang)
		resp.PrivateOnlyNotice = &notice
	}
	return resp
}

// loadCruiseForQuote fetches an active cruise and, when asked, one of its
// departures. On failure it returns the status and message to answer with.
func loadCruiseForQuote(cruiseId uint, availabilityId *uint) (*model.Cruise, *model.CruiseAvailability, int, string, error) {
	db := database.DB

	var cruise model.Cruise
	if err := db.Where("id = ? AND is_active = ?", cruiseId, true).First(&cruise).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.StatusNotFound, constants.CRUISE_NOT_FOUND, err
		}
		return nil, nil, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err
	}
	cruise.PrivateOnly = Destinations.IsPrivateOnly(cruise.Destination)

	if availabilityId == nil {
		return &cruise, nil, 0, "", nil
	}

	var availability model.CruiseAvailability
	if err := db.Where("id = ? AND cruise_id = ?", *availabilityId, cruise.ID).First(&availability).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err
		}
		return nil, nil, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err
	}
	return &cruise, &availability, 0, "", nil
}
