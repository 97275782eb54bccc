package handler

import (
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"cruise_manager/model"
	"cruise_manager/utils"
	"cruise_manager/validate"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func preloadAvailabilities(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func listCruises(c *fiber.Ctx, activeOnly bool) error {
	filterInput, ok := c.Locals("inputFilterCruise").(model.FilterCruise)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	query := db.Model(&model.Cruise{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if d := strings.TrimSpace(filterInput.Destination); d != "" {
		query = query.Where("LOWER(destination) = LOWER(?)", d)
	}
	if filterInput.CruiseType != "" {
		query = query.Where("cruise_type = ?", filterInput.CruiseType)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var cruises model.Cruises
	query = utils.ApplyPagination(query, filterInput.Limit, filterInput.Page)
	if err := query.Preload("Availabilities", preloadAvailabilities).
		Order("display_order ASC, id ASC").
		Find(&cruises).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	for i := range cruises {
		cruises[i].PrivateOnly = Destinations.IsPrivateOnly(cruises[i].Destination)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       cruises,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetCruises(c *fiber.Ctx) error {
	return listCruises(c, true)
}

func GetAllCruises(c *fiber.Ctx) error {
	return listCruises(c, false)
}

// GetCruise accepts a numeric id or a slug.
func GetCruise(c *fiber.Ctx) error {
	db := database.DB.Where("is_active = ?", true)
	if id, ok := paramId(c, "cruiseId"); ok {
		db = db.Where("id = ?", id)
	} else {
		db = db.Where("slug = ?", c.Params("cruiseId"))
	}

	var cruise model.Cruise
	if err := db.Preload("Availabilities", preloadAvailabilities).First(&cruise).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CRUISE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	cruise.PrivateOnly = Destinations.IsPrivateOnly(cruise.Destination)

	return utils.SuccessResponse(c, fiber.StatusOK, cruise)
}

func toAvailabilities(list []model.AvailabilityInput) []model.CruiseAvailability {
	out := make([]model.CruiseAvailability, 0, len(list))
	for _, a := range list {
		out = append(out, model.CruiseAvailability{
			DateRange:       strings.TrimSpace(a.DateRange),
			Price:           a.Price,
			RemainingPlaces: a.RemainingPlaces,
		})
	}
	return out
}

func CreateCruise(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCruise").(model.CreateCruiseInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var cruise model.Cruise
	if err := copier.Copy(&cruise, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	cruise.Destination = strings.ToLower(strings.TrimSpace(input.Destination))
	cruise.Currency = constants.Currency
	cruise.DisplayOrder = input.Order
	cruise.IsActive = input.IsActive == nil || *input.IsActive
	cruise.Availabilities = toAvailabilities(input.Departures)

	if input.Slug != "" {
		cruise.Slug = slug.Make(input.Slug)
		var count int64
		db.Model(&model.Cruise{}).Where("slug = ?", cruise.Slug).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SLUG_EXISTS, errors.New("slug exists"))
		}
	} else {
		cruise.Slug = helper.GenerateUniqueCruiseSlug(db, input.NameFr)
	}

	if err := db.Create(&cruise).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	cruise.PrivateOnly = Destinations.IsPrivateOnly(cruise.Destination)

	logger.Info("cruise created", "id", cruise.ID, "slug", cruise.Slug)
	return utils.SuccessResponse(c, fiber.StatusCreated, cruise)
}

// UpdateCruise applies the fields present in the body. A new availabilities
// list replaces the stored one.
func UpdateCruise(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateCruise").(model.UpdateCruiseInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	cruiseId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse cruiseId fail"))
	}

	db := database.DB

	var cruise model.Cruise
	if err := db.First(&cruise, cruiseId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CRUISE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.CopyWithOption(&cruise, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if input.Destination != nil {
		cruise.Destination = strings.ToLower(strings.TrimSpace(*input.Destination))
	}
	if input.Order != nil {
		cruise.DisplayOrder = *input.Order
	}
	if input.IsActive != nil {
		cruise.IsActive = *input.IsActive
	}
	if err := validate.CruisePricingValid(cruise.CruiseType, cruise.CabinPrice, cruise.PrivatePrice); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Availabilities").Save(&cruise).Error; err != nil {
			return err
		}
		if input.Departures == nil {
			return nil
		}
		if err := tx.Where("cruise_id = ?", cruise.ID).Delete(&model.CruiseAvailability{}).Error; err != nil {
			return err
		}
		availabilities := toAvailabilities(*input.Departures)
		for i := range availabilities {
			availabilities[i].CruiseId = cruise.ID
		}
		if len(availabilities) == 0 {
			return nil
		}
		return tx.Create(&availabilities).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.Preload("Availabilities", preloadAvailabilities).First(&cruise, cruise.ID)
	cruise.PrivateOnly = Destinations.IsPrivateOnly(cruise.Destination)

	return utils.SuccessResponse(c, fiber.StatusOK, cruise)
}

func DeleteCruise(c *fiber.Ctx) error {
	cruiseId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse cruiseId fail"))
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cruise_id = ?", cruiseId).Delete(&model.CruiseAvailability{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Cruise{}, cruiseId)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CRUISE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	logger.Info("cruise deleted", "id", cruiseId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": cruiseId})
}
