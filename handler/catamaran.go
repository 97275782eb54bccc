package handler

import (
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/model"
	"cruise_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCatamarans(c *fiber.Ctx) error {
	var catamarans model.Catamarans
	if err := database.DB.Order(`"order" ASC, id ASC`).Find(&catamarans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, catamarans)
}

func GetCatamaran(c *fiber.Ctx) error {
	db := database.DB
	if id, ok := paramId(c, "catamaranId"); ok {
		db = db.Where("id = ?", id)
	} else {
		db = db.Where("slug = ?", c.Params("catamaranId"))
	}

	var catamaran model.Catamaran
	if err := db.First(&catamaran).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, catamaran)
}
