package handler

import (
	"cruise_manager/constants"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"cruise_manager/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

const maxImageSize = 10 * 1024 * 1024

func UploadImage(c *fiber.Ctx) error {
	if Cloudinary == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.UPLOAD_DISABLED, errors.New("cloudinary not configured"))
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if fileHeader.Size > maxImageSize {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("image larger than 10MB"))
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("file is not an image"))
	}

	folder := slug.Make(c.FormValue("folder", "cruises"))
	if folder == "" {
		folder = "cruises"
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UPLOAD_FAILED, err)
	}
	defer file.Close()

	url, err := helper.UploadImage(c.UserContext(), Cloudinary, file, folder)
	if err != nil {
		logger.Error("image upload", "folder", folder, "error", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.UPLOAD_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"url": url})
}

func DeleteImage(c *fiber.Ctx) error {
	if Cloudinary == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.UPLOAD_DISABLED, errors.New("cloudinary not configured"))
	}
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("url is required"))
	}

	if err := helper.DeleteImage(c.UserContext(), Cloudinary, url); err != nil {
		logger.Error("image delete", "url", url, "error", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"url": url})
}
