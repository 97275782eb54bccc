package handler

import (
	"cruise_manager/constants"
	"cruise_manager/logger"
	"cruise_manager/model"
	"cruise_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func SendContact(c *fiber.Ctx) error {
	input, ok := c.Locals("inputContact").(model.ContactInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if Settings.ContactEmail == "" {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.SEND_EMAIL_FAILED, errors.New("contact inbox not configured"))
	}

	msg := utils.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if input.Phone != nil {
		msg.Phone = *input.Phone
	}
	if input.Subject != nil {
		msg.Subject = *input.Subject
	}

	if err := utils.SendContactEmail(Settings.ContactEmail, msg); err != nil {
		logger.Error("contact email", "from", input.Email, "error", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.SEND_EMAIL_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"sent": true})
}
