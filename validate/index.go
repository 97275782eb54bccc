package validate

import (
	"cruise_manager/constants"
	"cruise_manager/utils"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.ParseUint(c.Params(key), 10, 32)
		if err != nil || valueKey == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// parseBody decodes the JSON body into T, runs struct validation and the
// optional extra checks, then stores the value under localsKey.
func parseBody[T any](localsKey string, checks ...func(*T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		for _, check := range checks {
			if err := check(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
			}
		}

		c.Locals(localsKey, input)
		return c.Next()
	}
}

func parseQuery[T any](localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals(localsKey, input)
		return c.Next()
	}
}
