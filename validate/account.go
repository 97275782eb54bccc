package validate

import (
	"cruise_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return parseBody[model.LoginInput]("inputLogin")
}

func Contact() fiber.Handler {
	return parseBody[model.ContactInput]("inputContact")
}
