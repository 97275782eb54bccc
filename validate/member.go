package validate

import (
	"cruise_manager/model"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateMember() fiber.Handler {
	return parseBody("inputCreateMember", func(in *model.CreateMemberInput) error {
		in.Username = strings.TrimSpace(in.Username)
		in.Email = strings.ToLower(strings.TrimSpace(in.Email))
		return nil
	})
}

func BanMember() fiber.Handler {
	return parseBody[model.BanMemberInput]("inputBanMember")
}
