package validate

import (
	"cruise_manager/model"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SendMessage() fiber.Handler {
	return parseBody("inputSendMessage", func(in *model.SendMessageInput) error {
		in.Content = strings.TrimSpace(in.Content)
		if in.Content == "" {
			return errors.New("content is empty")
		}
		return nil
	})
}
