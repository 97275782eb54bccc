package validate

import (
	"cruise_manager/model"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreatePayment() fiber.Handler {
	return parseBody("inputCreatePayment", func(in *model.CreatePaymentInput) error {
		in.CustomerEmail = strings.ToLower(strings.TrimSpace(in.CustomerEmail))
		in.CustomerName = strings.TrimSpace(in.CustomerName)
		if in.CardQuantity > in.Passengers {
			return errors.New("cardQuantity must not exceed passengers")
		}
		return nil
	})
}

func RefundPayment() fiber.Handler {
	return parseBody[model.RefundPaymentInput]("inputRefundPayment")
}
