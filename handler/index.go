package handler

import (
	"cruise_manager/config"
	"cruise_manager/pricing"
	"strconv"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
)

// Shared dependencies, set once by main before the routes are served.
var (
	Settings     = &config.Settings{CharterBasePassengers: pricing.DefaultCharterBase, PaymentPendingTTLMinutes: 30}
	ClubCards    = pricing.DefaultCatalog()
	Destinations = pricing.DefaultDestinationPolicy()
	Gateway      PaymentGateway
	Cloudinary   *cloudinary.Cloudinary
)

// paramId reads a positive numeric route param. ok is false for slugs and uids.
func paramId(c *fiber.Ctx, key string) (uint, bool) {
	v, err := strconv.ParseUint(c.Params(key), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
