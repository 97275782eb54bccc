package handler

import (
	"cruise_manager/constants"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"cruise_manager/model"
	"cruise_manager/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	loginInput, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	account, err := helper.GetAccountByUsername(loginInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("username not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   c.Protocol() == "https",
		Path:     "/",
		Expires:  time.Now().Add(helper.AccessTokenTTL),
	})

	logger.Info("admin login", "username", account.Username)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken": token,
		"account": fiber.Map{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Unix(0, 0),
	})
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}

func Me(c *fiber.Ctx) error {
	claim, ok := helper.GetClaimFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no claims"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, claim)
}
