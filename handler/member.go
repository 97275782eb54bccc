package handler

import (
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"cruise_manager/middleware"
	"cruise_manager/model"
	"cruise_manager/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// memberFromContext resolves the caller named by X-Member-Id. On failure it
// returns the status and message to answer with.
func memberFromContext(c *fiber.Ctx) (*model.Member, int, string, error) {
	uid := middleware.MemberID(c)
	if uid == "" {
		return nil, fiber.StatusUnauthorized, constants.MEMBER_REQUIRED, errors.New("missing member id")
	}
	member, err := helper.GetMemberByUid(uid)
	if err != nil {
		return nil, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err
	}
	if member == nil || !member.IsActive {
		return nil, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, errors.New("member not exists")
	}
	if member.IsBanned {
		return nil, fiber.StatusForbidden, constants.MEMBER_BANNED, errors.New("member is banned")
	}
	return member, 0, "", nil
}

func CreateMember(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateMember").(model.CreateMemberInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	exists, err := helper.MemberExists(input.Username, input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if exists {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.MEMBER_EXISTS, errors.New("member exists"))
	}

	var member model.Member
	if err := copier.Copy(&member, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	member.IsActive = true
	member.CruisesDone = []string{}

	if err := database.DB.Create(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	logger.Info("member created", "uid", member.Uid, "username", member.Username)
	return utils.SuccessResponse(c, fiber.StatusCreated, member)
}

func GetMembers(c *fiber.Ctx) error {
	var members model.Members
	if err := database.DB.Where("is_active = ? AND is_banned = ?", true, false).
		Order("username ASC").Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

// GetMember accepts the member uid or the numeric id.
func GetMember(c *fiber.Ctx) error {
	db := database.DB
	if id, ok := paramId(c, "memberId"); ok {
		db = db.Where("id = ?", id)
	} else {
		db = db.Where("uid = ?", c.Params("memberId"))
	}

	var member model.Member
	if err := db.First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func GetMemberByEmail(c *fiber.Ctx) error {
	member, err := helper.GetMemberByEmail(strings.TrimSpace(c.Params("email")))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, errors.New("member not exists"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func GetAllMembers(c *fiber.Ctx) error {
	var members model.Members
	if err := database.DB.Order("created_at DESC").Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

func setBanned(c *fiber.Ctx, banned bool, reason *string) error {
	memberId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse memberId fail"))
	}

	db := database.DB
	var member model.Member
	if err := db.First(&member, memberId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	member.IsBanned = banned
	member.BannedReason = reason
	if err := db.Save(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	logger.Info("member ban updated", "uid", member.Uid, "banned", banned)
	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func BanMember(c *fiber.Ctx) error {
	input, ok := c.Locals("inputBanMember").(model.BanMemberInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	return setBanned(c, true, input.Reason)
}

func UnbanMember(c *fiber.Ctx) error {
	return setBanned(c, false, nil)
}
