package handler

import (
	"context"
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"cruise_manager/metrics"
	"cruise_manager/model"
	"cruise_manager/utils"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// deliverMessage stores the message, updates the conversation preview and
// pushes the message to the receiver's live channel.
func deliverMessage(ctx context.Context, msg model.DirectMessage) (*model.DirectMessage, error) {
	msg.ConversationId = helper.ConversationKey(msg.SenderId, msg.ReceiverId)
	now := time.Now()
	preview := utils.Truncate(msg.Content, constants.MessagePreviewLength)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}

		var conversation model.Conversation
		err := tx.Where("id = ?", msg.ConversationId).First(&conversation).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ids, names := []string{msg.SenderId, msg.ReceiverId}, []string{msg.SenderName, msg.ReceiverName}
			if ids[0] > ids[1] {
				ids[0], ids[1] = ids[1], ids[0]
				names[0], names[1] = names[1], names[0]
			}
			conversation = model.Conversation{
				ID:               msg.ConversationId,
				ParticipantIds:   ids,
				ParticipantNames: names,
				LastMessage:      &preview,
				LastMessageAt:    &now,
				UnreadCount:      1,
			}
			return tx.Create(&conversation).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&conversation).Updates(map[string]interface{}{
			"last_message":    preview,
			"last_message_at": now,
			"unread_count":    gorm.Expr("unread_count + 1"),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.MessagesSent.Inc()
	if err := helper.Publish(ctx, helper.MessageChannel(msg.ReceiverId), msg); err != nil {
		logger.Warn("publish message", "conversation", msg.ConversationId, "error", err)
	}
	logger.Debug("message sent", "conversation", msg.ConversationId, "liveFeeds", ConnectedClients(msg.ReceiverId))
	return &msg, nil
}

func SendMessage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSendMessage").(model.SendMessageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	sender, status, msg, err := memberFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, status, msg, err)
	}
	if input.ReceiverId == sender.Uid {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("cannot message yourself"))
	}

	if input.ReceiverId != constants.CaptainID {
		receiver, err := helper.GetMemberByUid(input.ReceiverId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if receiver == nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, errors.New("receiver not exists"))
		}
		input.ReceiverName = receiver.Username
	}

	message, err := deliverMessage(c.UserContext(), model.DirectMessage{
		SenderId:     sender.Uid,
		SenderName:   sender.Username,
		ReceiverId:   input.ReceiverId,
		ReceiverName: input.ReceiverName,
		Content:      input.Content,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, message)
}

// CaptainReply lets the back office answer as the captain.
func CaptainReply(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSendMessage").(model.SendMessageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	message, err := deliverMessage(c.UserContext(), model.DirectMessage{
		SenderId:      constants.CaptainID,
		SenderName:    constants.CaptainName,
		ReceiverId:    input.ReceiverId,
		ReceiverName:  input.ReceiverName,
		Content:       input.Content,
		IsFromCaptain: true,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, message)
}

func conversationsOf(userId string) ([]model.Conversation, error) {
	filter, err := json.Marshal([]string{userId})
	if err != nil {
		return nil, err
	}
	var conversations []model.Conversation
	err = database.DB.Where("participant_ids @> ?", string(filter)).
		Order("last_message_at DESC NULLS LAST").
		Find(&conversations).Error
	return conversations, err
}

func GetConversations(c *fiber.Ctx) error {
	conversations, err := conversationsOf(c.Params("userId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, conversations)
}

// GetMessages returns the conversation oldest first and marks what the
// other side sent to userId as read.
func GetMessages(c *fiber.Ctx) error {
	userId, otherId := c.Params("userId"), c.Params("otherId")
	conversationId := helper.ConversationKey(userId, otherId)

	db := database.DB
	var messages model.DirectMessages
	if err := db.Where("conversation_id = ?", conversationId).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	res := db.Model(&model.DirectMessage{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationId, userId, false).
		Update("is_read", true)
	if res.Error != nil {
		logger.Warn("mark messages read", "conversation", conversationId, "error", res.Error)
	} else if res.RowsAffected > 0 {
		db.Model(&model.Conversation{}).Where("id = ?", conversationId).Update("unread_count", 0)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, messages)
}

func GetCaptain(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, model.CaptainInfo{
		ID:        constants.CaptainID,
		Name:      constants.CaptainName,
		Avatar:    constants.CaptainAvatar,
		IsCaptain: true,
	})
}

func GetAllMessages(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.DirectMessage{})
	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var messages model.DirectMessages
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       messages,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func DeleteMessage(c *fiber.Ctx) error {
	messageId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse messageId fail"))
	}

	res := database.DB.Delete(&model.DirectMessage{}, messageId)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MESSAGE_NOT_FOUND, errors.New("message not exists"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": messageId})
}
