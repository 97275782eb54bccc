package handler

import (
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"cruise_manager/metrics"
	"cruise_manager/middleware"
	"cruise_manager/model"
	"cruise_manager/pricing"
	"cruise_manager/utils"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetPaymentConfig(c *fiber.Ctx) error {
	if Gateway == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.PAYMENT_GATEWAY, errors.New("gateway not configured"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, Gateway.PublicConfig())
}

func paymentLockTTL() time.Duration {
	return time.Duration(Settings.PaymentPendingTTLMinutes) * time.Minute
}

// CreatePayment submits a booking. The amount is recomputed here from the
// selection; whatever total the client displayed is ignored.
func CreatePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePayment").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if Gateway == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.PAYMENT_GATEWAY, errors.New("gateway not configured"))
	}

	card, err := ClubCards.Lookup(input.CardId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_CLUB_CARD, err)
	}

	cruise, availability, status, msg, err := loadCruiseForQuote(input.CruiseId, input.AvailabilityId)
	if err != nil {
		return utils.ErrorResponse(c, status, msg, err)
	}

	selectedDate := ""
	if input.SelectedDate != nil {
		selectedDate = strings.TrimSpace(*input.SelectedDate)
	}
	if availability != nil {
		if availability.IsFull() {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.AVAILABILITY_FULL, errors.New("no place left"))
		}
		if input.BookingType == constants.BookingCabin && availability.RemainingPlaces != nil && *availability.RemainingPlaces < input.Passengers {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.NOT_ENOUGH_PLACES, errors.New("not enough places"))
		}
		if selectedDate == "" {
			selectedDate = availability.DateRange
		}
	}

	sel := pricing.Selection{Passengers: input.Passengers, Card: card, CardQuantity: input.CardQuantity}.Normalize()
	quote := helper.QuoteForCruise(cruise, availability, input.BookingType, sel, Destinations)
	metrics.QuotesComputed.WithLabelValues("payment").Inc()

	amount := pricing.MinorUnits(quote.TotalToPay)
	if amount <= 0 {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.CRUISE_NOT_PRICED, errors.New("total to pay is zero"))
	}

	ctx := c.UserContext()
	lockKey := helper.BookingLockKey(cruise.ID, input.CustomerEmail, selectedDate)
	acquired, err := helper.AcquireLock(ctx, lockKey, paymentLockTTL())
	if err != nil {
		// the idempotency key below is derived from the single-use card
		// nonce, so a replayed submission cannot be charged twice
		logger.Warn("booking lock unavailable", "key", lockKey, "error", err)
		acquired = true
	}
	if !acquired {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.PAYMENT_DUPLICATE, errors.New("duplicate submission"))
	}

	lang := middleware.Lang(c)
	payment := model.Payment{
		Amount:         amount,
		Currency:       constants.Currency,
		Status:         constants.PaymentPending,
		CruiseId:       cruise.ID,
		CruiseName:     cruise.Name(lang),
		AvailabilityId: input.AvailabilityId,
		SelectedDate:   utils.StringPtr(selectedDate),
		BookingType:    input.BookingType,
		Passengers:     sel.Passengers,
		CardQuantity:   sel.CardQuantity,
		CustomerEmail:  input.CustomerEmail,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		Note:           input.Note,
	}
	if sel.Card != nil {
		payment.CardId = &sel.Card.ID
	}

	db := database.DB
	if err := db.Create(&payment).Error; err != nil {
		helper.ReleaseLock(ctx, lockKey)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	metrics.Payments.WithLabelValues(constants.PaymentPending).Inc()

	note := "Réservation " + payment.CruiseName
	if selectedDate != "" {
		note += " - " + selectedDate
	}
	charged, err := Gateway.CreatePayment(ctx, model.SquareCreatePayment{
		SourceId:          input.SourceId,
		IdempotencyKey:    chargeIdempotencyKey(input.SourceId),
		AmountMoney:       model.SquareMoney{Amount: amount, Currency: constants.Currency},
		Note:              utils.Truncate(note, 500),
		BuyerEmailAddress: input.CustomerEmail,
		ReferenceId:       payment.PaymentCode,
	})
	if err != nil {
		helper.ReleaseLock(ctx, lockKey)
		failPayment(&payment, err)

		if errors.Is(err, ErrPaymentDeclined) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_DECLINED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.PAYMENT_GATEWAY, err)
	}

	payment.Status = constants.PaymentCompleted
	payment.SquarePaymentId = &charged.ID
	payment.ReceiptUrl = utils.StringPtr(charged.ReceiptUrl)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		if availability == nil || availability.RemainingPlaces == nil {
			return nil
		}
		return takePlaces(tx, availability.ID, payment.BookingType, payment.Passengers)
	})
	if err != nil {
		// the card is charged; keep the lock so the booking is not paid twice
		logger.Error("payment charged but not recorded", "payment", payment.PaymentCode, "square", charged.ID, "error", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	metrics.Payments.WithLabelValues(constants.PaymentCompleted).Inc()
	logger.Info("payment completed", "payment", payment.PaymentCode, "cruise", cruise.ID, "amount", amount)

	sendConfirmation(&payment, lang)
	return utils.SuccessResponse(c, fiber.StatusCreated, payment)
}

// chargeIdempotencyKey is stable for a given card nonce.
func chargeIdempotencyKey(sourceId string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(sourceId)).String()
}

// takePlaces decrements the departure in SQL so concurrent bookings cannot
// overwrite each other, then re-derives its status from the stored count.
func takePlaces(tx *gorm.DB, availabilityId uint, bookingType string, passengers int) error {
	remaining := gorm.Expr("CASE WHEN remaining_places > ? THEN remaining_places - ? ELSE 0 END", passengers, passengers)
	if bookingType == constants.BookingPrivate {
		remaining = gorm.Expr("0")
	}
	if err := tx.Model(&model.CruiseAvailability{}).
		Where("id = ?", availabilityId).
		UpdateColumn("remaining_places", remaining).Error; err != nil {
		return err
	}

	var availability model.CruiseAvailability
	if err := tx.First(&availability, availabilityId).Error; err != nil {
		return err
	}
	availability.ApplyStatus()
	return tx.Model(&model.CruiseAvailability{}).
		Where("id = ?", availabilityId).
		UpdateColumns(map[string]interface{}{"status": availability.Status, "status_label": availability.StatusLabel}).Error
}

func failPayment(payment *model.Payment, cause error) {
	message := cause.Error()
	payment.Status = constants.PaymentFailed
	payment.ErrorMessage = &message
	if err := database.DB.Save(payment).Error; err != nil {
		logger.Error("record failed payment", "payment", payment.PaymentCode, "error", err)
	}
	metrics.Payments.WithLabelValues(constants.PaymentFailed).Inc()
	logger.Warn("payment failed", "payment", payment.PaymentCode, "error", cause)
}

func boardingPassQR(payment *model.Payment) ([]byte, error) {
	date := ""
	if payment.SelectedDate != nil {
		date = *payment.SelectedDate
	}
	return utils.GenerateQRCode(utils.BoardingPassContent(payment.PaymentCode, payment.CruiseId, payment.Passengers, date), 256)
}

func sendConfirmation(payment *model.Payment, lang string) {
	if Settings.SMTPFrom == "" {
		logger.Debug("smtp not configured, skipping confirmation", "payment", payment.PaymentCode)
		return
	}
	qr, err := boardingPassQR(payment)
	if err != nil {
		logger.Warn("boarding pass qr", "payment", payment.PaymentCode, "error", err)
	}

	data := utils.BookingConfirmationData{
		Lang:         lang,
		PaymentCode:  payment.PaymentCode,
		CustomerName: payment.CustomerName,
		CruiseName:   payment.CruiseName,
		Passengers:   payment.Passengers,
		BookingType:  payment.BookingType,
		TotalAmount:  pricing.FormatAmount(pricing.FromMinorUnits(payment.Amount), lang),
	}
	if payment.SelectedDate != nil {
		data.SelectedDate = *payment.SelectedDate
	}
	if payment.ReceiptUrl != nil {
		data.ReceiptUrl = *payment.ReceiptUrl
	}
	utils.SendBookingConfirmationEmail(payment.CustomerEmail, data, qr)
}

func findPaymentByCode(c *fiber.Ctx) (*model.Payment, error) {
	var payment model.Payment
	if err := database.DB.Where("payment_code = ?", c.Params("paymentCode")).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		}
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return &payment, nil
}

func GetPayment(c *fiber.Ctx) error {
	payment, err := findPaymentByCode(c)
	if payment == nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func GetPaymentsByCustomer(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Params("email")))

	var payments model.Payments
	if err := database.DB.Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}

// GetBoardingPass renders the QR code of a paid booking as PNG.
func GetBoardingPass(c *fiber.Ctx) error {
	payment, err := findPaymentByCode(c)
	if payment == nil {
		return err
	}
	if payment.Status != constants.PaymentCompleted {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.PAYMENT_NOT_FOUND, errors.New("payment is not completed"))
	}

	png, err := boardingPassQR(payment)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Type("png")
	return c.Send(png)
}

func GetAllPayments(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Payment{})
	if status := strings.ToUpper(c.Query("status")); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var payments model.Payments
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       payments,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// RefundPayment refunds all or part of what is left on a completed payment.
func RefundPayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRefundPayment").(model.RefundPaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	paymentId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse paymentId fail"))
	}
	if Gateway == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.PAYMENT_GATEWAY, errors.New("gateway not configured"))
	}

	db := database.DB
	var payment model.Payment
	if err := db.First(&payment, paymentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if payment.Status != constants.PaymentCompleted || payment.SquarePaymentId == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.REFUND_NOT_ALLOWED, errors.New("status "+payment.Status))
	}

	remaining := payment.Amount - payment.RefundedAmount
	amount := remaining
	if input.Amount != nil {
		amount = *input.Amount
	}
	if amount > remaining {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.REFUND_TOO_LARGE, errors.New("amount above refundable balance"))
	}

	reason := "Refund " + payment.PaymentCode
	if input.Reason != nil && *input.Reason != "" {
		reason = *input.Reason
	}
	refund, err := Gateway.RefundPayment(c.UserContext(), model.SquareRefundPayment{
		IdempotencyKey: uuid.NewString(),
		PaymentId:      *payment.SquarePaymentId,
		AmountMoney:    model.SquareMoney{Amount: amount, Currency: payment.Currency},
		Reason:         reason,
	})
	if err != nil {
		logger.Warn("refund failed", "payment", payment.PaymentCode, "error", err)
		if errors.Is(err, ErrPaymentDeclined) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.REFUND_NOT_ALLOWED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.PAYMENT_GATEWAY, err)
	}

	now := time.Now()
	payment.RefundId = &refund.ID
	payment.RefundedAmount += amount
	payment.RefundedAt = &now
	if payment.RefundedAmount >= payment.Amount {
		payment.Status = constants.PaymentRefunded
	}
	if err := db.Save(&payment).Error; err != nil {
		logger.Error("refund issued but not recorded", "payment", payment.PaymentCode, "refund", refund.ID, "error", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if payment.Status == constants.PaymentRefunded {
		metrics.Payments.WithLabelValues(constants.PaymentRefunded).Inc()
	}

	logger.Info("payment refunded", "payment", payment.PaymentCode, "amount", amount)
	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}
