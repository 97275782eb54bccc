package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is one booking submission. Amounts are in minor units (cents).
type Payment struct {
	DTO
	PaymentCode     string     `gorm:"uniqueIndex;not null" json:"paymentCode"`
	SquarePaymentId *string    `gorm:"index" json:"squarePaymentId"`
	Amount          int64      `gorm:"not null" json:"amount"`
	Currency        string     `gorm:"not null;default:EUR" json:"currency"`
	Status          string     `gorm:"not null;default:PENDING;index" json:"status"`
	CruiseId        uint       `gorm:"not null;index" json:"cruiseId"`
	CruiseName      string     `gorm:"not null" json:"cruiseName"`
	AvailabilityId  *uint      `json:"availabilityId"`
	SelectedDate    *string    `json:"selectedDate"`
	BookingType     string     `gorm:"not null" json:"bookingType"`
	Passengers      int        `gorm:"not null" json:"passengers"`
	CardId          *string    `json:"cardId"`
	CardQuantity    int        `gorm:"not null;default:0" json:"cardQuantity"`
	CustomerEmail   string     `gorm:"not null;index" json:"customerEmail"`
	CustomerName    string     `gorm:"not null" json:"customerName"`
	CustomerPhone   *string    `json:"customerPhone"`
	Note            *string    `json:"note"`
	ReceiptUrl      *string    `json:"receiptUrl"`
	ErrorMessage    *string    `json:"errorMessage"`
	RefundId        *string    `json:"refundId"`
	RefundedAmount  int64      `gorm:"not null;default:0" json:"refundedAmount"`
	RefundedAt      *time.Time `json:"refundedAt"`
}

type Payments []Payment

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentCode == "" {
		p.PaymentCode = uuid.NewString()
	}
	return nil
}

type CreatePaymentInput struct {
	SourceId       string  `json:"sourceId" validate:"required"`
	CruiseId       uint    `json:"cruiseId" validate:"required,gt=0"`
	AvailabilityId *uint   `json:"availabilityId" validate:"omitempty,gt=0"`
	SelectedDate   *string `json:"selectedDate" validate:"omitempty,max=100"`
	BookingType    string  `json:"bookingType" validate:"required,oneof=cabin private"`
	Passengers     int     `json:"passengers" validate:"required,gte=1,lte=8"`
	CardId         string  `json:"cardId"`
	CardQuantity   int     `json:"cardQuantity" validate:"gte=0,lte=8"`
	CustomerEmail  string  `json:"customerEmail" validate:"required,email"`
	CustomerName   string  `json:"customerName" validate:"required,min=2,max=120"`
	CustomerPhone  *string `json:"customerPhone" validate:"omitempty,min=6,max=30"`
	Note           *string `json:"note" validate:"omitempty,max=1000"`
}

type RefundPaymentInput struct {
	Amount *int64  `json:"amount" validate:"omitempty,gt=0"`
	Reason *string `json:"reason" validate:"omitempty,max=200"`
}

type PaymentConfig struct {
	ApplicationId string `json:"application_id"`
	LocationId    string `json:"location_id"`
	Environment   string `json:"environment"`
}
