package model

import (
	"cruise_manager/constants"
	"cruise_manager/pricing"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProgramDay struct {
	Day         int    `json:"day" validate:"gte=1"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type Cruise struct {
	DTO
	Slug          string `gorm:"uniqueIndex;not null" json:"slug"`
	NameFr        string `gorm:"not null" json:"nameFr"`
	NameEn        string `gorm:"not null" json:"nameEn"`
	SubtitleFr    string `json:"subtitleFr"`
	SubtitleEn    string `json:"subtitleEn"`
	DescriptionFr string `gorm:"type:text" json:"descriptionFr"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	ImageUrl      string `json:"imageUrl"`
	Destination   string `gorm:"not null;index" json:"destination"`
	CruiseType    string `gorm:"not null;default:cabin" json:"cruiseType"` // cabin private both
	Duration      string `json:"duration"`
	DeparturePort string `json:"departurePort"`

	CabinPrice   *decimal.Decimal `gorm:"type:numeric(12,2)" json:"cabinPrice"`
	PrivatePrice *decimal.Decimal `gorm:"type:numeric(12,2)" json:"privatePrice"`
	Currency     string           `gorm:"not null;default:EUR" json:"currency"`

	HighlightsFr []string     `gorm:"type:jsonb;serializer:json" json:"highlightsFr"`
	HighlightsEn []string     `gorm:"type:jsonb;serializer:json" json:"highlightsEn"`
	ProgramFr    []ProgramDay `gorm:"type:jsonb;serializer:json" json:"programFr"`
	ProgramEn    []ProgramDay `gorm:"type:jsonb;serializer:json" json:"programEn"`

	Availabilities    []CruiseAvailability `gorm:"foreignKey:CruiseId;constraint:OnDelete:CASCADE" json:"availabilities"`
	BoardingPassImage *string              `json:"boardingPassImage"`
	IsActive          bool                 `gorm:"not null;default:true;index" json:"isActive"`
	DisplayOrder      int                  `gorm:"not null;default:0" json:"order"`

	// filled from the destination policy on read
	PrivateOnly bool `gorm:"-" json:"privateOnly"`
}

type Cruises []Cruise

func (c Cruise) Pricing() pricing.CruisePricing {
	return pricing.CruisePricing{CabinPricePerPerson: c.CabinPrice, PrivatePriceTotal: c.PrivatePrice}
}

func (c Cruise) Name(lang string) string {
	if lang == constants.LangEN && c.NameEn != "" {
		return c.NameEn
	}
	return c.NameFr
}

type CruiseAvailability struct {
	DTO
	CruiseId        uint             `gorm:"not null;index" json:"cruiseId"`
	DateRange       string           `gorm:"not null" json:"dateRange"`
	Price           *decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	RemainingPlaces *int             `json:"remainingPlaces"`
	Status          string           `gorm:"not null;default:available" json:"status"`
	StatusLabel     string           `json:"statusLabel"`
}

// ApplyStatus derives the status and its label from the remaining places.
func (a *CruiseAvailability) ApplyStatus() {
	switch {
	case a.RemainingPlaces == nil:
		a.Status = constants.AvailabilityAvailable
		a.StatusLabel = ""
	case *a.RemainingPlaces <= 0:
		zero := 0
		a.RemainingPlaces = &zero
		a.Status = constants.AvailabilityFull
		a.StatusLabel = "COMPLET"
	case *a.RemainingPlaces == 1:
		a.Status = constants.AvailabilityLimited
		a.StatusLabel = "Reste 1 place"
	default:
		a.Status = constants.AvailabilityAvailable
		if *a.RemainingPlaces <= constants.LimitedPlacesThreshold {
			a.Status = constants.AvailabilityLimited
		}
		a.StatusLabel = fmt.Sprintf("Reste %d places", *a.RemainingPlaces)
	}
}

func (a *CruiseAvailability) IsFull() bool {
	return a.Status == constants.AvailabilityFull
}

func (a *CruiseAvailability) BeforeSave(tx *gorm.DB) error {
	a.ApplyStatus()
	return nil
}

type AvailabilityInput struct {
	DateRange       string           `json:"dateRange" validate:"required"`
	Price           *decimal.Decimal `json:"price"`
	RemainingPlaces *int             `json:"remainingPlaces" validate:"omitempty,gte=0"`
}

type CreateCruiseInput struct {
	Slug              string              `json:"slug" validate:"omitempty,max=120"`
	NameFr            string              `json:"nameFr" validate:"required,max=200"`
	NameEn            string              `json:"nameEn" validate:"required,max=200"`
	SubtitleFr        string              `json:"subtitleFr"`
	SubtitleEn        string              `json:"subtitleEn"`
	DescriptionFr     string              `json:"descriptionFr"`
	DescriptionEn     string              `json:"descriptionEn"`
	ImageUrl          string              `json:"imageUrl" validate:"omitempty,url"`
	Destination       string              `json:"destination" validate:"required"`
	CruiseType        string              `json:"cruiseType" validate:"required,oneof=cabin private both"`
	Duration          string              `json:"duration"`
	DeparturePort     string              `json:"departurePort"`
	CabinPrice        *decimal.Decimal    `json:"cabinPrice"`
	PrivatePrice      *decimal.Decimal    `json:"privatePrice"`
	HighlightsFr      []string            `json:"highlightsFr"`
	HighlightsEn      []string            `json:"highlightsEn"`
	ProgramFr         []ProgramDay        `json:"programFr" validate:"dive"`
	ProgramEn         []ProgramDay        `json:"programEn" validate:"dive"`
	Departures        []AvailabilityInput `json:"availabilities" validate:"dive"`
	BoardingPassImage *string             `json:"boardingPassImage" validate:"omitempty,url"`
	IsActive          *bool               `json:"isActive"`
	Order             int                 `json:"order"`
}

type UpdateCruiseInput struct {
	NameFr            *string              `json:"nameFr" validate:"omitempty,max=200"`
	NameEn            *string              `json:"nameEn" validate:"omitempty,max=200"`
	SubtitleFr        *string              `json:"subtitleFr"`
	SubtitleEn        *string              `json:"subtitleEn"`
	DescriptionFr     *string              `json:"descriptionFr"`
	DescriptionEn     *string              `json:"descriptionEn"`
	ImageUrl          *string              `json:"imageUrl" validate:"omitempty,url"`
	Destination       *string              `json:"destination"`
	CruiseType        *string              `json:"cruiseType" validate:"omitempty,oneof=cabin private both"`
	Duration          *string              `json:"duration"`
	DeparturePort     *string              `json:"departurePort"`
	CabinPrice        *decimal.Decimal     `json:"cabinPrice"`
	PrivatePrice      *decimal.Decimal     `json:"privatePrice"`
	HighlightsFr      *[]string            `json:"highlightsFr"`
	HighlightsEn      *[]string            `json:"highlightsEn"`
	ProgramFr         *[]ProgramDay        `json:"programFr"`
	ProgramEn         *[]ProgramDay        `json:"programEn"`
	Departures        *[]AvailabilityInput `json:"availabilities"`
	BoardingPassImage *string              `json:"boardingPassImage" validate:"omitempty,url"`
	IsActive          *bool                `json:"isActive"`
	Order             *int                 `json:"order"`
}

type FilterCruise struct {
	Pagination
	Destination string `query:"destination"`
	CruiseType  string `query:"cruiseType" validate:"omitempty,oneof=cabin private both"`
}
