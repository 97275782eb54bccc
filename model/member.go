package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is a travelers club member. Uid is the id other records and the
// X-Member-Id header refer to.
type Member struct {
	DTO
	Uid          string   `gorm:"uniqueIndex;not null" json:"uid"`
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	AvatarUrl    *string  `json:"avatarUrl"`
	BioFr        *string  `json:"bioFr"`
	BioEn        *string  `json:"bioEn"`
	CruisesDone  []string `gorm:"type:jsonb;serializer:json" json:"cruisesDone"`
	IsActive     bool     `gorm:"not null;default:true" json:"isActive"`
	IsBanned     bool     `gorm:"not null;default:false" json:"isBanned"`
	BannedReason *string  `json:"bannedReason"`
}

type Members []Member

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.Uid == "" {
		m.Uid = uuid.NewString()
	}
	return nil
}

type CreateMemberInput struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Email     string  `json:"email" validate:"required,email"`
	AvatarUrl *string `json:"avatarUrl" validate:"omitempty,url"`
	BioFr     *string `json:"bioFr" validate:"omitempty,max=1000"`
	BioEn     *string `json:"bioEn" validate:"omitempty,max=1000"`
}

type BanMemberInput struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}
