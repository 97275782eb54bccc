package helper

import (
	"cruise_manager/database"
	"cruise_manager/model"
	"errors"

	"gorm.io/gorm"
)

// GetMemberByUid returns nil, nil when no member has this uid.
func GetMemberByUid(uid string) (*model.Member, error) {
	if uid == "" {
		return nil, nil
	}
	var member model.Member
	if err := database.DB.Where("uid = ?", uid).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func GetMemberByEmail(email string) (*model.Member, error) {
	var member model.Member
	if err := database.DB.Where("LOWER(email) = LOWER(?)", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func MemberExists(username, email string) (bool, error) {
	var count int64
	err := database.DB.Model(&model.Member{}).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", username, email).
		Count(&count).Error
	return count > 0, err
}
