package helper

import (
	"cruise_manager/model"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func generateUniqueSlug(tx *gorm.DB, m interface{}, name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "item"
	}
	result := base
	i := 1

	for {
		var count int64
		tx.Model(m).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

func GenerateUniqueCruiseSlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.Cruise{}, name)
}
