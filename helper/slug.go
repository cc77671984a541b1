package helper

import (
	"fmt"
	"wedding_rsvp/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueLocationSlug builds a URL slug from the location name,
// suffixing a counter until it is free.
func GenerateUniqueLocationSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Location{}).
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
