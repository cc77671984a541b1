package database

import (
	"log"
	"time"
	"wedding_rsvp/constants"
	"wedding_rsvp/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "admin", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	// A single WeddingInfo row drives the public hero section.
	info := model.WeddingInfo{
		BrideName:   "Bride",
		GroomName:   "Groom",
		WeddingDate: parseDate("2026-12-12"),
	}
	var count int64
	db.Model(&model.WeddingInfo{}).Count(&count)
	if count == 0 {
		if err := db.Create(&info).Error; err != nil {
			log.Println("failed to seed wedding info:", err)
		}
	}
}
