package helper

import (
	"log"
	"time"
	"wedding_rsvp/database"
	"wedding_rsvp/model"

	"github.com/go-co-op/gocron/v2"
)

var reminderScheduler gocron.Scheduler

// SendRSVPReminder mails the couple a list of guests who have not responded
// yet. It stops firing once the RSVP deadline has passed.
func SendRSVPReminder() {
	log.Println("[CRON] SendRSVPReminder triggered")

	db := database.DB

	var info model.WeddingInfo
	if err := db.First(&info).Error; err != nil {
		log.Printf("reminder: wedding info not found: %v", err)
		return
	}
	if info.RSVPDeadline != nil && time.Now().After(*info.RSVPDeadline) {
		return
	}

	var pending []model.GuestInvitation
	err := db.Where("invitation_code NOT IN (?)",
		db.Model(&model.RSVPEntry{}).
			Select("invitation_code").
			Where("invitation_code IS NOT NULL"),
	).Find(&pending).Error
	if err != nil {
		log.Printf("reminder: failed to load pending guests: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	if err := SendPendingGuestsEmail(info, pending); err != nil {
		log.Printf("reminder: failed to send email: %v", err)
	}
}

func StartRSVPReminderScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	reminderScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(9, 0, 0),
			),
		),
		gocron.NewTask(SendRSVPReminder),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("RSVP reminder scheduler started (daily 09:00)")
}

func StopRSVPReminderScheduler() {
	if reminderScheduler != nil {
		if err := reminderScheduler.Shutdown(); err != nil {
			log.Printf("failed to stop reminder scheduler: %v", err)
		}
	}
}
