package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"
	"wedding_rsvp/config"
	"wedding_rsvp/database"
	"wedding_rsvp/model"

	"github.com/jordan-wright/email"
	"github.com/robfig/cron/v3"
)

var digestScheduler *cron.Cron

// StartRSVPDigestScheduler mails the couple a summary of new RSVP entries on
// the DIGEST_CRON schedule (default: every morning at 08:00).
func StartRSVPDigestScheduler() {
	digestScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	spec := config.ConfigDefault("DIGEST_CRON", "0 8 * * *")
	_, err := digestScheduler.AddFunc(spec, sendRSVPDigest)
	if err != nil {
		log.Printf("failed to start digest scheduler: %v", err)
		return
	}

	digestScheduler.Start()
	log.Printf("RSVP digest scheduler started (%s)", spec)
}

func StopRSVPDigestScheduler() {
	if digestScheduler != nil {
		digestScheduler.Stop()
	}
}

func sendRSVPDigest() {
	db := database.DB
	since := time.Now().AddDate(0, 0, -1)

	var entries []model.RSVPEntry
	if err := db.Where("created_at >= ?", since).Order("created_at").Find(&entries).Error; err != nil {
		log.Printf("digest: failed to load entries: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d new RSVP(s) since yesterday:\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %s (%d guest(s))\n", e.Name, e.WillAttend, e.NumberOfGuests)
	}

	if err := sendPlainMail("Daily RSVP digest", b.String()); err != nil {
		log.Printf("digest: failed to send email: %v", err)
	}
}

// SendPendingGuestsEmail mails the couple the guests who have not RSVPed.
func SendPendingGuestsEmail(info model.WeddingInfo, pending []model.GuestInvitation) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d invitation(s) still without an RSVP:\n\n", len(pending))
	for _, g := range pending {
		fmt.Fprintf(&b, "- %s (%s, %d seat(s))\n", g.Name, g.InvitationCode, g.AllocatedSeats)
	}
	return sendPlainMail("RSVP reminder", b.String())
}

func sendPlainMail(subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	addr := host + ":" + config.ConfigDefault("SMTP_PORT", "587")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{os.Getenv("COUPLE_EMAIL")}
	e.Subject = subject
	e.Text = []byte(body)
	return e.Send(addr, smtp.PlainAuth("", username, password, host))
}
