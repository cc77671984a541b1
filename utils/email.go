package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// RSVPConfirmationData feeds the confirmation email template.
type RSVPConfirmationData struct {
	GuestName      string
	WillAttend     string
	NumberOfGuests int
	BrideName      string
	GroomName      string
	WeddingDate    string
}

// SendRSVPConfirmationEmail sends the confirmation asynchronously so the
// public submit response is not delayed by SMTP.
func SendRSVPConfirmationEmail(to string, data RSVPConfirmationData) {
	go func() {
		tmplPath := "templates/rsvp_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "We received your RSVP")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}
