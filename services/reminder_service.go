package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fitclub-backend/config"
	"fitclub-backend/models"
	"fitclub-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// messageSender abstracts the Twilio call so reminder composition is testable.
type messageSender interface {
	Send(to, from, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
}

func (t *twilioSender) Send(to, from, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)
	_, err := t.client.Api.CreateMessage(params)
	return err
}

// ReminderService texts members about their next-day sessions on a nightly
// cron.
type ReminderService struct {
	db         *gorm.DB
	sender     messageSender
	fromNumber string
}

func NewReminderService(db *gorm.DB, cfg *config.Config) *ReminderService {
	return &ReminderService{
		db: db,
		sender: &twilioSender{
			client: twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: cfg.TwilioAccountSID,
				Password: cfg.TwilioAuthToken,
			}),
		},
		fromNumber: cfg.TwilioFromNumber,
	}
}

func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	// Nightly at 18:00: remind everyone booked for tomorrow.
	c.AddFunc("0 18 * * *", s.SendSessionReminders)

	c.Start()
	log.Println("Session reminder scheduler started")
	return c
}

// SendSessionReminders finds every session starting tomorrow and sends each
// member one text, logging the attempt.
func (s *ReminderService) SendSessionReminders() {
	log.Println("Starting session reminder processing...")

	dayStart := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayEnd := dayStart.AddDate(0, 0, 1)

	var sessions []models.TrainingSession
	if err := s.db.Preload("Member").Preload("Trainer").Preload("Room").
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Order("start_time").Find(&sessions).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's sessions: %v", err)
		return
	}

	for _, session := range sessions {
		s.remind(&session)
	}

	log.Printf("Session reminder processing completed (%d sessions)", len(sessions))
}

func (s *ReminderService) remind(session *models.TrainingSession) {
	if session.Member.Phone == "" {
		return
	}

	message := reminderMessage(session)

	to, from, channel := deliveryRoute(session.Member.Phone, s.fromNumber)

	status := "sent"
	errorMsg := ""
	if err := s.sender.Send(to, from, message); err != nil {
		log.Printf("Failed to send reminder to %s: %v", session.Member.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	}

	entry := models.NotificationLog{
		MemberID:     session.MemberID,
		SessionID:    &session.ID,
		Channel:      channel,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for member %s: %v", session.MemberID, err)
	}
}

// deliveryRoute picks the channel for a member's phone number. Numbers in
// international format go out over WhatsApp, everything else as plain SMS.
func deliveryRoute(phone, fromNumber string) (to, from, channel string) {
	if strings.HasPrefix(phone, "+") {
		return "whatsapp:" + phone, "whatsapp:" + fromNumber, "whatsapp"
	}
	return phone, fromNumber, "sms"
}

// reminderMessage builds the text one member receives about one session.
func reminderMessage(session *models.TrainingSession) string {
	trainer := strings.TrimSpace(session.Trainer.FirstName + " " + session.Trainer.LastName)
	msg := fmt.Sprintf("Hi %s, reminder: your %s with %s tomorrow at %s",
		session.Member.FirstName,
		strings.ToLower(session.SessionType),
		trainer,
		session.StartTime.Format("15:04"))
	if session.Room != nil {
		msg += " in room " + session.Room.RoomNumber
	}
	return msg + "."
}
