package services

import (
	"testing"
	"time"

	"fitclub-backend/models"

	"github.com/stretchr/testify/assert"
)

// Compile-time check that the Twilio client satisfies the sender contract.
var _ messageSender = (*twilioSender)(nil)

func TestDeliveryRoute(t *testing.T) {
	to, from, channel := deliveryRoute("+5511999998888", "+14155550100")
	assert.Equal(t, "whatsapp:+5511999998888", to)
	assert.Equal(t, "whatsapp:+14155550100", from)
	assert.Equal(t, "whatsapp", channel)

	to, from, channel = deliveryRoute("11999998888", "+14155550100")
	assert.Equal(t, "11999998888", to)
	assert.Equal(t, "+14155550100", from)
	assert.Equal(t, "sms", channel)
}

func TestReminderMessage(t *testing.T) {
	start := time.Date(2026, 9, 14, 7, 30, 0, 0, time.UTC)
	session := &models.TrainingSession{
		SessionType: models.SessionPersonal,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Member:      models.Member{FirstName: "Alice"},
		Trainer:     models.Trainer{FirstName: "Bob", LastName: "Stone"},
	}

	msg := reminderMessage(session)
	assert.Equal(t, "Hi Alice, reminder: your personal training with Bob Stone tomorrow at 07:30.", msg)
}

func TestReminderMessageIncludesRoom(t *testing.T) {
	start := time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC)
	session := &models.TrainingSession{
		SessionType: models.SessionGroup,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Member:      models.Member{FirstName: "Carol"},
		Trainer:     models.Trainer{FirstName: "Dan", LastName: "Reed"},
		Room:        &models.Room{RoomNumber: "A-101"},
	}

	msg := reminderMessage(session)
	assert.Equal(t, "Hi Carol, reminder: your group class with Dan Reed tomorrow at 18:00 in room A-101.", msg)
}
