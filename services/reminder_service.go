// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"
	"workshoppro-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends birthday greetings over WhatsApp to active customers
// whose phone is flagged as WhatsApp-capable.
type ReminderService struct {
	db     *gorm.DB
	log    *logrus.Logger
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB, log *logrus.Logger) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db:  db,
		log: log,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the daily pass at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendBirthdayGreetings()
	})

	c.Start()
	s.log.Info("reminder scheduler started")
}

// SendBirthdayGreetings finds today's birthdays and messages each customer.
func (s *ReminderService) SendBirthdayGreetings() {
	s.log.Info("starting birthday greeting processing")

	customers, err := s.birthdayCustomers(time.Now())
	if err != nil {
		s.log.WithError(err).Error("failed to fetch birthday customers")
		return
	}

	for _, customer := range customers {
		s.sendGreeting(customer)
	}

	s.log.WithField("count", len(customers)).Info("birthday greeting processing completed")
}

func (s *ReminderService) birthdayCustomers(now time.Time) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.
		Where("active = ?", true).
		Where("phone_whats_app = ?", true).
		Where("phone IS NOT NULL").
		Where("birth_date IS NOT NULL").
		Where("EXTRACT(MONTH FROM birth_date) = ? AND EXTRACT(DAY FROM birth_date) = ?",
			int(now.Month()), now.Day()).
		Find(&customers).Error
	return customers, err
}

func (s *ReminderService) sendGreeting(customer models.Customer) {
	recipient, ok := whatsappRecipient(*customer.Phone)
	if !ok {
		s.log.WithField("customer", customer.ID).Warn("phone not in international format, skipping greeting")
		return
	}

	message := fmt.Sprintf("Olá %s, a oficina deseja um feliz aniversário! 🎉", customer.FullName)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.WithError(err).WithField("customer", customer.ID).Error("failed to send greeting")
		return
	}
	if resp.Sid != nil {
		s.log.WithFields(logrus.Fields{
			"customer": customer.ID,
			"sid":      *resp.Sid,
		}).Info("greeting sent")
	} else {
		s.log.WithField("customer", customer.ID).Info("greeting sent, no SID returned")
	}
}

// whatsappRecipient builds the Twilio WhatsApp address. Normalization keeps a
// leading + but adds no country code, so only phones already stored in
// international format are routable; anything else is declined.
func whatsappRecipient(phone string) (string, bool) {
	if !strings.HasPrefix(phone, "+") {
		return "", false
	}
	return "whatsapp:" + phone, true
}
