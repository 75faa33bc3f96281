// services/notify.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/Saaquib01/TheTasteQuest/store"
	"github.com/Saaquib01/TheTasteQuest/utils"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends order-ready messages to customers and a nightly sales
// summary to the stall owner. It stays silent when Twilio credentials are not
// configured; message failures never fail the triggering request.
type NotifyService struct {
	store   *store.LedgerStore
	client  *twilio.RestClient
	enabled bool
}

func NewNotifyService(ledger *store.LedgerStore) *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifyService{
		store:   ledger,
		enabled: accountSid != "" && authToken != "",
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler registers the nightly summary job (9 PM daily).
func (s *NotifyService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 21 * * *", s.SendDailySummary)

	c.Start()
	log.Println("Daily summary scheduler started")
}

// SendDailySummary texts the stall owner today's revenue, order count and the
// number of orders still pending.
func (s *NotifyService) SendDailySummary() {
	owner := os.Getenv("OWNER_PHONE_NUMBER")
	if owner == "" {
		log.Println("OWNER_PHONE_NUMBER not set, skipping daily summary")
		return
	}

	rows, err := s.store.ReadAll()
	if err != nil {
		log.Printf("Daily summary: failed to read ledger: %v", err)
		return
	}

	today := utils.BeginningOfDay(time.Now())
	var revenue, orders, pending int
	for _, row := range rows {
		if row.Status == models.StatusPending {
			pending++
		}
		if row.Date.Before(today) {
			continue
		}
		revenue += row.TotalAmount
		orders++
	}

	message := fmt.Sprintf("The Taste Quest daily summary: %d orders, Rs. %d revenue, %d still pending.", orders, revenue, pending)
	s.send(owner, message)
}

// NotifyOrderCompleted texts the customer that their order is ready.
func (s *NotifyService) NotifyOrderCompleted(row models.LedgerRow) {
	message := fmt.Sprintf("Hi! Your order %s x%d (bill %s) is ready for pickup at The Taste Quest.", row.ItemName, row.Quantity, row.BillNumber)
	s.send(row.PhoneNumber, message)
}

func (s *NotifyService) send(phone, message string) {
	if !s.enabled {
		return
	}

	// Use WhatsApp when the phone is in E.164 format, SMS otherwise
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send message to %s: %v", phone, err)
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", phone)
	}
}
