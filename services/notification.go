// services/notification.go
package services

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const dailyNotifyQuota = 50

// NotificationService relays operational messages (low stock, shop closing,
// daily summary) to the owner's phone and logs every attempt. Callers fire
// and forget: delivery outcome never feeds back into any report result.
type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// Notify dispatches asynchronously. Errors and quota drops are logged, never
// returned.
func (s *NotificationService) Notify(ntype, title, body string, metadata models.JSONB) {
	go s.send(ntype, title, body, metadata)
}

func (s *NotificationService) send(ntype, title, body string, metadata models.JSONB) {
	entry := models.NotificationLog{
		Type:     ntype,
		Title:    title,
		Body:     body,
		Metadata: metadata,
		SentAt:   time.Now(),
	}

	over, err := s.quotaExceeded()
	if err != nil {
		log.Printf("Notification quota check failed: %v", err)
		return
	}
	if over {
		entry.Status = models.NotifyStatusDropped
		log.Printf("Notification dropped, daily quota of %d reached: %s", dailyNotifyQuota, title)
		if err := s.db.Create(&entry).Error; err != nil {
			log.Printf("Failed to log dropped notification: %v", err)
		}
		return
	}

	to := os.Getenv("OWNER_PHONE")
	channel := "sms"
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(title + "\n" + body)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	entry.Channel = channel
	entry.Status = models.NotifyStatusSent

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send notification %q: %v", title, err)
		entry.Status = models.NotifyStatusFailed
		entry.ErrorMessage = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Notification sent: %s, SID: %s", title, *resp.Sid)
	} else {
		log.Printf("Notification sent: %s, but no SID returned", title)
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log notification %q: %v", title, err)
	}
}

// quotaExceeded counts today's delivery attempts. Dropped rows do not count
// against the quota.
func (s *NotificationService) quotaExceeded() (bool, error) {
	var count int64
	today := utils.BeginningOfDay(time.Now())
	err := s.db.Model(&models.NotificationLog{}).
		Where("sent_at >= ? AND status IN ?", today,
			[]string{models.NotifyStatusSent, models.NotifyStatusFailed}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count >= dailyNotifyQuota, nil
}

// StartScheduler sends the owner a daily summary at 21:00.
func (s *NotificationService) StartScheduler(reports *ReportService) {
	c := cron.New()

	c.AddFunc("0 21 * * *", func() {
		s.SendDailySummary(reports)
	})

	c.Start()
	log.Println("Notification scheduler started")
}

// SendDailySummary relays today's headline numbers.
func (s *NotificationService) SendDailySummary(reports *ReportService) {
	now := time.Now()
	window := utils.Window{From: utils.BeginningOfDay(now), To: utils.EndOfDay(now)}

	report, err := reports.FullReport(window)
	if err != nil {
		log.Printf("Daily summary aborted, report failed: %v", err)
		return
	}

	body := "Omzet: " + utils.FormatRupiah(report.TotalRevenue) +
		"\nTransaksi: " + strconv.Itoa(report.TransactionCount) +
		"\nPengeluaran: " + utils.FormatRupiah(report.TotalExpenses) +
		"\nLaba Bersih: " + utils.FormatRupiah(report.NetProfit)

	s.Notify("daily_summary", "Ringkasan Harian "+now.Format("02 Jan 2006"), body, models.JSONB{
		"date": now.Format("2006-01-02"),
	})
}
