package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotifyStatusSent    = "sent"
	NotifyStatusFailed  = "failed"
	NotifyStatusDropped = "dropped" // daily quota exhausted
)

// NotificationLog records every relay attempt. The daily send quota is
// derived by counting today's rows, not from a mutable counter.
type NotificationLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Type     string    `gorm:"type:varchar(30);not null"` // low_stock, shop_closed, ...
	Title    string    `gorm:"not null"`
	Body     string    `gorm:"type:text"`
	Metadata JSONB     `gorm:"type:jsonb;default:'{}'"`

	Status       string `gorm:"type:varchar(20);not null"` // sent, failed, dropped
	Channel      string `gorm:"type:varchar(20)"`          // whatsapp, sms
	ErrorMessage string `gorm:"type:text"`
	SentAt       time.Time

	gorm.Model
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}

// Custom JSONB type for notification metadata
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
