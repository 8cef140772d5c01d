package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Withdrawal is a payout against a barber's accrued commission.
type Withdrawal struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	BarberID uuid.UUID `gorm:"type:uuid;index;not null"`

	Amount        float64 `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string  `gorm:"type:varchar(20);not null"`
	Notes         string

	CreatedAt time.Time `gorm:"index"`
	DeletedAt gorm.DeletedAt
}

func (w *Withdrawal) BeforeCreate(tx *gorm.DB) (err error) {
	w.ID = uuid.New()
	return
}
