package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InitialDeposit is the day's opening cash float. At most one row per
// calendar date; a second write for the same date updates the existing row.
type InitialDeposit struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Date string    `gorm:"type:date;uniqueIndex;not null"` // YYYY-MM-DD

	Amount float64 `gorm:"type:decimal(10,2);not null"`
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

func (d *InitialDeposit) BeforeCreate(tx *gorm.DB) (err error) {
	d.ID = uuid.New()
	return
}
