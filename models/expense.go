package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Description   string  `gorm:"not null"`
	Amount        float64 `gorm:"type:decimal(10,2);not null"`
	Category      string  `gorm:"index;not null"`
	PaymentMethod string  `gorm:"type:varchar(20);not null"`

	CreatedAt time.Time `gorm:"index"`
	DeletedAt gorm.DeletedAt
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = uuid.New()
	return
}
