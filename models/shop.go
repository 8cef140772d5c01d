package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopStatus is a singleton row tracking whether the register is open.
type ShopStatus struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	IsOpen   bool      `gorm:"default:false"`
	OpenedAt *time.Time
	ClosedAt *time.Time
	OpenedBy *uuid.UUID `gorm:"type:uuid"`

	UpdatedAt time.Time
}

func (s *ShopStatus) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
