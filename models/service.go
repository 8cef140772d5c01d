package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceCatalog is the menu of haircut/grooming services. Name and price
// are snapshotted onto transaction items at sale time.
type ServiceCatalog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"not null"`
	Description string
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Duration    int     // in minutes
	IsActive    bool    `gorm:"default:true"`

	gorm.Model
}

func (s *ServiceCatalog) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
