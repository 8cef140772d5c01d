package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is retail stock (pomade, razors, ...). Stock is decremented when a
// transaction containing the product is recorded.
type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"not null"`
	Price    float64   `gorm:"type:decimal(10,2);not null"`
	Stock    int       `gorm:"default:0"`
	MinStock int       `gorm:"default:0"`
	IsActive bool      `gorm:"default:true"`

	gorm.Model
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
