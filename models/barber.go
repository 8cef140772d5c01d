package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Barber is a service provider whose sales accrue commission. Commission
// rates here are the *current* rates; each sale snapshots the rate onto the
// transaction item, so editing a barber never rewrites history. Barbers are
// deactivated rather than hard-deleted so historical reports stay intact.
type Barber struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name  string    `gorm:"not null"`
	Phone string

	CommissionService float64 `gorm:"type:decimal(5,2);default:0.0"` // percent
	CommissionProduct float64 `gorm:"type:decimal(5,2);default:0.0"` // percent

	IsActive bool `gorm:"default:true"`

	gorm.Model
}

func (b *Barber) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
