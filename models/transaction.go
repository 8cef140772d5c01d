package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
	PaymentQRIS     = "qris"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"

	ItemTypeService = "service"
	ItemTypeProduct = "product"
)

// Transaction is a completed sale. Transactions and their items are written
// together in one database transaction and never updated or deleted
// afterwards; corrections are made with new entries.
type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CashierID uuid.UUID `gorm:"type:uuid;index;not null"`

	TotalAmount     float64 `gorm:"type:decimal(10,2);not null"`
	DiscountAmount  float64 `gorm:"type:decimal(10,2);default:0.0"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0.0"`
	DiscountType    string  `gorm:"type:varchar(20)"` // 'amount' or 'percent'

	PaymentMethod string `gorm:"type:varchar(20);not null"` // cash, transfer, qris
	PaymentStatus string `gorm:"type:varchar(20);not null"` // pending, completed
	Notes         string

	Items []TransactionItem `gorm:"foreignKey:TransactionID"`

	CreatedAt time.Time `gorm:"index"`
}

// TransactionItem is one sold line. ItemName, UnitPrice, CommissionRate and
// CommissionAmount are snapshots taken at sale time; they are frozen facts
// and must never be recomputed from the live catalog or barber rows.
type TransactionItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null"`

	ItemName string `gorm:"not null"`
	ItemType string `gorm:"type:varchar(20);index;not null"` // service, product

	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null"`
	Subtotal  float64 `gorm:"type:decimal(10,2);not null"` // unit_price * quantity

	BarberID         *uuid.UUID `gorm:"type:uuid;index"`               // nil for unattributed product sales
	BarberName       string                                            // snapshot, survives roster changes
	CommissionRate   float64    `gorm:"type:decimal(5,2);default:0.0"` // percent snapshot
	CommissionAmount float64    `gorm:"type:decimal(10,2);default:0.0"`

	CreatedAt time.Time `gorm:"index"`
}
