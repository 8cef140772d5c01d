// services/commission.go
package services

import (
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommissionService fetches one barber's ledger rows for a window and folds
// them with SummarizeBarber. It is read-only; a fetch failure is returned to
// the caller rather than masked as an empty summary.
type CommissionService struct {
	db *gorm.DB
}

func NewCommissionService(db *gorm.DB) *CommissionService {
	return &CommissionService{db: db}
}

// Summarize computes the reconciliation tuple for one barber. An id with no
// rows in the window (including an unknown barber) yields the zero summary.
func (s *CommissionService) Summarize(barberID uuid.UUID, window utils.Window) (BarberSummary, error) {
	summary, _, _, err := s.SummarizeWithDetail(barberID, window)
	return summary, err
}

// SummarizeWithDetail additionally returns the item and withdrawal rows the
// summary was folded from, for slip rendering.
func (s *CommissionService) SummarizeWithDetail(barberID uuid.UUID, window utils.Window) (BarberSummary, []models.TransactionItem, []models.Withdrawal, error) {
	var items []models.TransactionItem
	if err := s.db.
		Where("barber_id = ? AND created_at BETWEEN ? AND ?", barberID, window.From, window.To).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return BarberSummary{}, nil, nil, err
	}

	var withdrawals []models.Withdrawal
	if err := s.db.
		Where("barber_id = ? AND created_at BETWEEN ? AND ?", barberID, window.From, window.To).
		Order("created_at ASC").
		Find(&withdrawals).Error; err != nil {
		return BarberSummary{}, nil, nil, err
	}

	return SummarizeBarber(items, withdrawals), items, withdrawals, nil
}
