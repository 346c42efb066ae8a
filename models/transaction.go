package models

import (
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

func (t TransactionType) Valid() bool {
	return t == TransactionDeposit || t == TransactionWithdrawal
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionFailed, TransactionCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a transaction may move from s to target.
// Pending rows may reach any terminal status. A completed row may still be
// reversed to cancelled. Failed and cancelled are terminal.
func (s TransactionStatus) CanTransition(to TransactionStatus) bool {
	if !to.Valid() || s == to {
		return false
	}
	switch s {
	case TransactionPending:
		return true
	case TransactionCompleted:
		return to == TransactionCancelled
	}
	return false
}

// Transaction is an operator-recorded deposit or withdrawal against a
// (employee, card, casino) triple. Amounts are immutable once the row
// reaches completed; only the status may still move.
type Transaction struct {
	gorm.Model

	EmployeeID uint     `gorm:"index" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CardID     uint     `gorm:"index" json:"card_id"`
	Card       Card     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CasinoID   uint     `gorm:"index" json:"casino_id"`
	Casino     Casino   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	TrxType TransactionType   `gorm:"size:16" json:"trx_type"`
	Amount  float64           `json:"amount"`
	Profit  float64           `json:"profit"`
	Status  TransactionStatus `gorm:"size:16;index;default:pending" json:"status"`
	Note    string            `gorm:"size:255" json:"note"`
}
