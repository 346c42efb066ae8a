package models

import (
	"gorm.io/gorm"
)

type WithdrawalStatus string

const (
	WithdrawalNew      WithdrawalStatus = "new"
	WithdrawalSent     WithdrawalStatus = "sent"
	WithdrawalReceived WithdrawalStatus = "received"
	WithdrawalProblem  WithdrawalStatus = "problem"
	WithdrawalBlocked  WithdrawalStatus = "blocked"
)

func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalNew, WithdrawalSent, WithdrawalReceived, WithdrawalProblem, WithdrawalBlocked:
		return true
	}
	return false
}

// WorkEntry is a worker's self-reported record of one casino session,
// distinct from the operator-recorded Transaction.
type WorkEntry struct {
	gorm.Model

	UserID   uint   `gorm:"index" json:"user_id"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CasinoID uint   `gorm:"index" json:"casino_id"`
	Casino   Casino `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	DepositAmount    float64 `json:"deposit_amount"`
	WithdrawalAmount float64 `json:"withdrawal_amount"`

	CardNumber         string `gorm:"size:32" json:"card_number"`
	AccountCredentials string `gorm:"size:255" json:"account_credentials"`

	WithdrawalStatus WithdrawalStatus `gorm:"size:16;index;default:new" json:"withdrawal_status"`
	Notes            string           `gorm:"size:512" json:"notes"`
}
