package models

import (
	"time"

	"gorm.io/gorm"
)

type Bank struct {
	gorm.Model

	Name     string `gorm:"uniqueIndex;size:128" json:"name"`
	Country  string `gorm:"size:64" json:"country"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Accounts []BankAccount `gorm:"foreignKey:BankID" json:"accounts,omitempty"`
}

type BankAccount struct {
	gorm.Model

	BankID        uint   `gorm:"index" json:"bank_id"`
	Bank          Bank   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AccountNumber string `gorm:"uniqueIndex;size:64" json:"account_number"`
	HolderName    string `gorm:"size:128" json:"holder_name"`

	PinkCardsDailyLimit int       `gorm:"default:5" json:"pink_cards_daily_limit"`
	PinkCardsRemaining  int       `gorm:"default:5" json:"pink_cards_remaining"`
	LastResetDate       time.Time `json:"last_reset_date"`

	Cards []Card `gorm:"foreignKey:BankAccountID" json:"cards,omitempty"`
}

// ValidPinkRemaining checks the invariant 0 <= remaining <= daily limit.
func (a *BankAccount) ValidPinkRemaining(remaining int) bool {
	return remaining >= 0 && remaining <= a.PinkCardsDailyLimit
}
