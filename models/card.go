package models

import (
	"gorm.io/gorm"
)

type CardType string

const (
	CardTypePink CardType = "pink"
	CardTypeGray CardType = "gray"
)

func (t CardType) Valid() bool {
	return t == CardTypePink || t == CardTypeGray
}

type CardStatus string

const (
	CardStatusFree      CardStatus = "free"
	CardStatusAssigned  CardStatus = "assigned"
	CardStatusInProcess CardStatus = "in_process"
	CardStatusCompleted CardStatus = "completed"
	CardStatusBlocked   CardStatus = "blocked"
)

func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusFree, CardStatusAssigned, CardStatusInProcess, CardStatusCompleted, CardStatusBlocked:
		return true
	}
	return false
}

// CanTransition encodes the legal status graph:
// free -> assigned -> in_process -> completed, assigned -> free (unassign),
// and any state -> blocked.
func (s CardStatus) CanTransition(to CardStatus) bool {
	if !to.Valid() || s == to {
		return false
	}
	if to == CardStatusBlocked {
		return true
	}
	switch s {
	case CardStatusFree:
		return to == CardStatusAssigned
	case CardStatusAssigned:
		return to == CardStatusInProcess || to == CardStatusFree
	case CardStatusInProcess:
		return to == CardStatusCompleted
	}
	return false
}

type Card struct {
	gorm.Model

	BankAccountID uint        `gorm:"index" json:"bank_account_id"`
	BankAccount   BankAccount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CardNumber string   `gorm:"uniqueIndex;size:32" json:"card_number"`
	ExpiryDate string   `gorm:"size:8" json:"expiry_date"`
	CVV        string   `gorm:"size:8" json:"cvv"`
	CardType   CardType `gorm:"size:8;index" json:"card_type"`

	Status        CardStatus `gorm:"size:16;index;default:free" json:"status"`
	AssignedTo    string     `gorm:"size:160" json:"assigned_to"`
	AssignedSite  string     `gorm:"size:160" json:"assigned_site"`
	TimesAssigned int        `gorm:"default:0" json:"times_assigned"`
}
