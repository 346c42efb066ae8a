package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    CardStatus
		to      CardStatus
		allowed bool
	}{
		{"free to assigned", CardStatusFree, CardStatusAssigned, true},
		{"assigned to in_process", CardStatusAssigned, CardStatusInProcess, true},
		{"assigned back to free", CardStatusAssigned, CardStatusFree, true},
		{"in_process to completed", CardStatusInProcess, CardStatusCompleted, true},
		{"free to blocked", CardStatusFree, CardStatusBlocked, true},
		{"assigned to blocked", CardStatusAssigned, CardStatusBlocked, true},
		{"completed to blocked", CardStatusCompleted, CardStatusBlocked, true},

		{"free to in_process skips assignment", CardStatusFree, CardStatusInProcess, false},
		{"free to completed skips everything", CardStatusFree, CardStatusCompleted, false},
		{"completed back to free", CardStatusCompleted, CardStatusFree, false},
		{"in_process back to assigned", CardStatusInProcess, CardStatusAssigned, false},
		{"blocked to free", CardStatusBlocked, CardStatusFree, false},
		{"no self transition", CardStatusAssigned, CardStatusAssigned, false},
		{"unknown target", CardStatusFree, CardStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestCardTypeValid(t *testing.T) {
	assert.True(t, CardTypePink.Valid())
	assert.True(t, CardTypeGray.Valid())
	assert.False(t, CardType("gold").Valid())
	assert.False(t, CardType("").Valid())
}

func TestValidPinkRemaining(t *testing.T) {
	account := BankAccount{PinkCardsDailyLimit: 5}

	assert.True(t, account.ValidPinkRemaining(0))
	assert.True(t, account.ValidPinkRemaining(5))
	assert.False(t, account.ValidPinkRemaining(-1))
	assert.False(t, account.ValidPinkRemaining(6))
}
