package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{"pending to completed", TransactionPending, TransactionCompleted, true},
		{"pending to failed", TransactionPending, TransactionFailed, true},
		{"pending to cancelled", TransactionPending, TransactionCancelled, true},
		{"completed to cancelled", TransactionCompleted, TransactionCancelled, true},

		{"completed to pending", TransactionCompleted, TransactionPending, false},
		{"completed to failed", TransactionCompleted, TransactionFailed, false},
		{"failed is terminal", TransactionFailed, TransactionPending, false},
		{"cancelled is terminal", TransactionCancelled, TransactionCompleted, false},
		{"no self transition", TransactionPending, TransactionPending, false},
		{"unknown target", TransactionPending, TransactionStatus("refunded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TransactionDeposit.Valid())
	assert.True(t, TransactionWithdrawal.Valid())
	assert.False(t, TransactionType("transfer").Valid())
}
