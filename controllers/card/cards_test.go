package card

import (
	"testing"

	"cardops/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestApplyCardUpdate(t *testing.T) {
	base := models.Card{
		BankAccountID: 1,
		CardNumber:    "4111111111111111",
		ExpiryDate:    "12/27",
		CVV:           "123",
		CardType:      models.CardTypeGray,
	}

	t.Run("overwrites every provided field", func(t *testing.T) {
		card := base
		invalid := applyCardUpdate(&card, CardUpdateRequest{
			BankAccountID: uintPtr(2),
			CardNumber:    strPtr("5500000000000004"),
			ExpiryDate:    strPtr("01/29"),
			CVV:           strPtr("999"),
			CardType:      strPtr("pink"),
		})
		assert.Empty(t, invalid)
		assert.Equal(t, uint(2), card.BankAccountID)
		assert.Equal(t, "5500000000000004", card.CardNumber)
		assert.Equal(t, "01/29", card.ExpiryDate)
		assert.Equal(t, "999", card.CVV)
		assert.Equal(t, models.CardTypePink, card.CardType)
	})

	t.Run("absent fields keep stored values", func(t *testing.T) {
		card := base
		invalid := applyCardUpdate(&card, CardUpdateRequest{
			CVV: strPtr("456"),
		})
		assert.Empty(t, invalid)
		assert.Equal(t, "456", card.CVV)
		assert.Equal(t, base.CardNumber, card.CardNumber)
		assert.Equal(t, base.ExpiryDate, card.ExpiryDate)
		assert.Equal(t, base.CardType, card.CardType)
		assert.Equal(t, base.BankAccountID, card.BankAccountID)
	})

	t.Run("empty string clears a field", func(t *testing.T) {
		card := base
		invalid := applyCardUpdate(&card, CardUpdateRequest{
			CVV: strPtr(""),
		})
		assert.Empty(t, invalid)
		assert.Equal(t, "", card.CVV)
	})

	t.Run("unknown card type is rejected and not applied", func(t *testing.T) {
		card := base
		invalid := applyCardUpdate(&card, CardUpdateRequest{
			CardType: strPtr("platinum"),
		})
		assert.Equal(t, []string{"card_type"}, invalid)
		assert.Equal(t, models.CardTypeGray, card.CardType)
	})
}
