package services

import (
	"errors"

	"cardops/database"
	"cardops/models"

	"gorm.io/gorm"
)

// CreateCard inserts a card. Pink cards consume the owning account's
// daily quota: the decrement and the insert run in one transaction, with
// a guarded UPDATE so two concurrent creations cannot oversell the limit.
func CreateCard(card *models.Card) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.BankAccount
		if err := tx.First(&account, card.BankAccountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if card.CardType == models.CardTypePink {
			res := tx.Model(&models.BankAccount{}).
				Where("id = ? AND pink_cards_remaining > 0", account.ID).
				UpdateColumn("pink_cards_remaining", gorm.Expr("pink_cards_remaining - 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrLimitExceeded
			}
		}

		card.Status = models.CardStatusFree
		return tx.Create(card).Error
	})
}

// AssignCards points a set of cards at one worker and one casino.
// Assignment is bookkeeping only; card status stays whatever it was.
func AssignCards(cardIDs []uint, employeeID, casinoID uint) ([]models.Card, error) {
	var employee models.Employee
	if err := database.DB.Preload("User").First(&employee, employeeID).Error; err != nil {
		return nil, ErrNotFound
	}
	var casino models.Casino
	if err := database.DB.First(&casino, casinoID).Error; err != nil {
		return nil, ErrNotFound
	}

	var cards []models.Card
	if err := database.DB.Find(&cards, cardIDs).Error; err != nil {
		return nil, err
	}
	if len(cards) != len(cardIDs) {
		return nil, ErrNotFound
	}

	assignedTo := employee.User.DisplayName()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i := range cards {
			cards[i].AssignedTo = assignedTo
			cards[i].AssignedSite = casino.Name
			cards[i].TimesAssigned++
			if err := tx.Save(&cards[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// UnassignCard requires the card to be in assigned state; it returns to
// free with the assignment fields cleared.
func UnassignCard(cardID uint) (*models.Card, error) {
	var card models.Card
	if err := database.DB.First(&card, cardID).Error; err != nil {
		return nil, ErrNotFound
	}
	if card.Status != models.CardStatusAssigned {
		return nil, ErrStateConflict
	}

	card.Status = models.CardStatusFree
	card.AssignedTo = ""
	card.AssignedSite = ""
	if err := database.DB.Save(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard removes a card that is not in use.
func DeleteCard(cardID uint) error {
	var card models.Card
	if err := database.DB.First(&card, cardID).Error; err != nil {
		return ErrNotFound
	}
	if card.Status != models.CardStatusFree {
		return ErrStateConflict
	}
	return database.DB.Delete(&card).Error
}
