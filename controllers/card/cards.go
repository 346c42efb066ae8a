package card

import (
	"errors"

	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type CardRequest struct {
	BankAccountID uint   `json:"bank_account_id"`
	CardNumber    string `json:"card_number"`
	ExpiryDate    string `json:"expiry_date"`
	CVV           string `json:"cvv"`
	CardType      string `json:"card_type"`
}

func ListCards(c *fiber.Ctx) error {
	query := database.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if cardType := c.Query("card_type"); cardType != "" {
		query = query.Where("card_type = ?", cardType)
	}
	if accountID := c.QueryInt("bank_account_id"); accountID > 0 {
		query = query.Where("bank_account_id = ?", accountID)
	}

	var cards []models.Card
	if err := query.Find(&cards).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"cards": cards})
}

func GetCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var card models.Card
	if err := database.DB.First(&card, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "CARD_NOT_FOUND")
	}
	return c.JSON(fiber.Map{"card": card})
}

func CreateCard(c *fiber.Ctx) error {
	var req CardRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	var missing []string
	if req.BankAccountID == 0 {
		missing = append(missing, "bank_account_id")
	}
	if req.CardNumber == "" {
		missing = append(missing, "card_number")
	}
	if req.ExpiryDate == "" {
		missing = append(missing, "expiry_date")
	}
	if req.CVV == "" {
		missing = append(missing, "cvv")
	}
	if len(missing) > 0 {
		return helpers.ValidationError(c, "MISSING_FIELDS", missing)
	}

	cardType := models.CardType(req.CardType)
	if !cardType.Valid() {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"card_type"})
	}

	card := models.Card{
		BankAccountID: req.BankAccountID,
		CardNumber:    req.CardNumber,
		ExpiryDate:    req.ExpiryDate,
		CVV:           req.CVV,
		CardType:      cardType,
	}
	if err := services.CreateCard(&card); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return helpers.JSONError(c, fiber.StatusNotFound, "ACCOUNT_NOT_FOUND")
		case errors.Is(err, services.ErrLimitExceeded):
			return helpers.JSONError(c, fiber.StatusBadRequest, "PINK_CARD_LIMIT_EXCEEDED")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "card_create", map[string]any{
		"card_id": card.ID, "card_type": card.CardType,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"card": card})
}

// CardUpdateRequest uses pointers so a present field overwrites, an absent
// field keeps the stored value, and empty strings can still clear a field.
type CardUpdateRequest struct {
	BankAccountID *uint   `json:"bank_account_id"`
	CardNumber    *string `json:"card_number"`
	ExpiryDate    *string `json:"expiry_date"`
	CVV           *string `json:"cvv"`
	CardType      *string `json:"card_type"`
}

func applyCardUpdate(card *models.Card, req CardUpdateRequest) []string {
	var invalid []string
	if req.CardType != nil {
		cardType := models.CardType(*req.CardType)
		if !cardType.Valid() {
			invalid = append(invalid, "card_type")
		} else {
			card.CardType = cardType
		}
	}
	if req.BankAccountID != nil {
		card.BankAccountID = *req.BankAccountID
	}
	if req.CardNumber != nil {
		card.CardNumber = *req.CardNumber
	}
	if req.ExpiryDate != nil {
		card.ExpiryDate = *req.ExpiryDate
	}
	if req.CVV != nil {
		card.CVV = *req.CVV
	}
	return invalid
}

func UpdateCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var card models.Card
	if err := database.DB.First(&card, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "CARD_NOT_FOUND")
	}

	var req CardUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.BankAccountID != nil && *req.BankAccountID != card.BankAccountID {
		var account models.BankAccount
		if err := database.DB.First(&account, *req.BankAccountID).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusNotFound, "ACCOUNT_NOT_FOUND")
		}
	}
	if invalid := applyCardUpdate(&card, req); len(invalid) > 0 {
		return helpers.ValidationError(c, "INVALID_FIELDS", invalid)
	}
	if err := database.DB.Save(&card).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "card_update", map[string]any{
		"card_id": card.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"card": card})
}

type CardStatusRequest struct {
	Status string `json:"status"`
}

// UpdateCardStatus moves a card along the legal status graph; anything
// off-graph is a state conflict.
func UpdateCardStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var card models.Card
	if err := database.DB.First(&card, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "CARD_NOT_FOUND")
	}

	var req CardStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	target := models.CardStatus(req.Status)
	if !target.Valid() {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"status"})
	}
	if !card.Status.CanTransition(target) {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_STATUS_TRANSITION")
	}

	card.Status = target
	if target == models.CardStatusFree || target == models.CardStatusBlocked {
		card.AssignedTo = ""
		card.AssignedSite = ""
	}
	if err := database.DB.Save(&card).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "card_status_update", map[string]any{
		"card_id": card.ID, "status": card.Status,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"card": card})
}

func DeleteCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	if err := services.DeleteCard(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return helpers.JSONError(c, fiber.StatusNotFound, "CARD_NOT_FOUND")
		case errors.Is(err, services.ErrStateConflict):
			return helpers.JSONError(c, fiber.StatusBadRequest, "CARD_IN_USE")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "card_delete", map[string]any{
		"card_id": id,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"success": true})
}
