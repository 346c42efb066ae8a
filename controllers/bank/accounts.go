package bank

import (
	"time"

	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type AccountRequest struct {
	BankID              uint   `json:"bank_id"`
	AccountNumber       string `json:"account_number"`
	HolderName          string `json:"holder_name"`
	PinkCardsDailyLimit *int   `json:"pink_cards_daily_limit"`
}

func ListAccounts(c *fiber.Ctx) error {
	var accounts []models.BankAccount
	query := database.DB
	if bankID := c.QueryInt("bank_id"); bankID > 0 {
		query = query.Where("bank_id = ?", bankID)
	}
	if err := query.Find(&accounts).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"accounts": accounts})
}

func CreateAccount(c *fiber.Ctx) error {
	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	var missing []string
	if req.BankID == 0 {
		missing = append(missing, "bank_id")
	}
	if req.AccountNumber == "" {
		missing = append(missing, "account_number")
	}
	if len(missing) > 0 {
		return helpers.ValidationError(c, "MISSING_FIELDS", missing)
	}

	var bank models.Bank
	if err := database.DB.First(&bank, req.BankID).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "BANK_NOT_FOUND")
	}

	limit := 5
	if req.PinkCardsDailyLimit != nil {
		if *req.PinkCardsDailyLimit < 0 {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"pink_cards_daily_limit"})
		}
		limit = *req.PinkCardsDailyLimit
	}

	account := models.BankAccount{
		BankID:              req.BankID,
		AccountNumber:       req.AccountNumber,
		HolderName:          req.HolderName,
		PinkCardsDailyLimit: limit,
		PinkCardsRemaining:  limit,
		LastResetDate:       time.Now(),
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "bank_account_create", map[string]any{
		"account_id": account.ID, "bank_id": account.BankID,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"account": account})
}

func UpdateAccount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var account models.BankAccount
	if err := database.DB.First(&account, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "ACCOUNT_NOT_FOUND")
	}

	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.AccountNumber != "" {
		account.AccountNumber = req.AccountNumber
	}
	if req.HolderName != "" {
		account.HolderName = req.HolderName
	}
	if req.PinkCardsDailyLimit != nil {
		if *req.PinkCardsDailyLimit < 0 {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"pink_cards_daily_limit"})
		}
		account.PinkCardsDailyLimit = *req.PinkCardsDailyLimit
		if account.PinkCardsRemaining > account.PinkCardsDailyLimit {
			account.PinkCardsRemaining = account.PinkCardsDailyLimit
		}
	}
	if err := database.DB.Save(&account).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "bank_account_update", map[string]any{
		"account_id": account.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"account": account})
}

type PinkCardsRequest struct {
	Remaining *int `json:"remaining"`
}

// SetPinkCards sets the remaining daily pink-card quota for one account.
// The value is clamp-checked against the daily limit, never silently
// adjusted.
func SetPinkCards(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var account models.BankAccount
	if err := database.DB.First(&account, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "ACCOUNT_NOT_FOUND")
	}

	var req PinkCardsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Remaining == nil {
		return helpers.ValidationError(c, "MISSING_FIELDS", []string{"remaining"})
	}
	if !account.ValidPinkRemaining(*req.Remaining) {
		return helpers.JSONError(c, fiber.StatusBadRequest, "REMAINING_OUT_OF_RANGE")
	}

	account.PinkCardsRemaining = *req.Remaining
	if err := database.DB.Save(&account).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "pink_cards_set", map[string]any{
		"account_id": account.ID, "remaining": *req.Remaining,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"account": account})
}
