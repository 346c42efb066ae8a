package bank

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type BankRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func ListBanks(c *fiber.Ctx) error {
	var banks []models.Bank
	if err := database.DB.Preload("Accounts").Find(&banks).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"banks": banks})
}

func CreateBank(c *fiber.Ctx) error {
	var req BankRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Name == "" {
		return helpers.ValidationError(c, "MISSING_FIELDS", []string{"name"})
	}

	bank := models.Bank{Name: req.Name, Country: req.Country, IsActive: true}
	if err := database.DB.Create(&bank).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "bank_create", map[string]any{
		"bank_id": bank.ID, "name": bank.Name,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"bank": bank})
}

func UpdateBank(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var bank models.Bank
	if err := database.DB.First(&bank, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "BANK_NOT_FOUND")
	}

	var req BankRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Name != "" {
		bank.Name = req.Name
	}
	if req.Country != "" {
		bank.Country = req.Country
	}
	if err := database.DB.Save(&bank).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "bank_update", map[string]any{
		"bank_id": bank.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"bank": bank})
}

func DeleteBank(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var bank models.Bank
	if err := database.DB.First(&bank, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "BANK_NOT_FOUND")
	}

	var accounts int64
	database.DB.Model(&models.BankAccount{}).Where("bank_id = ?", bank.ID).Count(&accounts)
	if accounts > 0 {
		return helpers.JSONError(c, fiber.StatusBadRequest, "BANK_HAS_ACCOUNTS")
	}

	if err := database.DB.Delete(&bank).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "bank_delete", map[string]any{
		"bank_id": bank.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"success": true})
}
