package casino

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type CasinoRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func ListCasinos(c *fiber.Ctx) error {
	var casinos []models.Casino
	if err := database.DB.Find(&casinos).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"casinos": casinos})
}

func CreateCasino(c *fiber.Ctx) error {
	var req CasinoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Name == "" {
		return helpers.ValidationError(c, "MISSING_FIELDS", []string{"name"})
	}

	casino := models.Casino{Name: req.Name, URL: req.URL, IsActive: true}
	if err := database.DB.Create(&casino).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "casino_create", map[string]any{
		"casino_id": casino.ID, "name": casino.Name,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"casino": casino})
}

func UpdateCasino(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var casino models.Casino
	if err := database.DB.First(&casino, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "CASINO_NOT_FOUND")
	}

	var req CasinoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Name != "" {
		casino.Name = req.Name
	}
	if req.URL != "" {
		casino.URL = req.URL
	}
	if err := database.DB.Save(&casino).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "casino_update", map[string]any{
		"casino_id": casino.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"casino": casino})
}
