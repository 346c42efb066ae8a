package casino

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type TestSiteRequest struct {
	CasinoID uint   `json:"casino_id"`
	TesterID uint   `json:"tester_id"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

func ListTestSites(c *fiber.Ctx) error {
	var sites []models.TestSite
	query := database.DB.Preload("Casino")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&sites).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"test_sites": sites})
}

func CreateTestSite(c *fiber.Ctx) error {
	var req TestSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.CasinoID == 0 {
		return helpers.ValidationError(c, "MISSING_FIELDS", []string{"casino_id"})
	}

	var casino models.Casino
	if err := database.DB.First(&casino, req.CasinoID).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "CASINO_NOT_FOUND")
	}

	user, _ := middlewares.CurrentUser(c)
	testerID := req.TesterID
	if user.Role == models.RoleTester {
		testerID = user.ID
	}

	site := models.TestSite{
		CasinoID: req.CasinoID,
		TesterID: testerID,
		Status:   models.TestSiteTesting,
		Notes:    req.Notes,
	}
	if err := database.DB.Create(&site).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	services.LogActivity(user.ID, "test_site_create", map[string]any{
		"test_site_id": site.ID, "casino_id": site.CasinoID,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"test_site": site})
}

func UpdateTestSite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var site models.TestSite
	if err := database.DB.First(&site, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "TEST_SITE_NOT_FOUND")
	}

	var req TestSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Status != "" {
		status := models.TestSiteStatus(req.Status)
		if !status.Valid() {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"status"})
		}
		site.Status = status
	}
	if req.Notes != "" {
		site.Notes = req.Notes
	}
	if err := database.DB.Save(&site).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "test_site_update", map[string]any{
		"test_site_id": site.ID, "status": site.Status,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"test_site": site})
}
