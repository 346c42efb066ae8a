package workentry

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

// canManageOthers: who may read and edit entries they do not own.
func canManageOthers(role models.Role) bool {
	return role.In(models.RoleManager, models.RoleHR, models.RoleAdmin)
}

type WorkEntryRequest struct {
	CasinoID           uint    `json:"casino_id"`
	DepositAmount      float64 `json:"deposit_amount"`
	WithdrawalAmount   float64 `json:"withdrawal_amount"`
	CardNumber         string  `json:"card_number"`
	AccountCredentials string  `json:"account_credentials"`
	Notes              string  `json:"notes"`
}

func ListWorkEntries(c *fiber.Ctx) error {
	user, _ := middlewares.CurrentUser(c)

	query := database.DB.Preload("Casino")
	if !canManageOthers(user.Role) {
		query = query.Where("user_id = ?", user.ID)
	} else if userID := c.QueryInt("user_id"); userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	var entries []models.WorkEntry
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"work_entries": entries})
}

func CreateWorkEntry(c *fiber.Ctx) error {
	var req WorkEntryRequest
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
	entry := models.WorkEntry{
		UserID:             user.ID,
		CasinoID:           req.CasinoID,
		DepositAmount:      req.DepositAmount,
		WithdrawalAmount:   req.WithdrawalAmount,
		CardNumber:         req.CardNumber,
		AccountCredentials: req.AccountCredentials,
		WithdrawalStatus:   models.WithdrawalNew,
		Notes:              req.Notes,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	services.LogActivity(user.ID, "work_entry_create", map[string]any{
		"work_entry_id": entry.ID, "casino_id": entry.CasinoID,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"work_entry": entry})
}

func UpdateWorkEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var entry models.WorkEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "WORK_ENTRY_NOT_FOUND")
	}

	user, _ := middlewares.CurrentUser(c)
	if entry.UserID != user.ID && !canManageOthers(user.Role) {
		return helpers.JSONError(c, fiber.StatusForbidden, "FORBIDDEN")
	}

	var req WorkEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.DepositAmount != 0 {
		entry.DepositAmount = req.DepositAmount
	}
	if req.WithdrawalAmount != 0 {
		entry.WithdrawalAmount = req.WithdrawalAmount
	}
	if req.CardNumber != "" {
		entry.CardNumber = req.CardNumber
	}
	if req.AccountCredentials != "" {
		entry.AccountCredentials = req.AccountCredentials
	}
	if req.Notes != "" {
		entry.Notes = req.Notes
	}
	if err := database.DB.Save(&entry).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	services.LogActivity(user.ID, "work_entry_update", map[string]any{
		"work_entry_id": entry.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"work_entry": entry})
}

type WorkEntryStatusRequest struct {
	WithdrawalStatus string `json:"withdrawal_status"`
}

func UpdateWorkEntryStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var entry models.WorkEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "WORK_ENTRY_NOT_FOUND")
	}

	user, _ := middlewares.CurrentUser(c)
	if entry.UserID != user.ID && !canManageOthers(user.Role) {
		return helpers.JSONError(c, fiber.StatusForbidden, "FORBIDDEN")
	}

	var req WorkEntryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	status := models.WithdrawalStatus(req.WithdrawalStatus)
	if !status.Valid() {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"withdrawal_status"})
	}

	entry.WithdrawalStatus = status
	if err := database.DB.Save(&entry).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	services.LogActivity(user.ID, "work_entry_status_update", map[string]any{
		"work_entry_id": entry.ID, "withdrawal_status": entry.WithdrawalStatus,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"work_entry": entry})
}
