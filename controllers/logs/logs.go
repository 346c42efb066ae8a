package logs

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

func ListLogs(c *fiber.Ctx) error {
	query := database.DB
	if userID := c.QueryInt("user_id"); userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	limit := c.QueryInt("limit")
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	offset := c.QueryInt("offset")
	if offset < 0 {
		offset = 0
	}

	var entries []models.ActivityLog
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"logs": entries})
}

func ListBlockedIPs(c *fiber.Ctx) error {
	var blocked []models.BlockedIP
	if err := database.DB.Order("created_at DESC").Find(&blocked).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"blocked_ips": blocked})
}

func DeleteBlockedIP(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var blocked models.BlockedIP
	if err := database.DB.First(&blocked, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "BLOCKED_IP_NOT_FOUND")
	}
	if err := database.DB.Unscoped().Delete(&blocked).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "blocked_ip_delete", map[string]any{
		"ip": blocked.IP,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"success": true})
}
