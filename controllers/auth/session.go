package auth

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"

	"github.com/gofiber/fiber/v2"
)

// Me returns the caller identity established by the auth middleware.
func Me(c *fiber.Ctx) error {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED")
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":           user.ID,
			"username":     user.Username,
			"full_name":    user.FullName,
			"role":         user.Role,
			"usdt_address": user.USDTAddress,
			"usdt_network": user.USDTNetwork,
		},
	})
}

// Logout drops the caller's session row and clears the cookie.
func Logout(c *fiber.Ctx) error {
	if sid := middlewares.SessionSID(c); sid != "" {
		_ = database.DB.Unscoped().Where("sid = ?", sid).Delete(&models.Session{}).Error
	}

	c.ClearCookie("auth-token")
	return c.JSON(fiber.Map{"success": true})
}
