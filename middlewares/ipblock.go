package middlewares

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/models"

	"github.com/gofiber/fiber/v2"
)

// IPBlocklist rejects requests from deny-listed addresses before any
// authentication runs. A lookup failure lets the request through; the
// blocklist is a filter, not a gate the whole app hangs on.
func IPBlocklist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var count int64
		if err := database.DB.Model(&models.BlockedIP{}).Where("ip = ?", c.IP()).Count(&count).Error; err != nil {
			return c.Next()
		}
		if count > 0 {
			return helpers.JSONError(c, fiber.StatusForbidden, "IP_BLOCKED")
		}
		return c.Next()
	}
}
