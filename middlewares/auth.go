package middlewares

import (
	"strings"

	"cardops/config"
	"cardops/database"
	"cardops/helpers"
	"cardops/models"

	"github.com/gofiber/fiber/v2"
)

// TokenFromRequest pulls the bearer credential from the auth-token cookie
// or the Authorization header; both carry the same JWT.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("auth-token"); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// Protected verifies the token, re-fetches the user row and rejects
// inactive accounts. The loaded user is stored in c.Locals for handlers.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := helpers.VerifyToken(cfg.JWTSecret, TokenFromRequest(c))
		if err != nil {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED")
		}

		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED")
		}
		if !user.IsActive {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "ACCOUNT_DEACTIVATED")
		}

		c.Locals("currentUser", user)
		c.Locals("sessionSID", claims.SID)
		return c.Next()
	}
}

// RequireRoles gates a route group on a static allow-list.
func RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED")
		}
		if !user.Role.In(roles...) {
			return helpers.JSONError(c, fiber.StatusForbidden, "FORBIDDEN")
		}
		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("currentUser").(models.User)
	return user, ok
}

func SessionSID(c *fiber.Ctx) string {
	sid, _ := c.Locals("sessionSID").(string)
	return sid
}
