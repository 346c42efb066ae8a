package auth

import (
	"time"

	"cardops/config"
	"cardops/database"
	"cardops/helpers"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
		}

		var missing []string
		if req.Username == "" {
			missing = append(missing, "username")
		}
		if req.Password == "" {
			missing = append(missing, "password")
		}
		if len(missing) > 0 {
			return helpers.ValidationError(c, "MISSING_FIELDS", missing)
		}

		var user models.User
		if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
		}
		if !user.IsActive || !helpers.CheckPassword(user.PasswordHash, req.Password) {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
		}

		ttl := time.Duration(cfg.TokenTTLHrs) * time.Hour
		session := models.Session{
			UserID:    user.ID,
			IP:        c.IP(),
			UserAgent: c.Get("User-Agent"),
			ExpiresAt: time.Now().Add(ttl),
		}
		if err := database.DB.Create(&session).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
		}

		token, err := helpers.SignToken(cfg.JWTSecret, &user, session.SID, ttl)
		if err != nil {
			return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
		}

		c.Cookie(&fiber.Cookie{
			Name:     "auth-token",
			Value:    token,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			Secure:   cfg.CookieSecure,
			SameSite: "Lax",
		})

		services.LogActivity(user.ID, "login", map[string]any{
			"username": user.Username,
		}, c.IP(), c.Get("User-Agent"))

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":        user.ID,
				"username":  user.Username,
				"full_name": user.FullName,
				"role":      user.Role,
			},
		})
	}
}
