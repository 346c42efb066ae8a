package employee

import (
	"errors"
	"time"

	"cardops/helpers"
	"cardops/middlewares"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type FireRequest struct {
	Reason         string `json:"reason"`
	LastWorkingDay string `json:"last_working_day"`
	BlockIPs       bool   `json:"block_ips"`
	RevokeCards    bool   `json:"revoke_cards"`
	ArchiveData    bool   `json:"archive_data"`
}

func FireEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var req FireRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Reason == "" {
		return helpers.ValidationError(c, "MISSING_FIELDS", []string{"reason"})
	}

	opts := services.FireOptions{
		Reason:      req.Reason,
		BlockIPs:    req.BlockIPs,
		RevokeCards: req.RevokeCards,
		ArchiveData: req.ArchiveData,
	}
	if req.LastWorkingDay != "" {
		day, err := time.Parse("2006-01-02", req.LastWorkingDay)
		if err != nil {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"last_working_day"})
		}
		opts.LastWorkingDay = &day
	}

	actor, _ := middlewares.CurrentUser(c)
	result, err := services.FireEmployee(actor, uint(id), opts)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return helpers.JSONError(c, fiber.StatusNotFound, "EMPLOYEE_NOT_FOUND")
		case errors.Is(err, services.ErrAlreadyFired):
			return helpers.JSONError(c, fiber.StatusBadRequest, "EMPLOYEE_ALREADY_FIRED")
		case errors.Is(err, services.ErrForbidden):
			return helpers.JSONError(c, fiber.StatusForbidden, "FORBIDDEN")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	services.LogActivity(actor.ID, "employee_fire", map[string]any{
		"employee_id":   id,
		"reason":        req.Reason,
		"ips_blocked":   result.IPsBlocked,
		"cards_revoked": result.CardsRevoked,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{
		"success":       true,
		"ips_blocked":   result.IPsBlocked,
		"cards_revoked": result.CardsRevoked,
	})
}
