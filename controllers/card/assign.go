package card

import (
	"errors"

	"cardops/helpers"
	"cardops/middlewares"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type AssignRequest struct {
	CardIDs    []uint `json:"card_ids"`
	EmployeeID uint   `json:"employee_id"`
	CasinoID   uint   `json:"casino_id"`
}

func AssignCards(c *fiber.Ctx) error {
	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	var missing []string
	if len(req.CardIDs) == 0 {
		missing = append(missing, "card_ids")
	}
	if req.EmployeeID == 0 {
		missing = append(missing, "employee_id")
	}
	if req.CasinoID == 0 {
		missing = append(missing, "casino_id")
	}
	if len(missing) > 0 {
		return helpers.ValidationError(c, "MISSING_FIELDS", missing)
	}

	cards, err := services.AssignCards(req.CardIDs, req.EmployeeID, req.CasinoID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return helpers.JSONError(c, fiber.StatusNotFound, "EMPLOYEE_CARD_OR_CASINO_NOT_FOUND")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "cards_assign", map[string]any{
		"card_ids": req.CardIDs, "employee_id": req.EmployeeID, "casino_id": req.CasinoID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"cards": cards})
}

func UnassignCard(c *fiber.Ctx) error {
	cardID := c.QueryInt("card_id")
	if cardID <= 0 {
		return helpers.ValidationError(c, "MISSING_FIELDS", []string{"card_id"})
	}

	card, err := services.UnassignCard(uint(cardID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return helpers.JSONError(c, fiber.StatusNotFound, "CARD_NOT_FOUND")
		case errors.Is(err, services.ErrStateConflict):
			return helpers.JSONError(c, fiber.StatusBadRequest, "CARD_NOT_ASSIGNED")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "card_unassign", map[string]any{
		"card_id": cardID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"card": card})
}
