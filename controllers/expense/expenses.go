package expense

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type ExpenseRequest struct {
	Month       string  `json:"month"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func ListExpenses(c *fiber.Ctx) error {
	query := database.DB
	if month := c.Query("month"); month != "" {
		if !models.ValidMonth(month) {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"month"})
		}
		query = query.Where("month = ?", month)
	}

	var expenses []models.Expense
	if err := query.Order("created_at DESC").Find(&expenses).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"expenses": expenses})
}

func CreateExpense(c *fiber.Ctx) error {
	var req ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	var invalid []string
	if !models.ValidMonth(req.Month) {
		invalid = append(invalid, "month")
	}
	if req.Amount <= 0 {
		invalid = append(invalid, "amount")
	}
	if len(invalid) > 0 {
		return helpers.ValidationError(c, "INVALID_FIELDS", invalid)
	}

	user, _ := middlewares.CurrentUser(c)
	expense := models.Expense{
		Month:       req.Month,
		Description: req.Description,
		Amount:      req.Amount,
		CreatedBy:   user.ID,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	services.LogActivity(user.ID, "expense_create", map[string]any{
		"expense_id": expense.ID, "month": expense.Month, "amount": expense.Amount,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"expense": expense})
}

func DeleteExpense(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "EXPENSE_NOT_FOUND")
	}
	if err := database.DB.Delete(&expense).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "expense_delete", map[string]any{
		"expense_id": expense.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"success": true})
}
