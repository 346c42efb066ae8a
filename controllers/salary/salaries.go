package salary

import (
	"errors"

	"cardops/config"
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type MonthRequest struct {
	Month string `json:"month"`
}

func Calculate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req MonthRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
		}
		if !models.ValidMonth(req.Month) {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"month"})
		}

		summary, err := services.CalculateSalaries(req.Month, cfg.USDTRate)
		if err != nil {
			if errors.Is(err, services.ErrStateConflict) {
				return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_MONTH")
			}
			return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
		}

		user, _ := middlewares.CurrentUser(c)
		services.LogActivity(user.ID, "salaries_calculate", map[string]any{
			"month": req.Month,
		}, c.IP(), c.Get("User-Agent"))

		return c.JSON(fiber.Map{
			"success": true,
			"summary": fiber.Map{
				"month":                  req.Month,
				"total_employees_profit": summary.TotalProfit.InexactFloat64(),
				"total_expenses":         summary.TotalExpenses.InexactFloat64(),
				"expense_percentage":     helpers.FormatFloat(summary.ExpensePercentage.InexactFloat64(), 2),
				"calculation_base":       summary.Base,
				"base_amount":            summary.BaseAmount.InexactFloat64(),
			},
		})
	}
}

func Pay(c *fiber.Ctx) error {
	var req MonthRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if !models.ValidMonth(req.Month) {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"month"})
	}

	paid, err := services.PaySalaries(req.Month)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNothingToPay):
			return helpers.JSONError(c, fiber.StatusBadRequest, "NOTHING_TO_PAY")
		case errors.Is(err, services.ErrStateConflict):
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_MONTH")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "salaries_pay", map[string]any{
		"month": req.Month, "rows_paid": paid,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"success": true, "rows_paid": paid})
}

// List returns the month's calculation rows. Staff roles see everything;
// workers only their own row.
func List(c *fiber.Ctx) error {
	month := c.Query("month")
	user, _ := middlewares.CurrentUser(c)

	calcQuery := database.DB.Model(&models.SalaryCalculation{})
	if month != "" {
		if !models.ValidMonth(month) {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"month"})
		}
		calcQuery = calcQuery.Where("month = ?", month)
	}

	if user.Role.IsWorker() {
		var emp models.Employee
		if err := database.DB.Where("user_id = ?", user.ID).First(&emp).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusNotFound, "EMPLOYEE_NOT_FOUND")
		}
		var own []models.SalaryCalculation
		if err := calcQuery.Where("employee_id = ?", emp.ID).Find(&own).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
		}
		return c.JSON(fiber.Map{"salaries": own})
	}

	// managers see only their own cut; the full ledger is HR/CFO/admin
	if !user.Role.In(models.RoleAdmin, models.RoleCFO, models.RoleHR) {
		ownQuery := database.DB.Where("user_id = ?", user.ID)
		if month != "" {
			ownQuery = ownQuery.Where("month = ?", month)
		}
		var own []models.RoleEarning
		if err := ownQuery.Find(&own).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
		}
		return c.JSON(fiber.Map{"role_earnings": own})
	}

	var salaries []models.SalaryCalculation
	if err := calcQuery.Find(&salaries).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	earningsQuery := database.DB.Model(&models.RoleEarning{})
	if month != "" {
		earningsQuery = earningsQuery.Where("month = ?", month)
	}
	var earnings []models.RoleEarning
	if err := earningsQuery.Find(&earnings).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	var summaries []models.SalarySummary
	summaryQuery := database.DB.Model(&models.SalarySummary{})
	if month != "" {
		summaryQuery = summaryQuery.Where("month = ?", month)
	}
	if err := summaryQuery.Find(&summaries).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	return c.JSON(fiber.Map{
		"salaries":      salaries,
		"role_earnings": earnings,
		"summaries":     summaries,
	})
}
