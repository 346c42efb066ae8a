package report

import (
	"time"

	"cardops/database"
	"cardops/helpers"
	"cardops/models"

	"github.com/gofiber/fiber/v2"
)

type profitByEmployee struct {
	EmployeeID uint    `json:"employee_id"`
	Username   string  `json:"username"`
	FullName   string  `json:"full_name"`
	Profit     float64 `json:"profit"`
}

type profitByCasino struct {
	CasinoID uint    `json:"casino_id"`
	Name     string  `json:"name"`
	Profit   float64 `json:"profit"`
}

// MonthlyReport: per-employee leaderboard, per-casino breakdown and the
// expense ratio for one month.
func MonthlyReport(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !models.ValidMonth(month) {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"month"})
	}

	limit := c.QueryInt("limit")
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	var leaderboard []profitByEmployee
	if err := database.DB.Model(&models.Transaction{}).
		Select("transactions.employee_id, users.username, users.full_name, COALESCE(SUM(transactions.profit), 0) AS profit").
		Joins("JOIN employees ON employees.id = transactions.employee_id").
		Joins("JOIN users ON users.id = employees.user_id").
		Where("to_char(transactions.created_at, 'YYYY-MM') = ?", month).
		Group("transactions.employee_id, users.username, users.full_name").
		Order("profit DESC").
		Limit(limit).
		Scan(&leaderboard).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	var byCasino []profitByCasino
	if err := database.DB.Model(&models.Transaction{}).
		Select("transactions.casino_id, casinos.name, COALESCE(SUM(transactions.profit), 0) AS profit").
		Joins("JOIN casinos ON casinos.id = transactions.casino_id").
		Where("to_char(transactions.created_at, 'YYYY-MM') = ?", month).
		Group("transactions.casino_id, casinos.name").
		Order("profit DESC").
		Scan(&byCasino).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	var totalProfit, totalExpenses float64
	database.DB.Model(&models.Transaction{}).
		Where("to_char(created_at, 'YYYY-MM') = ?", month).
		Select("COALESCE(SUM(profit), 0)").
		Scan(&totalProfit)
	database.DB.Model(&models.Expense{}).
		Where("month = ?", month).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalExpenses)

	expensePct := 0.0
	if totalProfit > 0 {
		expensePct = totalExpenses / totalProfit * 100
	}

	return c.JSON(fiber.Map{
		"report": fiber.Map{
			"month":              month,
			"top_employees":      leaderboard,
			"profit_by_casino":   byCasino,
			"total_profit":       helpers.FormatFloat(totalProfit, 2),
			"total_expenses":     helpers.FormatFloat(totalExpenses, 2),
			"expense_percentage": helpers.FormatFloat(expensePct, 2),
		},
	})
}
