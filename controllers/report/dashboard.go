package report

import (
	"time"

	"cardops/database"
	"cardops/helpers"
	"cardops/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the headline counters for the back-office landing
// page.
func Dashboard(c *fiber.Ctx) error {
	var (
		activeEmployees int64
		totalCasinos    int64
		pendingTrx      int64
	)
	database.DB.Model(&models.Employee{}).Where("is_active = true").Count(&activeEmployees)
	database.DB.Model(&models.Casino{}).Where("is_active = true").Count(&totalCasinos)
	database.DB.Model(&models.Transaction{}).Where("status = ?", models.TransactionPending).Count(&pendingTrx)

	type statusCount struct {
		Status models.CardStatus
		Count  int64
	}
	var cardCounts []statusCount
	database.DB.Model(&models.Card{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&cardCounts)
	cardsByStatus := make(map[models.CardStatus]int64, len(cardCounts))
	for _, row := range cardCounts {
		cardsByStatus[row.Status] = row.Count
	}

	month := time.Now().Format("2006-01")
	var monthProfit float64
	if err := database.DB.Model(&models.Transaction{}).
		Where("to_char(created_at, 'YYYY-MM') = ?", month).
		Select("COALESCE(SUM(profit), 0)").
		Scan(&monthProfit).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	return c.JSON(fiber.Map{
		"dashboard": fiber.Map{
			"active_employees":     activeEmployees,
			"casinos":              totalCasinos,
			"pending_transactions": pendingTrx,
			"cards_by_status":      cardsByStatus,
			"month":                month,
			"month_profit":         helpers.FormatFloat(monthProfit, 2),
		},
	})
}
