package report

import (
	"time"

	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"

	"github.com/gofiber/fiber/v2"
)

// EmployeeDashboard shows a worker their own month: profit recorded so
// far, submitted work entries and the latest salary row.
func EmployeeDashboard(c *fiber.Ctx) error {
	user, _ := middlewares.CurrentUser(c)
	month := time.Now().Format("2006-01")

	var emp models.Employee
	if err := database.DB.Where("user_id = ?", user.ID).First(&emp).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "EMPLOYEE_NOT_FOUND")
	}

	var monthProfit float64
	database.DB.Model(&models.Transaction{}).
		Where("employee_id = ? AND to_char(created_at, 'YYYY-MM') = ?", emp.ID, month).
		Select("COALESCE(SUM(profit), 0)").
		Scan(&monthProfit)

	var entryCount int64
	database.DB.Model(&models.WorkEntry{}).
		Where("user_id = ? AND to_char(created_at, 'YYYY-MM') = ?", user.ID, month).
		Count(&entryCount)

	var lastSalary models.SalaryCalculation
	hasSalary := database.DB.Where("employee_id = ?", emp.ID).
		Order("month DESC").First(&lastSalary).Error == nil

	resp := fiber.Map{
		"month":        month,
		"month_profit": helpers.FormatFloat(monthProfit, 2),
		"work_entries": entryCount,
	}
	if hasSalary {
		resp["last_salary"] = lastSalary
	}
	return c.JSON(fiber.Map{"dashboard": resp})
}
