package services

import (
	"time"

	"cardops/database"
	"cardops/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Commission policy constants. Worker pay is a percentage of own profit;
// staff roles take a cut of the monthly base amount.
var (
	workerRate   = decimal.NewFromFloat(0.10)
	managerShare = decimal.NewFromFloat(0.10)
	adminShare   = decimal.NewFromFloat(0.10)
	hrShare      = decimal.NewFromFloat(0.05)
	cfoShare     = decimal.NewFromFloat(0.05)
	// TODO: attribute tester earnings to the casinos each tester vetted
	// instead of a flat share of the base amount.
	testerShare      = decimal.NewFromFloat(0.10)
	bonusThreshold   = decimal.NewFromInt(200)
	performanceBonus = decimal.NewFromInt(200)
	expenseNetCutoff = decimal.NewFromInt(20)
	hundred          = decimal.NewFromInt(100)
)

// MonthSummary is the derived header for one month's calculation.
type MonthSummary struct {
	TotalProfit       decimal.Decimal
	TotalExpenses     decimal.Decimal
	ExpensePercentage decimal.Decimal
	Base              models.CalculationBase
	BaseAmount        decimal.Decimal
}

// Summarize picks gross or net: when expenses eat more than 20% of
// profit the salary base switches to profit minus expenses.
func Summarize(totalProfit, totalExpenses decimal.Decimal) MonthSummary {
	summary := MonthSummary{
		TotalProfit:   totalProfit,
		TotalExpenses: totalExpenses,
		Base:          models.BaseGross,
		BaseAmount:    totalProfit,
	}
	if totalProfit.IsPositive() {
		summary.ExpensePercentage = totalExpenses.Div(totalProfit).Mul(hundred)
	}
	if summary.ExpensePercentage.GreaterThan(expenseNetCutoff) {
		summary.Base = models.BaseNet
		summary.BaseAmount = totalProfit.Sub(totalExpenses)
	}
	return summary
}

// WorkerSalary computes one worker's pay from own monthly profit:
// 10% base, a flat 200 bonus above the 200 threshold, and a further 10%
// for the month's single-best performer.
type WorkerSalary struct {
	BaseSalary       decimal.Decimal
	PerformanceBonus decimal.Decimal
	LeaderBonus      decimal.Decimal
	IsLeader         bool
	Total            decimal.Decimal
}

func ComputeWorkerSalary(profit, maxProfit decimal.Decimal) WorkerSalary {
	s := WorkerSalary{
		BaseSalary:       profit.Mul(workerRate),
		PerformanceBonus: decimal.Zero,
		LeaderBonus:      decimal.Zero,
	}
	if profit.GreaterThan(bonusThreshold) {
		s.PerformanceBonus = performanceBonus
	}
	if maxProfit.IsPositive() && profit.Equal(maxProfit) {
		s.IsLeader = true
		s.LeaderBonus = profit.Mul(workerRate)
	}
	s.Total = s.BaseSalary.Add(s.PerformanceBonus).Add(s.LeaderBonus)
	return s
}

// RoleShare returns the cut of the base amount a staff role earns, or
// zero for worker roles (they are paid from own profit instead).
func RoleShare(role models.Role) decimal.Decimal {
	switch role {
	case models.RoleManager:
		return managerShare
	case models.RoleAdmin:
		return adminShare
	case models.RoleHR:
		return hrShare
	case models.RoleCFO:
		return cfoShare
	case models.RoleTester:
		return testerShare
	}
	return decimal.Zero
}

type employeeProfitRow struct {
	EmployeeID uint
	Profit     float64
}

// CalculateSalaries runs the full monthly calculation and upserts the
// summary, per-worker and per-role rows. Serialized per month via a
// Postgres advisory lock so concurrent calculate/pay calls for the same
// month cannot interleave.
func CalculateSalaries(month string, usdtRate float64) (*MonthSummary, error) {
	if !models.ValidMonth(month) {
		return nil, ErrStateConflict
	}

	rate := decimal.NewFromFloat(usdtRate)
	var summary MonthSummary

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "salary:"+month).Error; err != nil {
			return err
		}

		var totalProfit float64
		if err := tx.Model(&models.Transaction{}).
			Where("to_char(created_at, 'YYYY-MM') = ?", month).
			Select("COALESCE(SUM(profit), 0)").
			Scan(&totalProfit).Error; err != nil {
			return err
		}

		var totalExpenses float64
		if err := tx.Model(&models.Expense{}).
			Where("month = ?", month).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totalExpenses).Error; err != nil {
			return err
		}

		summary = Summarize(decimal.NewFromFloat(totalProfit), decimal.NewFromFloat(totalExpenses))

		header := models.SalarySummary{
			Month:                month,
			TotalEmployeesProfit: summary.TotalProfit.InexactFloat64(),
			TotalExpenses:        summary.TotalExpenses.InexactFloat64(),
			ExpensePercentage:    summary.ExpensePercentage.InexactFloat64(),
			CalculationBase:      summary.Base,
			BaseAmount:           summary.BaseAmount.InexactFloat64(),
			USDTRate:             usdtRate,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_employees_profit", "total_expenses", "expense_percentage",
				"calculation_base", "base_amount", "usdt_rate", "updated_at",
			}),
		}).Create(&header).Error; err != nil {
			return err
		}

		var profitRows []employeeProfitRow
		if err := tx.Model(&models.Transaction{}).
			Where("to_char(created_at, 'YYYY-MM') = ?", month).
			Select("employee_id, COALESCE(SUM(profit), 0) AS profit").
			Group("employee_id").
			Scan(&profitRows).Error; err != nil {
			return err
		}
		profits := make(map[uint]decimal.Decimal, len(profitRows))
		maxProfit := decimal.Zero
		for _, row := range profitRows {
			p := decimal.NewFromFloat(row.Profit)
			profits[row.EmployeeID] = p
			if p.GreaterThan(maxProfit) {
				maxProfit = p
			}
		}

		var employees []models.Employee
		if err := tx.Where("is_active = true").Find(&employees).Error; err != nil {
			return err
		}

		for _, emp := range employees {
			profit := profits[emp.ID]
			pay := ComputeWorkerSalary(profit, maxProfit)

			row := models.SalaryCalculation{
				EmployeeID:       emp.ID,
				Month:            month,
				EmployeeProfit:   profit.InexactFloat64(),
				BaseSalary:       pay.BaseSalary.InexactFloat64(),
				PerformanceBonus: pay.PerformanceBonus.InexactFloat64(),
				LeaderBonus:      pay.LeaderBonus.InexactFloat64(),
				IsLeader:         pay.IsLeader,
				TotalSalary:      pay.Total.InexactFloat64(),
				TotalUSDT:        pay.Total.Mul(rate).InexactFloat64(),
				Status:           models.SalaryCalculated,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "employee_id"}, {Name: "month"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"employee_profit", "base_salary", "performance_bonus",
					"leader_bonus", "is_leader", "total_salary", "total_usdt",
					"status", "paid_at", "updated_at",
				}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}

		var staff []models.User
		if err := tx.Where("is_active = true AND role IN ?", []models.Role{
			models.RoleAdmin, models.RoleCFO, models.RoleManager, models.RoleHR, models.RoleTester,
		}).Find(&staff).Error; err != nil {
			return err
		}

		for _, user := range staff {
			earnings := summary.BaseAmount.Mul(RoleShare(user.Role))
			row := models.RoleEarning{
				UserID:       user.ID,
				Role:         user.Role,
				Month:        month,
				Earnings:     earnings.InexactFloat64(),
				EarningsUSDT: earnings.Mul(rate).InexactFloat64(),
				Status:       models.SalaryCalculated,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"role", "earnings", "earnings_usdt", "status", "paid_at", "updated_at",
				}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// PaySalaries transitions every calculated row for the month to paid.
// Already-paid rows are untouched; zero eligible rows is an error.
func PaySalaries(month string) (int64, error) {
	if !models.ValidMonth(month) {
		return 0, ErrStateConflict
	}

	var paid int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "salary:"+month).Error; err != nil {
			return err
		}

		now := time.Now()
		workers := tx.Model(&models.SalaryCalculation{}).
			Where("month = ? AND status = ?", month, models.SalaryCalculated).
			Updates(map[string]any{"status": models.SalaryPaid, "paid_at": now})
		if workers.Error != nil {
			return workers.Error
		}

		staff := tx.Model(&models.RoleEarning{}).
			Where("month = ? AND status = ?", month, models.SalaryCalculated).
			Updates(map[string]any{"status": models.SalaryPaid, "paid_at": now})
		if staff.Error != nil {
			return staff.Error
		}

		paid = workers.RowsAffected + staff.RowsAffected
		if paid == 0 {
			return ErrNothingToPay
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return paid, nil
}
