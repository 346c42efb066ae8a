package models

import (
	"time"

	"gorm.io/gorm"
)

type SalaryStatus string

const (
	SalaryCalculated SalaryStatus = "calculated"
	SalaryPaid       SalaryStatus = "paid"
)

type CalculationBase string

const (
	BaseGross CalculationBase = "gross"
	BaseNet   CalculationBase = "net"
)

// SalarySummary is the monthly header row: the totals the per-person
// figures were derived from. One row per month, overwritten on recalculation.
type SalarySummary struct {
	gorm.Model

	Month                string          `gorm:"uniqueIndex;size:7" json:"month"`
	TotalEmployeesProfit float64         `json:"total_employees_profit"`
	TotalExpenses        float64         `json:"total_expenses"`
	ExpensePercentage    float64         `json:"expense_percentage"`
	CalculationBase      CalculationBase `gorm:"size:8" json:"calculation_base"`
	BaseAmount           float64         `json:"base_amount"`
	USDTRate             float64         `json:"usdt_rate"`
}

// SalaryCalculation is one worker's derived pay for one month. Keyed by
// (employee_id, month); recalculation upserts, never duplicates.
type SalaryCalculation struct {
	gorm.Model

	EmployeeID uint   `gorm:"index;uniqueIndex:idx_employee_month" json:"employee_id"`
	Month      string `gorm:"size:7;uniqueIndex:idx_employee_month" json:"month"`

	EmployeeProfit   float64 `json:"employee_profit"`
	BaseSalary       float64 `json:"base_salary"`
	PerformanceBonus float64 `json:"performance_bonus"`
	LeaderBonus      float64 `json:"leader_bonus"`
	IsLeader         bool    `json:"is_leader"`
	TotalSalary      float64 `json:"total_salary"`
	TotalUSDT        float64 `json:"total_usdt"`

	Status SalaryStatus `gorm:"size:16;index;default:calculated" json:"status"`
	PaidAt *time.Time   `json:"paid_at,omitempty"`
}

// RoleEarning is the monthly cut for non-worker roles (manager, hr, cfo,
// admin) and the flat tester share. Keyed by (user_id, month).
type RoleEarning struct {
	gorm.Model

	UserID uint   `gorm:"index;uniqueIndex:idx_user_month" json:"user_id"`
	Role   Role   `gorm:"size:16" json:"role"`
	Month  string `gorm:"size:7;uniqueIndex:idx_user_month" json:"month"`

	Earnings     float64 `json:"earnings"`
	EarningsUSDT float64 `json:"earnings_usdt"`

	Status SalaryStatus `gorm:"size:16;index;default:calculated" json:"status"`
	PaidAt *time.Time   `json:"paid_at,omitempty"`
}
