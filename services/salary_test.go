package services

import (
	"testing"

	"cardops/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestSummarizeGrossWhenExpensesLow(t *testing.T) {
	// 40 of 450 is ~8.9%, well under the 20% cutoff
	s := Summarize(dec(450), dec(40))

	assert.Equal(t, models.BaseGross, s.Base)
	assert.True(t, s.BaseAmount.Equal(dec(450)), "gross base keeps full profit")
	assert.InDelta(t, 8.89, s.ExpensePercentage.InexactFloat64(), 0.01)
}

func TestSummarizeNetWhenExpensesHigh(t *testing.T) {
	// 300 of 1000 is 30%, over the cutoff: base switches to net
	s := Summarize(dec(1000), dec(300))

	assert.Equal(t, models.BaseNet, s.Base)
	assert.True(t, s.BaseAmount.Equal(dec(700)))
}

func TestSummarizeExactlyAtCutoffStaysGross(t *testing.T) {
	s := Summarize(dec(1000), dec(200))

	assert.Equal(t, models.BaseGross, s.Base)
	assert.True(t, s.BaseAmount.Equal(dec(1000)))
}

func TestSummarizeZeroProfit(t *testing.T) {
	s := Summarize(dec(0), dec(100))

	assert.True(t, s.ExpensePercentage.IsZero(), "no division by zero")
	assert.Equal(t, models.BaseGross, s.Base)
}

// The worked payroll example: employee A profit 300 (leader), employee B
// profit 150, expenses 40 on a 450 total -> gross base. A gets
// 30 + 200 + 30 = 260, B gets 15 flat.
func TestWorkedPayrollExample(t *testing.T) {
	summary := Summarize(dec(450), dec(40))
	assert.Equal(t, models.BaseGross, summary.Base)

	maxProfit := dec(300)

	a := ComputeWorkerSalary(dec(300), maxProfit)
	assert.True(t, a.IsLeader)
	assert.True(t, a.BaseSalary.Equal(dec(30)))
	assert.True(t, a.PerformanceBonus.Equal(dec(200)))
	assert.True(t, a.LeaderBonus.Equal(dec(30)))
	assert.True(t, a.Total.Equal(dec(260)))

	b := ComputeWorkerSalary(dec(150), maxProfit)
	assert.False(t, b.IsLeader)
	assert.True(t, b.BaseSalary.Equal(dec(15)))
	assert.True(t, b.PerformanceBonus.IsZero())
	assert.True(t, b.LeaderBonus.IsZero())
	assert.True(t, b.Total.Equal(dec(15)))
}

func TestPerformanceBonusThreshold(t *testing.T) {
	// exactly 200 profit does not clear the "> 200" bar
	atThreshold := ComputeWorkerSalary(dec(200), dec(500))
	assert.True(t, atThreshold.PerformanceBonus.IsZero())

	aboveThreshold := ComputeWorkerSalary(dec(200.01), dec(500))
	assert.True(t, aboveThreshold.PerformanceBonus.Equal(dec(200)))
}

func TestNoLeaderInZeroProfitMonth(t *testing.T) {
	s := ComputeWorkerSalary(dec(0), dec(0))

	assert.False(t, s.IsLeader, "a month with no profit has no leader")
	assert.True(t, s.Total.IsZero())
}

func TestLeaderTieBothGetBonus(t *testing.T) {
	first := ComputeWorkerSalary(dec(300), dec(300))
	second := ComputeWorkerSalary(dec(300), dec(300))

	assert.True(t, first.IsLeader)
	assert.True(t, second.IsLeader)
	assert.True(t, first.LeaderBonus.Equal(dec(30)))
}

func TestRoleShare(t *testing.T) {
	tests := []struct {
		role  models.Role
		share float64
	}{
		{models.RoleManager, 0.10},
		{models.RoleAdmin, 0.10},
		{models.RoleTester, 0.10},
		{models.RoleHR, 0.05},
		{models.RoleCFO, 0.05},
		{models.RoleEmployee, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.True(t, RoleShare(tt.role).Equal(dec(tt.share)))
		})
	}
}
