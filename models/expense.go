package models

import (
	"regexp"

	"gorm.io/gorm"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonth checks the YYYY-MM bucket format used by expenses and
// salary calculations.
func ValidMonth(month string) bool {
	return monthPattern.MatchString(month)
}

type Expense struct {
	gorm.Model

	Month       string  `gorm:"size:7;index" json:"month"`
	Description string  `gorm:"size:255" json:"description"`
	Amount      float64 `json:"amount"`
	CreatedBy   uint    `gorm:"index" json:"created_by"`
}
