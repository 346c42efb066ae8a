package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model

	UserID         uint    `gorm:"uniqueIndex" json:"user_id"`
	User           User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	CommissionRate float64 `gorm:"default:0.10" json:"commission_rate"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`

	HiredAt        time.Time  `json:"hired_at"`
	LastWorkingDay *time.Time `json:"last_working_day,omitempty"`
	FireReason     string     `gorm:"size:255" json:"fire_reason,omitempty"`
	FiredAt        *time.Time `json:"fired_at,omitempty"`
	FiredBy        uint       `json:"fired_by,omitempty"`
}

// EmployeeArchive is the snapshot written during termination when the
// operator asks for archiveData.
type EmployeeArchive struct {
	gorm.Model

	EmployeeID    uint           `gorm:"index" json:"employee_id"`
	UserID        uint           `gorm:"index" json:"user_id"`
	Username      string         `gorm:"size:64" json:"username"`
	FullName      string         `gorm:"size:128" json:"full_name"`
	HiredAt       time.Time      `json:"hired_at"`
	FiredAt       time.Time      `json:"fired_at"`
	TotalEarnings float64        `json:"total_earnings"`
	LastSalary    float64        `json:"last_salary"`
	Snapshot      datatypes.JSON `json:"snapshot"`
}
