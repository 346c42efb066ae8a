package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is append-only; rows are never updated or deleted.
type ActivityLog struct {
	gorm.Model

	UserID    uint           `gorm:"index" json:"user_id"`
	Action    string         `gorm:"size:64;index" json:"action"`
	Details   datatypes.JSON `json:"details"`
	IP        string         `gorm:"size:45" json:"ip"`
	UserAgent string         `gorm:"size:255" json:"user_agent"`
}

type BlockedIP struct {
	gorm.Model

	IP         string `gorm:"uniqueIndex;size:45" json:"ip"`
	Reason     string `gorm:"size:255" json:"reason"`
	BlockedBy  uint   `json:"blocked_by"`
	EmployeeID *uint  `gorm:"index" json:"employee_id,omitempty"`
}
