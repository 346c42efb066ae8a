package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string `gorm:"size:128" json:"-"`
	FullName     string `gorm:"size:128" json:"full_name"`
	Role         Role   `gorm:"size:16;index" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	USDTAddress string `gorm:"size:128" json:"usdt_address"`
	USDTNetwork string `gorm:"size:16" json:"usdt_network"`

	Employee *Employee `gorm:"foreignKey:UserID" json:"employee,omitempty"`
}

// DisplayName is the human-readable form written into card assignment
// fields, e.g. "Jane Doe (jdoe)".
func (u *User) DisplayName() string {
	if u.FullName == "" {
		return u.Username
	}
	return u.FullName + " (" + u.Username + ")"
}
