package models

import (
	"gorm.io/gorm"
)

type Casino struct {
	gorm.Model

	Name     string `gorm:"uniqueIndex;size:128" json:"name"`
	URL      string `gorm:"size:255" json:"url"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

type TestSiteStatus string

const (
	TestSiteActive     TestSiteStatus = "active"
	TestSiteProcessing TestSiteStatus = "processing"
	TestSiteTesting    TestSiteStatus = "testing"
)

func (s TestSiteStatus) Valid() bool {
	return s == TestSiteActive || s == TestSiteProcessing || s == TestSiteTesting
}

// TestSite is a vetting record: a tester working through a casino before
// it is opened up to the rest of the workforce.
type TestSite struct {
	gorm.Model

	CasinoID uint           `gorm:"index" json:"casino_id"`
	Casino   Casino         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TesterID uint           `gorm:"index" json:"tester_id"`
	Status   TestSiteStatus `gorm:"size:16;index;default:testing" json:"status"`
	Notes    string         `gorm:"size:512" json:"notes"`
}
