package database

import (
	"cardops/config"
	"cardops/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	DB = db
	log.Info("Connected to database")

	if cfg.DBAutoMigrate {
		log.Info("Starting auto-migration...")

		if err := DB.AutoMigrate(
			&models.User{},
			&models.Employee{},
			&models.EmployeeArchive{},
			&models.Bank{},
			&models.BankAccount{},
			&models.Card{},
			&models.Casino{},
			&models.TestSite{},
			&models.Transaction{},
			&models.WorkEntry{},
			&models.SalarySummary{},
			&models.SalaryCalculation{},
			&models.RoleEarning{},
			&models.Expense{},
			&models.ActivityLog{},
			&models.BlockedIP{},
			&models.Session{},
		); err != nil {
			log.Fatal("Failed to auto-migrate database: ", err)
		}

		log.Info("Auto migration completed")
	}
}
