package jobs

import (
	"time"

	"cardops/database"
	"cardops/models"
	"cardops/task"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StartScheduler wires the recurring background jobs: the midnight
// pink-card quota rollover and the hourly session sweep.
func StartScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 0 * * *", ResetPinkCardCounters); err != nil {
		log.WithError(err).Fatal("schedule pink card reset")
	}
	if _, err := c.AddFunc("0 * * * *", task.CleanupExpiredSessions); err != nil {
		log.WithError(err).Fatal("schedule session cleanup")
	}

	c.Start()
	return c
}

// ResetPinkCardCounters restores every account's remaining daily quota
// to its limit and stamps the reset date.
func ResetPinkCardCounters() {
	res := database.DB.Model(&models.BankAccount{}).
		Where("1 = 1").
		Updates(map[string]any{
			"pink_cards_remaining": gorm.Expr("pink_cards_daily_limit"),
			"last_reset_date":      time.Now(),
		})
	if res.Error != nil {
		log.WithError(res.Error).Error("pink card counter reset failed")
		return
	}
	log.WithField("accounts", res.RowsAffected).Info("pink card counters reset")
}
