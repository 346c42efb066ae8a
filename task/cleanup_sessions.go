package task

import (
	"time"

	"cardops/database"
	"cardops/models"

	log "github.com/sirupsen/logrus"
)

// CleanupExpiredSessions hard-deletes sessions past their expiry.
func CleanupExpiredSessions() {
	result := database.DB.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})

	if result.Error != nil {
		log.WithError(result.Error).Error("failed to delete expired sessions")
	} else if result.RowsAffected > 0 {
		log.WithField("sessions", result.RowsAffected).Info("expired sessions deleted")
	}
}
