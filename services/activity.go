package services

import (
	"encoding/json"

	"cardops/database"
	"cardops/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// LogActivity appends one audit row. Best-effort: a failed write is logged
// server-side and never surfaces to the caller.
func LogActivity(userID uint, action string, details map[string]any, ip, userAgent string) {
	payload, err := json.Marshal(details)
	if err != nil {
		log.WithError(err).Warn("activity log: marshal details failed")
		payload = []byte("{}")
	}

	entry := models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   datatypes.JSON(payload),
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.WithError(err).WithField("action", action).Warn("activity log: write failed")
	}
}
