package services

import (
	"encoding/json"
	"time"

	"cardops/database"
	"cardops/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FireOptions struct {
	Reason         string
	LastWorkingDay *time.Time
	BlockIPs       bool
	RevokeCards    bool
	ArchiveData    bool
}

type FireResult struct {
	IPsBlocked   int `json:"ips_blocked"`
	CardsRevoked int `json:"cards_revoked"`
}

// FireEmployee runs the whole termination flow in one transaction so a
// failed sub-step cannot leave a half-terminated account behind. Only the
// trailing activity log stays best-effort.
func FireEmployee(actor models.User, employeeID uint, opts FireOptions) (*FireResult, error) {
	result := &FireResult{}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.Preload("User").First(&employee, employeeID).Error; err != nil {
			return ErrNotFound
		}
		if !employee.IsActive {
			return ErrAlreadyFired
		}
		if !actor.Role.CanFire(employee.User.Role) {
			return ErrForbidden
		}

		now := time.Now()

		if opts.ArchiveData {
			if err := archiveEmployee(tx, &employee, now); err != nil {
				return err
			}
		}

		employee.IsActive = false
		employee.FireReason = opts.Reason
		employee.FiredAt = &now
		employee.FiredBy = actor.ID
		employee.LastWorkingDay = opts.LastWorkingDay
		if err := tx.Save(&employee).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", employee.UserID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if opts.BlockIPs {
			blocked, err := blockSessionIPs(tx, &employee, actor.ID, opts.Reason)
			if err != nil {
				return err
			}
			result.IPsBlocked = blocked
		}

		if opts.RevokeCards {
			revoked, err := revokeAssignedCards(tx, &employee)
			if err != nil {
				return err
			}
			result.CardsRevoked = revoked
		}

		if err := tx.Unscoped().Where("user_id = ?", employee.UserID).
			Delete(&models.Session{}).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"employee_id":   employeeID,
		"fired_by":      actor.ID,
		"ips_blocked":   result.IPsBlocked,
		"cards_revoked": result.CardsRevoked,
	}).Info("employee terminated")

	return result, nil
}

func archiveEmployee(tx *gorm.DB, employee *models.Employee, firedAt time.Time) error {
	var totalEarnings float64
	if err := tx.Model(&models.SalaryCalculation{}).
		Where("employee_id = ?", employee.ID).
		Select("COALESCE(SUM(total_salary), 0)").
		Scan(&totalEarnings).Error; err != nil {
		return err
	}

	var lastCalc models.SalaryCalculation
	lastSalary := 0.0
	if err := tx.Where("employee_id = ?", employee.ID).
		Order("month DESC").First(&lastCalc).Error; err == nil {
		lastSalary = lastCalc.TotalSalary
	}

	snapshot, _ := json.Marshal(map[string]any{
		"commission_rate": employee.CommissionRate,
		"usdt_address":    employee.User.USDTAddress,
		"usdt_network":    employee.User.USDTNetwork,
	})

	archive := models.EmployeeArchive{
		EmployeeID:    employee.ID,
		UserID:        employee.UserID,
		Username:      employee.User.Username,
		FullName:      employee.User.FullName,
		HiredAt:       employee.HiredAt,
		FiredAt:       firedAt,
		TotalEarnings: totalEarnings,
		LastSalary:    lastSalary,
		Snapshot:      datatypes.JSON(snapshot),
	}
	return tx.Create(&archive).Error
}

func blockSessionIPs(tx *gorm.DB, employee *models.Employee, actorID uint, reason string) (int, error) {
	var ips []string
	if err := tx.Model(&models.Session{}).
		Where("user_id = ? AND ip <> ''", employee.UserID).
		Distinct().Pluck("ip", &ips).Error; err != nil {
		return 0, err
	}

	for _, ip := range ips {
		entry := models.BlockedIP{
			IP:         ip,
			Reason:     reason,
			BlockedBy:  actorID,
			EmployeeID: &employee.ID,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
			return 0, err
		}
	}
	return len(ips), nil
}

func revokeAssignedCards(tx *gorm.DB, employee *models.Employee) (int, error) {
	res := tx.Model(&models.Card{}).
		Where("assigned_to = ? AND status IN ?", employee.User.DisplayName(),
			[]models.CardStatus{models.CardStatusAssigned, models.CardStatusInProcess}).
		Updates(map[string]any{
			"status":        models.CardStatusBlocked,
			"assigned_to":   "",
			"assigned_site": "",
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
