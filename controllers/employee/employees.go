package employee

import (
	"errors"
	"time"

	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmployeeRequest struct {
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	FullName       string   `json:"full_name"`
	Role           string   `json:"role"`
	CommissionRate *float64 `json:"commission_rate"`
	USDTAddress    string   `json:"usdt_address"`
	USDTNetwork    string   `json:"usdt_network"`
}

// usernameTaken reports whether a create failed on the unique username
// index. Relies on gorm error translation being enabled on the
// connection.
func usernameTaken(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func ListEmployees(c *fiber.Ctx) error {
	var employees []models.Employee
	query := database.DB.Preload("User")
	if c.Query("active") == "true" {
		query = query.Where("is_active = true")
	}
	if err := query.Find(&employees).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"employees": employees})
}

// CreateEmployee makes the User row and its Employee extension in one
// transaction. Only worker roles get the extension.
func CreateEmployee(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return helpers.ValidationError(c, "MISSING_FIELDS", missing)
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleEmployee
	}
	if !role.IsWorker() {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"role"})
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "USERNAME_TAKEN")
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	rate := 0.10
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
		USDTAddress:  req.USDTAddress,
		USDTNetwork:  req.USDTNetwork,
	}
	emp := models.Employee{
		CommissionRate: rate,
		IsActive:       true,
		HiredAt:        time.Now(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		emp.UserID = user.ID
		return tx.Create(&emp).Error
	})
	if err != nil {
		// The pre-check above races with concurrent creates; the unique
		// index on username is the authority.
		if usernameTaken(err) {
			return helpers.JSONError(c, fiber.StatusBadRequest, "USERNAME_TAKEN")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	actor, _ := middlewares.CurrentUser(c)
	services.LogActivity(actor.ID, "employee_create", map[string]any{
		"employee_id": emp.ID, "username": user.Username, "role": user.Role,
	}, c.IP(), c.Get("User-Agent"))

	emp.User = user
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"employee": emp})
}

func UpdateEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var emp models.Employee
	if err := database.DB.Preload("User").First(&emp, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "EMPLOYEE_NOT_FOUND")
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	if req.CommissionRate != nil {
		emp.CommissionRate = *req.CommissionRate
	}
	if err := database.DB.Save(&emp).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	updates := map[string]any{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.USDTAddress != "" {
		updates["usdt_address"] = req.USDTAddress
	}
	if req.USDTNetwork != "" {
		updates["usdt_network"] = req.USDTNetwork
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&models.User{}).Where("id = ?", emp.UserID).
			Updates(updates).Error; err != nil {
			return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
		}
	}

	actor, _ := middlewares.CurrentUser(c)
	services.LogActivity(actor.ID, "employee_update", map[string]any{
		"employee_id": emp.ID,
	}, c.IP(), c.Get("User-Agent"))

	database.DB.Preload("User").First(&emp, emp.ID)
	return c.JSON(fiber.Map{"employee": emp})
}

// DeleteEmployee deactivates; rows referenced elsewhere are never hard
// deleted.
func DeleteEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var emp models.Employee
	if err := database.DB.First(&emp, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "EMPLOYEE_NOT_FOUND")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&emp).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", emp.UserID).
			Update("is_active", false).Error
	})
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	actor, _ := middlewares.CurrentUser(c)
	services.LogActivity(actor.ID, "employee_deactivate", map[string]any{
		"employee_id": emp.ID,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"success": true})
}
