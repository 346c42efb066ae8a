package transaction

import (
	"cardops/database"
	"cardops/helpers"
	"cardops/middlewares"
	"cardops/models"
	"cardops/services"

	"github.com/gofiber/fiber/v2"
)

type TransactionRequest struct {
	EmployeeID uint    `json:"employee_id"`
	CardID     uint    `json:"card_id"`
	CasinoID   uint    `json:"casino_id"`
	TrxType    string  `json:"trx_type"`
	Amount     float64 `json:"amount"`
	Profit     float64 `json:"profit"`
	Note       string  `json:"note"`
}

func ListTransactions(c *fiber.Ctx) error {
	query := database.DB
	if month := c.Query("month"); month != "" {
		if !models.ValidMonth(month) {
			return helpers.ValidationError(c, "INVALID_FIELDS", []string{"month"})
		}
		query = query.Where("to_char(created_at, 'YYYY-MM') = ?", month)
	}
	if employeeID := c.QueryInt("employee_id"); employeeID > 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var transactions []models.Transaction
	if err := query.Order("created_at DESC").Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(fiber.Map{"transactions": transactions})
}

func CreateTransaction(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	var missing []string
	if req.EmployeeID == 0 {
		missing = append(missing, "employee_id")
	}
	if req.CardID == 0 {
		missing = append(missing, "card_id")
	}
	if req.CasinoID == 0 {
		missing = append(missing, "casino_id")
	}
	if len(missing) > 0 {
		return helpers.ValidationError(c, "MISSING_FIELDS", missing)
	}

	trxType := models.TransactionType(req.TrxType)
	if !trxType.Valid() {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"trx_type"})
	}

	var employee models.Employee
	if err := database.DB.First(&employee, req.EmployeeID).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "EMPLOYEE_NOT_FOUND")
	}
	var card models.Card
	if err := database.DB.First(&card, req.CardID).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "CARD_NOT_FOUND")
	}
	var casino models.Casino
	if err := database.DB.First(&casino, req.CasinoID).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "CASINO_NOT_FOUND")
	}

	trx := models.Transaction{
		EmployeeID: req.EmployeeID,
		CardID:     req.CardID,
		CasinoID:   req.CasinoID,
		TrxType:    trxType,
		Amount:     req.Amount,
		Profit:     req.Profit,
		Status:     models.TransactionPending,
		Note:       req.Note,
	}
	if err := database.DB.Create(&trx).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "transaction_create", map[string]any{
		"transaction_id": trx.ID, "employee_id": trx.EmployeeID, "amount": trx.Amount,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"transaction": trx})
}

type TransactionStatusRequest struct {
	Status string `json:"status"`
}

// UpdateTransactionStatus is the only mutation allowed on a recorded
// transaction; amounts are immutable once written.
func UpdateTransactionStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_ID")
	}

	var trx models.Transaction
	if err := database.DB.First(&trx, id).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "TRANSACTION_NOT_FOUND")
	}

	var req TransactionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	status := models.TransactionStatus(req.Status)
	if !status.Valid() {
		return helpers.ValidationError(c, "INVALID_FIELDS", []string{"status"})
	}
	if !trx.Status.CanTransition(status) {
		return helpers.JSONError(c, fiber.StatusBadRequest, "TRANSACTION_FINALIZED")
	}

	trx.Status = status
	if err := database.DB.Save(&trx).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user, _ := middlewares.CurrentUser(c)
	services.LogActivity(user.ID, "transaction_status_update", map[string]any{
		"transaction_id": trx.ID, "status": trx.Status,
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"transaction": trx})
}
