package routes

import (
	"cardops/config"
	"cardops/controllers/auth"
	"cardops/controllers/bank"
	"cardops/controllers/card"
	"cardops/controllers/casino"
	"cardops/controllers/employee"
	"cardops/controllers/expense"
	"cardops/controllers/logs"
	"cardops/controllers/report"
	"cardops/controllers/salary"
	"cardops/controllers/transaction"
	"cardops/controllers/workentry"
	"cardops/middlewares"
	"cardops/models"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, cfg *config.Config) {
	app.Use(middlewares.IPBlocklist())

	app.Post("/auth/login", auth.Login(cfg))

	authed := app.Group("", middlewares.Protected(cfg))
	authed.Get("/auth/me", auth.Me)
	authed.Get("/session", auth.Me)
	authed.Post("/auth/logout", auth.Logout)

	// bank, account and card administration
	finance := middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO)
	bankRoutes := authed.Group("/banks", finance)
	bankRoutes.Get("/", bank.ListBanks)
	bankRoutes.Post("/", bank.CreateBank)
	bankRoutes.Put("/:id", bank.UpdateBank)
	bankRoutes.Delete("/:id", bank.DeleteBank)

	accountRoutes := authed.Group("/bank-accounts", finance)
	accountRoutes.Get("/", bank.ListAccounts)
	accountRoutes.Post("/", bank.CreateAccount)
	accountRoutes.Put("/:id", bank.UpdateAccount)
	accountRoutes.Put("/:id/pink-cards", bank.SetPinkCards)

	// card lifecycle: managers may read and assign, never administer
	cardAdmin := middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO)
	cardOps := middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO, models.RoleManager)
	authed.Get("/cards", cardOps, card.ListCards)
	authed.Get("/cards/:id", cardOps, card.GetCard)
	authed.Post("/cards", cardAdmin, card.CreateCard)
	authed.Put("/cards/:id", cardAdmin, card.UpdateCard)
	authed.Put("/cards/:id/status", cardOps, card.UpdateCardStatus)
	authed.Delete("/cards/:id", middlewares.RequireRoles(models.RoleAdmin), card.DeleteCard)
	authed.Post("/cards/assign", cardOps, card.AssignCards)
	authed.Delete("/cards/assign", cardOps, card.UnassignCard)

	// employees
	hrRoutes := middlewares.RequireRoles(models.RoleAdmin, models.RoleHR, models.RoleManager)
	authed.Get("/employees", hrRoutes, employee.ListEmployees)
	authed.Post("/employees", middlewares.RequireRoles(models.RoleAdmin, models.RoleHR), employee.CreateEmployee)
	authed.Put("/employees/:id", hrRoutes, employee.UpdateEmployee)
	authed.Delete("/employees/:id", middlewares.RequireRoles(models.RoleAdmin, models.RoleHR), employee.DeleteEmployee)
	authed.Post("/employees/:id/fire", hrRoutes, employee.FireEmployee)

	// casinos and vetting
	casinoWrite := middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO, models.RoleManager)
	authed.Get("/casinos", casino.ListCasinos)
	authed.Post("/casinos", casinoWrite, casino.CreateCasino)
	authed.Put("/casinos/:id", casinoWrite, casino.UpdateCasino)

	testSiteWrite := middlewares.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleTester)
	authed.Get("/test-sites", casino.ListTestSites)
	authed.Post("/test-sites", testSiteWrite, casino.CreateTestSite)
	authed.Put("/test-sites/:id", middlewares.RequireRoles(models.RoleAdmin, models.RoleManager), casino.UpdateTestSite)

	// transactions
	trxRoutes := authed.Group("/transactions", middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO, models.RoleManager))
	trxRoutes.Get("/", transaction.ListTransactions)
	trxRoutes.Post("/", transaction.CreateTransaction)
	trxRoutes.Put("/:id/status", transaction.UpdateTransactionStatus)

	// work entries: any authenticated user, ownership enforced in handlers
	authed.Get("/work-files", workentry.ListWorkEntries)
	authed.Post("/work-files", workentry.CreateWorkEntry)
	authed.Put("/work-files/:id", workentry.UpdateWorkEntry)
	authed.Put("/work-files/:id/status", workentry.UpdateWorkEntryStatus)

	// payroll
	authed.Post("/salaries/calculate", middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO, models.RoleHR), salary.Calculate(cfg))
	authed.Post("/salaries/pay", middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO), salary.Pay)
	authed.Get("/salaries", salary.List)

	// expenses
	expenseRoutes := authed.Group("/expenses", middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO))
	expenseRoutes.Get("/", expense.ListExpenses)
	expenseRoutes.Post("/", expense.CreateExpense)
	expenseRoutes.Delete("/:id", expense.DeleteExpense)

	// reporting
	reportRead := middlewares.RequireRoles(models.RoleAdmin, models.RoleCFO, models.RoleManager)
	authed.Get("/dashboard", reportRead, report.Dashboard)
	authed.Get("/reports", reportRead, report.MonthlyReport)
	authed.Get("/employee/dashboard", middlewares.RequireRoles(models.RoleEmployee, models.RoleTester), report.EmployeeDashboard)

	// audit
	adminOnly := middlewares.RequireRoles(models.RoleAdmin)
	authed.Get("/logs", adminOnly, logs.ListLogs)
	authed.Get("/blocked-ips", adminOnly, logs.ListBlockedIPs)
	authed.Delete("/blocked-ips/:id", adminOnly, logs.DeleteBlockedIP)
}
