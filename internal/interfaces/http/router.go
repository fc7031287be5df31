package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/circulation"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/application/report"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC              *usecase.ItemUseCase
	BookUC              *usecase.BookUseCase
	MemberUC            *usecase.MemberUseCase
	CategoryUC          *usecase.CategoryUseCase
	RegisterTransaction *inventory.RegisterTransactionUseCase
	CirculationUC       *circulation.CirculationUseCase
	ReportUC            *report.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	reportHandler := NewReportHandler(deps.ReportUC)

	// Items (inventario)
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", reportHandler.LowStock) // antes de /:id
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Stock transactions (motor de inventario)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterTransaction)
	invGroup.Post("/transactions", inventoryHandler.RegisterTransaction)
	invGroup.Get("/transactions", reportHandler.Transactions)

	// Books (catálogo)
	books := api.Group("/books")
	bookHandler := NewBookHandler(deps.BookUC, deps.CirculationUC)
	books.Post("/", bookHandler.Create)
	books.Get("/", bookHandler.List)
	books.Get("/:id", bookHandler.GetByID)
	books.Put("/:id", bookHandler.Update)
	books.Post("/:id/status", bookHandler.ChangeStatus)
	books.Delete("/:id", bookHandler.Delete)

	// Members
	members := api.Group("/members")
	memberHandler := NewMemberHandler(deps.MemberUC)
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.List)
	members.Get("/:id", memberHandler.GetByID)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Circulation (préstamos)
	circGroup := api.Group("/circulation")
	circulationHandler := NewCirculationHandler(deps.CirculationUC)
	circGroup.Post("/issue", circulationHandler.Issue)
	circGroup.Post("/return", circulationHandler.Return)
	circGroup.Get("/loans", circulationHandler.ListLoans)
	circGroup.Get("/overdue", circulationHandler.Overdue)

	// Reports (solo lectura)
	reports := api.Group("/reports")
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/transactions", reportHandler.Transactions)
	reports.Get("/transactions.csv", reportHandler.ExportTransactions)
	reports.Get("/overdue", circulationHandler.Overdue)
}
