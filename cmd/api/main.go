package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/stock-ledger/internal/application/circulation"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/application/report"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/export"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/sqlite"
	httpRouter "github.com/tu-usuario/stock-ledger/internal/interfaces/http"
	"github.com/tu-usuario/stock-ledger/pkg/config"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
	"golang.org/x/text/language"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	store, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura de SQLite")
	}
	defer store.Close()

	db := store.DB()
	itemRepo := sqlite.NewItemRepository(db)
	txRepo := sqlite.NewStockTransactionRepository(db)
	bookRepo := sqlite.NewBookRepository(db)
	memberRepo := sqlite.NewMemberRepository(db)
	borrowRepo := sqlite.NewBorrowRecordRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	reportRepo := sqlite.NewReportRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	registerTransactionUC := inventory.NewRegisterTransactionUseCase(txRunner)
	itemUC := usecase.NewItemUseCase(itemRepo, txRepo, txRunner, registerTransactionUC)
	bookUC := usecase.NewBookUseCase(bookRepo, borrowRepo)
	memberUC := usecase.NewMemberUseCase(memberRepo, borrowRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, bookRepo)
	circulationUC := circulation.NewCirculationUseCase(txRunner, borrowRepo, cfg.Ledger)
	csvExporter := export.NewCSVExporter(language.Tag{})
	reportUC := report.NewReportUseCase(reportRepo, txRepo, csvExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:              itemUC,
		BookUC:              bookUC,
		MemberUC:            memberUC,
		CategoryUC:          categoryUC,
		RegisterTransaction: registerTransactionUC,
		CirculationUC:       circulationUC,
		ReportUC:            reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
