package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/gestion-pyme/docs"
	"github.com/jhoicas/gestion-pyme/internal/application/auth"
	appdashboard "github.com/jhoicas/gestion-pyme/internal/application/dashboard"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	infrapdf "github.com/jhoicas/gestion-pyme/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-pyme/internal/interfaces/http"
	"github.com/jhoicas/gestion-pyme/pkg/config"
	"github.com/jhoicas/gestion-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	timeEntryRepo := postgres.NewTimeEntryRepository(pool)
	complianceRepo := postgres.NewComplianceRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	}, log)

	// PDF: reporte imprimible del dashboard
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	dashboardUC := appdashboard.NewDashboardUseCase(statsRepo, pdfGenerator)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	}, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		EmployeeUC:   usecase.NewEmployeeUseCase(employeeRepo),
		InvoiceUC:    usecase.NewInvoiceUseCase(invoiceRepo),
		TimeEntryUC:  usecase.NewTimeEntryUseCase(timeEntryRepo, employeeRepo),
		ComplianceUC: usecase.NewComplianceUseCase(complianceRepo),
		JWTSecret:    cfg.JWT.Secret,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "Gestión PYME API",
	}))

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
