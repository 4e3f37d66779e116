package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/gestion-pyme/internal/application/auth"
	appdashboard "github.com/jhoicas/gestion-pyme/internal/application/dashboard"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain/dashboard"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DashboardUC  *appdashboard.DashboardUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	InvoiceUC    *usecase.InvoiceUseCase
	TimeEntryUC  *usecase.TimeEntryUseCase
	ComplianceUC *usecase.ComplianceUseCase
	JWTSecret    string
}

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name           string
	AllowedOrigins []string
	Logger         *logger.Logger
}

// NewApp construye la aplicación Fiber con el middleware común y todas las rutas.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: LocalRequestID}))
	app.Use(RequestLogger(cfg.Logger))
	app.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}

func corsConfig(origins []string) cors.Config {
	allow := strings.Join(origins, ",")
	if allow == "" {
		allow = "*"
	}
	return cors.Config{
		AllowOrigins:  allow,
		AllowMethods:  "GET,POST,PATCH,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: "Content-Disposition,X-Request-ID",
		// con comodín el navegador rechaza credenciales
		AllowCredentials: allow != "*",
		MaxAge:           600,
	}
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin.String()))
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)

	// Dashboard (cualquier rol autenticado)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetView)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/dashboard/report", dashboardHandler.GetReport)

	// Personal
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	protected.Get("/employees", RequireAccess(dashboard.TargetPersonnel), employeeHandler.List)
	protected.Get("/employees/:id", RequireAccess(dashboard.TargetPersonnel), employeeHandler.GetByID)
	protected.Post("/employees", RequireAccess(dashboard.TargetNewEmployee), employeeHandler.Create)
	protected.Patch("/employees/:id/status", RequireAccess(dashboard.TargetNewEmployee), employeeHandler.UpdateStatus)

	// Facturación
	invoices := protected.Group("/invoices", RequireAccess(dashboard.TargetAccounting))
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)

	// Asistencia
	timeHandler := NewTimeEntryHandler(deps.TimeEntryUC)
	protected.Get("/time-entries", RequireAccess(dashboard.TargetTimeTracking), timeHandler.List)
	protected.Post("/time-entries", RequireAccess(dashboard.TargetTimeEntry, dashboard.TargetTimeTracking), timeHandler.Record)

	// Cumplimiento legal
	compliance := protected.Group("/compliance", RequireAccess(dashboard.TargetCompliance))
	complianceHandler := NewComplianceHandler(deps.ComplianceUC)
	compliance.Get("/", complianceHandler.List)
	compliance.Patch("/:id", complianceHandler.UpdateStatus)
}
