package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/empresacafe/coffee-registry/docs"
	"github.com/empresacafe/coffee-registry/internal/api/handler"
	"github.com/empresacafe/coffee-registry/internal/api/middleware"
	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/service"
	mongodb "github.com/empresacafe/coffee-registry/internal/infrastructure/db/mongo"
	redisinfra "github.com/empresacafe/coffee-registry/internal/infrastructure/db/redis"
	"github.com/empresacafe/coffee-registry/internal/infrastructure/http/handlers"
	"github.com/empresacafe/coffee-registry/internal/infrastructure/queue"
	"github.com/empresacafe/coffee-registry/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the audit dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coffee"))

	// --- Dependencies ---
	credRepo := mongodb.NewCredentialRepository(db)
	issuer, err := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, nil, err
	}
	twoFactor := service.NewTwoFactor(cfg.TOTPIssuer)
	replayGuard := redisinfra.NewReplayGuard(rdb)

	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)

	authService := service.NewAuthService(credRepo, issuer, twoFactor, replayGuard, dispatcher, log)
	authHandler := handler.NewAuthHandler(authService, issuer.TTL())

	applicantService := service.NewApplicantService(mongodb.NewApplicantRepository(db), log)
	applicantHandler := handler.NewApplicantHandler(applicantService)

	employeeRepo := mongodb.NewEmployeeRepository(db)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	departmentService := service.NewDepartmentService(mongodb.NewDepartmentRepository(db), employeeRepo, log)
	departmentHandler := handler.NewDepartmentHandler(departmentService)

	authMW := middleware.Auth(issuer)
	anyRole := middleware.RBAC(credRepo, domain.RoleAdministrador, domain.RoleEmpleado)
	adminOnly := middleware.RBAC(credRepo, domain.RoleAdministrador)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Protected resource routes ---
	apiGroup := e.Group("/api", authMW)

	applicants := apiGroup.Group("/aspirantes", anyRole)
	applicants.POST("", applicantHandler.Create)
	applicants.GET("", applicantHandler.List)
	applicants.GET("/:id", applicantHandler.Get)
	applicants.PUT("/:id", applicantHandler.Update)
	applicants.DELETE("/:id", applicantHandler.Delete)

	employees := apiGroup.Group("/empleados", adminOnly)
	employees.POST("", employeeHandler.Create)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	departments := apiGroup.Group("/departamentos", adminOnly)
	departments.POST("", departmentHandler.Create)
	departments.GET("", departmentHandler.List)
	departments.GET("/:id", departmentHandler.Get)
	departments.PUT("/:id", departmentHandler.Update)
	departments.DELETE("/:id", departmentHandler.Delete)
	departments.POST("/assign", departmentHandler.Assign)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, dispatcher, nil
}
