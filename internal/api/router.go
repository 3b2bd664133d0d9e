package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobdash/jobsearch-api/internal/api/handler"
	"github.com/jobdash/jobsearch-api/internal/api/middleware"
	"github.com/jobdash/jobsearch-api/internal/auth/jwks"
	"github.com/jobdash/jobsearch-api/internal/core/service"
	mongodb "github.com/jobdash/jobsearch-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobdash/jobsearch-api/internal/infrastructure/db/redis"
	"github.com/jobdash/jobsearch-api/internal/infrastructure/provider"
	"github.com/jobdash/jobsearch-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("jobsearch"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	offerRepo := mongodb.NewJobOfferRepository(db)
	recruiterRepo := mongodb.NewRecruiterRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)

	// --- Identity & privilege ---
	keys := jwks.NewCache(cfg.Clerk.JWKSURL(), log)
	profileCache := redisdb.NewProfileCache(rdb, log)
	providerClient := provider.NewClient(cfg.Clerk.APIURL, cfg.Clerk.SecretKey, profileCache, log)
	identityService := service.NewIdentityService(userRepo, providerClient, keys.Keyfunc, log)
	privilegeService := service.NewPrivilegeService(userRepo,
		service.DefaultAdminPolicies(cfg.BreakGlassEmail, cfg.AdminEmail), log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	// --- Domain services ---
	offerService := service.NewJobOfferService(offerRepo, log)
	recruiterService := service.NewRecruiterService(recruiterRepo, log)
	activityService := service.NewActivityService(activityRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, offerRepo, log)
	dashboardService := service.NewDashboardService(recruiterRepo, offerRepo, activityRepo, applicationRepo, log)
	reportService := service.NewReportService(dashboardService)
	adminService := service.NewAdminService(userRepo, offerRepo, applicationRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(reportService)
	offerHandler := handler.NewJobOfferHandler(offerService)
	recruiterHandler := handler.NewRecruiterHandler(recruiterService)
	activityHandler := handler.NewActivityHandler(activityService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	adminHandler := handler.NewAdminHandler(adminService)

	requireAuth := middleware.Auth(identityService)
	requireAdmin := middleware.AdminAuth(identityService, privilegeService, authService)

	// --- Public routes ---
	e.POST("/users", authHandler.Register)
	e.POST("/token", authHandler.Login)
	e.POST("/admin/token", authHandler.AdminLogin)

	// --- Authenticated routes ---
	me := e.Group("/users/me", requireAuth)
	me.GET("", userHandler.Me)
	me.GET("/report", userHandler.Report)

	offers := e.Group("/job_offers", requireAuth)
	offers.POST("", offerHandler.Create)
	offers.GET("", offerHandler.List)
	offers.PUT("/:id", offerHandler.Update)
	offers.DELETE("/:id", offerHandler.Delete)

	recruiters := e.Group("/recruiters", requireAuth)
	recruiters.POST("", recruiterHandler.Create)
	recruiters.GET("", recruiterHandler.List)
	recruiters.PUT("/:id", recruiterHandler.Update)
	recruiters.DELETE("/:id", recruiterHandler.Delete)

	activities := e.Group("/linkedin_activities", requireAuth)
	activities.POST("", activityHandler.Create)
	activities.GET("", activityHandler.List)
	activities.PUT("/:id", activityHandler.Update)
	activities.DELETE("/:id", activityHandler.Delete)

	applications := e.Group("/applications", requireAuth)
	applications.POST("", applicationHandler.Create)
	applications.GET("", applicationHandler.List)
	applications.PUT("/:id", applicationHandler.Update)
	applications.DELETE("/:id", applicationHandler.Delete)

	e.GET("/dashboard/stats", dashboardHandler.Stats, requireAuth)

	// --- Admin routes ---
	admin := e.Group("/admin", requireAdmin)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
