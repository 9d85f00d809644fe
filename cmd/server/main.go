package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/casetrack/case-management-api/internal/auth"
	"github.com/casetrack/case-management-api/internal/config"
	"github.com/casetrack/case-management-api/internal/database"
	"github.com/casetrack/case-management-api/internal/handlers"
	"github.com/casetrack/case-management-api/internal/i18n"
	"github.com/casetrack/case-management-api/internal/logger"
	"github.com/casetrack/case-management-api/internal/middleware"
	"github.com/casetrack/case-management-api/internal/repository"
	"github.com/casetrack/case-management-api/internal/services"
	"github.com/casetrack/case-management-api/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.App.LogLevel, cfg.Server.GinMode)

	gin.SetMode(cfg.Server.GinMode)

	if err := database.Connect(cfg); err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(database.GetDB()); err != nil {
		zlog.Fatal().Err(err).Msg("failed to run migrations")
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	caseRepo := repository.NewCaseRepository(db)

	tokens := token.NewService(cfg.JWT.Secret, cfg.JWT.Timeout)
	msgs := i18n.New(cfg.App.DefaultLocale)

	authService := services.NewAuthService(userRepo, tokens)
	caseService := services.NewCaseService(caseRepo)
	permService := services.NewPermissionService(caseRepo)

	authHandler := handlers.NewAuthHandler(authService, msgs)
	caseHandler := handlers.NewCaseHandler(caseService, msgs)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(zlog),
		middleware.Metrics(),
		middleware.ErrorHandler(zlog, msgs),
		middleware.Authenticate(tokens, userRepo),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Case Management API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v2")
	{
		api.POST("/auth", authHandler.Login)

		cases := api.Group("/case")
		cases.Use(middleware.RequireRole(auth.RoleStaff))
		{
			cases.GET("", caseHandler.Search)
			cases.POST("", caseHandler.Create)
			cases.GET("/:id", middleware.RequireCaseOwner(permService), caseHandler.Get)
			cases.PUT("", middleware.RequireCaseOwnerFromBody(permService), caseHandler.Update)
			cases.DELETE("/:id", middleware.RequireCaseOwner(permService), caseHandler.Delete)
		}
	}

	zlog.Info().Str("addr", cfg.Server.Addr).Msg("server starting")
	if err := r.Run(cfg.Server.Addr); err != nil {
		zlog.Fatal().Err(err).Msg("server exited")
	}
}
