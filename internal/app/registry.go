package app

import (
	"context"
	"database/sql"

	"go-hrms/internal/assistant"
	"go-hrms/internal/auth"
	"go-hrms/internal/calendar"
	"go-hrms/internal/config"
	"go-hrms/internal/directory"
	"go-hrms/internal/leave"
	"go-hrms/internal/ledger"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notification"
	"go-hrms/internal/policy"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/returntowork"
	"go-hrms/internal/wfh"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	sqlDB *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// RBAC
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// Repositories
	userRepo := directory.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	wfhRepo := wfh.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	noticeRepo := returntowork.NewRepository(gormDB)
	calendarRepo := calendar.NewRepository(gormDB)
	policyRepo := policy.NewRepository(gormDB)

	// Services
	ledgerService := ledger.NewService(ledgerRepo, logger)
	notificationService := notification.NewService(notificationRepo, logger)
	directoryService := directory.NewService(sqlDB, userRepo, ledgerService, logger)
	leaveService := leave.NewService(sqlDB, leaveRepo, userRepo, ledgerService, notificationService, outboxRepo, logger)
	wfhService := wfh.NewService(sqlDB, wfhRepo, userRepo, notificationService, logger)
	returnToWorkService := returntowork.NewService(sqlDB, noticeRepo, leaveRepo, userRepo, notificationService, returnToWorkSettings(cfg.Schedule), logger)
	calendarService := calendar.NewService(sqlDB, calendarRepo, logger)
	policyService := policy.NewService(sqlDB, policyRepo, rdb, logger)
	assistantService := assistant.NewService(
		assistant.NewOpenAICompleter(assistant.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		}),
		ledgerService,
		leaveService,
		cfg.OpenAI.Timeout,
		logger,
	)
	authService := auth.NewService(userRepo, directoryService, auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), logger)

	if err := policyService.Seed(context.Background()); err != nil {
		return err
	}

	// Handlers
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	directoryHandler := directory.NewHandler(directoryService, logger)
	ledgerHandler := ledger.NewHandler(ledgerService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	wfhHandler := wfh.NewHandler(wfhService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	returnToWorkHandler := returntowork.NewHandler(returnToWorkService, logger)
	calendarHandler := calendar.NewHandler(calendarService, logger)
	policyHandler := policy.NewHandler(policyService, logger)
	assistantHandler := assistant.NewHandler(assistantService, logger)

	authMiddleware := middleware.AuthMiddleware(cfg.Auth.JWTSecret)
	idempotency := middleware.Idempotency(rdb, logger)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
		directory.RegisterRoutes(api, directoryHandler, rbacService, authMiddleware)
		ledger.RegisterRoutes(api, ledgerHandler, rbacService, authMiddleware)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authMiddleware, idempotency)
		wfh.RegisterRoutes(api, wfhHandler, rbacService, authMiddleware, idempotency)
		notification.RegisterRoutes(api, notificationHandler, rbacService, authMiddleware)
		returntowork.RegisterRoutes(api, returnToWorkHandler, rbacService, authMiddleware)
		calendar.RegisterRoutes(api, calendarHandler, rbacService, authMiddleware)
		policy.RegisterRoutes(api, policyHandler, rbacService, authMiddleware)
		assistant.RegisterRoutes(api, assistantHandler, rbacService, authMiddleware)
	}

	return nil
}
