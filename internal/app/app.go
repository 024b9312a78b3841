package app

import (
	"database/sql"
	"fmt"
	"net/http"

	"go-hrms/internal/calendar"
	"go-hrms/internal/config"
	"go-hrms/internal/directory"
	"go-hrms/internal/leave"
	"go-hrms/internal/ledger"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notification"
	"go-hrms/internal/policy"
	"go-hrms/internal/returntowork"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/wfh"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&directory.User{},
		&ledger.Balance{},
		&ledger.Entry{},
		&leave.LeaveRequest{},
		&wfh.Request{},
		&notification.Notification{},
		&kafka.OutboxEvent{},
		&returntowork.Notice{},
		&calendar.Integration{},
		&policy.Policy{},
		&policy.FAQItem{},
	}
}

// OpenDatabase connects to the configured driver and migrates the schema.
func OpenDatabase(cfg config.DBConfig, logger *zap.Logger) (*gorm.DB, *sql.DB, error) {
	var (
		gormDB *gorm.DB
		err    error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		gormDB, err = connection.OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		gormDB, err = connection.ConnectGORMWithRetry(
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			cfg.SSLMode,
			cfg.MaxRetries,
		)
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := gormDB.AutoMigrate(Models()...); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("database ready", zap.String("driver", cfg.Driver))
	return gormDB, sqlDB, nil
}

// openRedis returns nil when no address is configured; idempotency and the
// catalog cache then run without Redis.
func openRedis(cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	if cfg.Addr == "" {
		logger.Warn("REDIS_ADDR not set, idempotency and catalog cache disabled")
		return nil, nil
	}
	rdb, err := connection.ConnectRedisWithRetry(cfg.Addr, cfg.MaxRetries)
	if err != nil {
		return nil, err
	}
	logger.Info("redis ready", zap.String("addr", cfg.Addr))
	return rdb, nil
}

// BuildApp opens the infrastructure and registers every module on router.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	gormDB, sqlDB, err := OpenDatabase(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	rdb, err := openRedis(cfg.Redis, log)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		if rdb != nil {
			rdb.Close()
		}
		sqlDB.Close()
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}
	return cleanup, nil
}
