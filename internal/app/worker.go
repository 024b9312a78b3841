package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/directory"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/notification"
	"go-hrms/internal/returntowork"
	"go-hrms/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker runs the outbox publisher and the return-to-work scanner until
// SIGINT or SIGTERM. Without KAFKA_BROKER only the scanner runs.
func RunWorker(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	gormDB, sqlDB, err := OpenDatabase(cfg.DB, log)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	if cfg.Kafka.Broker != "" {
		kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Kafka.MaxRetries)
		if err != nil {
			return err
		}
		defer kafkaWriter.Close()

		outboxRepo := kafka.NewOutboxRepository(gormDB)
		wg.Add(1)
		go func() {
			defer wg.Done()
			producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Schedule.OutboxPollInterval)
		}()
	} else {
		log.Warn("KAFKA_BROKER not set, outbox publisher disabled")
	}

	leaveRepo := leave.NewRepository(gormDB)
	userRepo := directory.NewRepository(gormDB)
	notificationService := notification.NewService(notification.NewRepository(gormDB), logger)
	scanner := returntowork.NewService(
		sqlDB,
		returntowork.NewRepository(gormDB),
		leaveRepo,
		userRepo,
		notificationService,
		returnToWorkSettings(cfg.Schedule),
		logger,
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		returntowork.RunScanner(ctx, scanner, cfg.Schedule.ReturnToWorkInterval, logger)
	}()

	waitForSignal()
	log.Info("worker shutting down")
	cancel()
	waitWithTimeout(&wg, 10*time.Second, log)

	return nil
}

func waitForSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}

func waitWithTimeout(wg *sync.WaitGroup, timeout time.Duration, log *zap.Logger) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		log.Warn("background loops did not stop in time", zap.Duration("timeout", timeout))
	}
}

func returnToWorkSettings(cfg config.ScheduleConfig) returntowork.Settings {
	return returntowork.Settings{
		DaysInAdvance: cfg.ReturnToWorkDays,
		NotifyManager: cfg.ReturnToWorkNotifyManager,
		NotifyIT:      cfg.ReturnToWorkNotifyIT,
		NotifyHR:      cfg.ReturnToWorkNotifyHR,
		ITAddress:     cfg.ReturnToWorkITAddress,
		HRAddress:     cfg.ReturnToWorkHRAddress,
	}
}
