package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-hrms/internal/calendar"
	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer syncs decided leave to calendar integrations until SIGINT or
// SIGTERM.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, sqlDB, err := OpenDatabase(cfg.DB, log)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	calendarService := calendar.NewService(sqlDB, calendar.NewRepository(gormDB), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.LeaveLifecycleTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.ConsumeLeaveLifecycle(ctx, reader, calendarService, logger)
	}()

	waitForSignal()
	log.Info("consumer shutting down")
	cancel()
	waitWithTimeout(&wg, 10*time.Second, log)

	return nil
}
