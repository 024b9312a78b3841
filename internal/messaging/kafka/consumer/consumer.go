package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-hrms/internal/calendar"
	"go-hrms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const syncAttempts = 3

var syncRetryDelay = 2 * time.Second

// MessageReader is the subset of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader MessageReader,
	calendarService calendar.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		handleLeaveLifecycle(ctx, msg, calendarService, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
		}
	}
}

// handleLeaveLifecycle never blocks the partition: the message is committed
// afterwards whatever happens, so a sync that still fails after syncAttempts
// is logged and dropped.
func handleLeaveLifecycle(ctx context.Context, msg kafkago.Message, calendarService calendar.Service, log *zap.Logger) {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		log.Error("decode leave lifecycle envelope failed", zap.Error(err))
		return
	}

	if envelope.EventType != events.EventLeaveDecided {
		log.Debug("leave lifecycle event ignored", zap.String("event_type", envelope.EventType))
		return
	}

	var event events.LeaveDecidedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave_decided event failed", zap.Error(err))
		return
	}

	for attempt := 1; ; attempt++ {
		synced, err := calendarService.SyncApprovedLeave(ctx, event)
		if err == nil {
			log.Info("leave_decided event handled",
				zap.String("leave_id", event.LeaveID),
				zap.String("status", event.Status),
				zap.Int64("integrations_synced", synced),
			)
			return
		}

		log.Warn("calendar sync for leave failed",
			zap.String("leave_id", event.LeaveID),
			zap.String("employee_id", event.EmployeeID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt >= syncAttempts {
			log.Error("calendar sync for leave abandoned",
				zap.String("leave_id", event.LeaveID),
				zap.Int("attempts", attempt),
			)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(syncRetryDelay * time.Duration(attempt)):
		}
	}
}
