package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	failKey  string
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failKey {
			return errors.New("broker unavailable")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		ev := kafka.OutboxEvent{
			ID:            "ob-1",
			RequestID:     "req-1",
			AggregateType: "leave_request",
			AggregateID:   "leave-1",
			EventType:     "leave_submitted",
			Topic:         "hr.leave.lifecycle.v1",
			Payload:       []byte(`{}`),
		}
		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{ev}, nil)
		repo.EXPECT().MarkSent(ctx, "ob-1").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, logger)

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		if assert.Len(t, writer.messages, 1) {
			msg := writer.messages[0]
			assert.Equal(t, "hr.leave.lifecycle.v1", msg.Topic)
			assert.Equal(t, "leave-1", string(msg.Key))
			assert.Len(t, msg.Headers, 3)
			assert.Equal(t, "request_id", msg.Headers[2].Key)
		}
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failKey: "leave-bad"}

		bad := kafka.OutboxEvent{ID: "ob-bad", AggregateID: "leave-bad", Topic: "t", Payload: []byte(`{}`)}
		good := kafka.OutboxEvent{ID: "ob-good", AggregateID: "leave-good", Topic: "t", Payload: []byte(`{}`)}
		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{bad, good}, nil)
		repo.EXPECT().MarkFailed(ctx, "ob-bad", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "ob-good").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, logger)

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.messages, 1)
	})

	t.Run("list error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, logger)

		assert.EqualError(t, err, "db down")
	})
}
