package consumer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/calendar"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeReader serves queued messages and cancels the context once drained.
type fakeReader struct {
	queue     []kafkago.Message
	committed []string
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, string(m.Key))
	}
	return nil
}

type fakeCalendar struct {
	calendar.Service
	synced   []events.LeaveDecidedEvent
	calls    int
	failures int
	err      error
}

func (f *fakeCalendar) SyncApprovedLeave(_ context.Context, event events.LeaveDecidedEvent) (int64, error) {
	f.calls++
	if f.err != nil && f.calls <= f.failures {
		return 0, f.err
	}
	f.synced = append(f.synced, event)
	return 1, nil
}

func message(key, value string) kafkago.Message {
	return kafkago.Message{Key: []byte(key), Value: []byte(value)}
}

func TestConsumeLeaveLifecycle(t *testing.T) {
	t.Run("routes decided events to calendar sync", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
			message("l-1", `{"event_type":"leave_submitted","leave_id":"l-1"}`),
			message("l-2", `{"event_type":"leave_decided","leave_id":"l-2","employee_id":"e-1","status":"approved"}`),
			message("bad", `{not json`),
		}}
		cal := &fakeCalendar{}

		consumer.ConsumeLeaveLifecycle(ctx, reader, cal, zap.NewNop())

		assert.Equal(t, []string{"l-1", "l-2", "bad"}, reader.committed)
		if assert.Len(t, cal.synced, 1) {
			assert.Equal(t, "l-2", cal.synced[0].LeaveID)
			assert.Equal(t, "approved", cal.synced[0].Status)
		}
	})

	t.Run("transient sync failure is retried", func(t *testing.T) {
		consumer.SetSyncRetryDelay(t, time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
			message("l-3", `{"event_type":"leave_decided","leave_id":"l-3","employee_id":"e-1","status":"approved"}`),
		}}
		cal := &fakeCalendar{err: errors.New("db down"), failures: 2}

		consumer.ConsumeLeaveLifecycle(ctx, reader, cal, zap.NewNop())

		assert.Equal(t, 3, cal.calls)
		assert.Len(t, cal.synced, 1)
		assert.Equal(t, []string{"l-3"}, reader.committed)
	})

	t.Run("sync that keeps failing is dropped after bounded attempts", func(t *testing.T) {
		consumer.SetSyncRetryDelay(t, time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
			message("l-4", `{"event_type":"leave_decided","leave_id":"l-4","employee_id":"e-1","status":"approved"}`),
			message("l-5", `{"event_type":"leave_submitted","leave_id":"l-5"}`),
		}}
		cal := &fakeCalendar{err: errors.New("db down"), failures: 100}

		consumer.ConsumeLeaveLifecycle(ctx, reader, cal, zap.NewNop())

		assert.Equal(t, 3, cal.calls)
		assert.Empty(t, cal.synced)
		assert.Equal(t, []string{"l-4", "l-5"}, reader.committed)
	})
}
