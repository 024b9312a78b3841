package calendar_test

import (
	"context"
	"testing"

	"go-hrms/internal/calendar"
	calendarerrors "go-hrms/internal/calendar/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/leave"
	"go-hrms/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) calendar.Service {
	t.Helper()
	db := testdb.Open(t, &calendar.Integration{})
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return calendar.NewService(sqlDB, calendar.NewRepository(db), zap.NewNop())
}

func boolPtr(v bool) *bool { return &v }

func TestCalendarService_ConnectAndList(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	userID := uuid.NewString()

	google, err := svc.Connect(ctx, userID, calendar.ConnectRequest{Provider: "google", Email: "john@gmail.test"})
	require.NoError(t, err)
	assert.True(t, google.IsEnabled)
	assert.True(t, google.SyncLeaveRequests)
	assert.True(t, google.SyncNotifications)

	_, err = svc.Connect(ctx, userID, calendar.ConnectRequest{
		Provider: "outlook", Email: "john@outlook.test", SyncLeaveRequests: boolPtr(false),
	})
	require.NoError(t, err)

	t.Run("reconnect updates in place", func(t *testing.T) {
		require.NoError(t, svc.Disable(ctx, userID, google.ID))

		again, err := svc.Connect(ctx, userID, calendar.ConnectRequest{
			Provider: "google", Email: "john.smith@gmail.test", SyncNotifications: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, google.ID, again.ID)
		assert.True(t, again.IsEnabled)
		assert.True(t, again.SyncLeaveRequests)
		assert.False(t, again.SyncNotifications)
		assert.Equal(t, "john.smith@gmail.test", again.Email)
	})

	items, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	others, err := svc.List(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCalendarService_Disable(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	owner := uuid.NewString()

	item, err := svc.Connect(ctx, owner, calendar.ConnectRequest{Provider: "apple", Email: "a@icloud.test"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Disable(ctx, uuid.NewString(), item.ID), calendarerrors.ErrIntegrationNotFound)
	assert.ErrorIs(t, svc.Disable(ctx, owner, "bad"), calendarerrors.ErrInvalidIntegrationID)
	assert.NoError(t, svc.Disable(ctx, owner, item.ID))

	items, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.False(t, items[0].IsEnabled)
}

func TestCalendarService_SyncApprovedLeave(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	employee := uuid.NewString()

	_, err := svc.Connect(ctx, employee, calendar.ConnectRequest{Provider: "google", Email: "e@gmail.test"})
	require.NoError(t, err)
	_, err = svc.Connect(ctx, employee, calendar.ConnectRequest{Provider: "outlook", Email: "e@outlook.test", SyncLeaveRequests: boolPtr(false)})
	require.NoError(t, err)
	apple, err := svc.Connect(ctx, employee, calendar.ConnectRequest{Provider: "apple", Email: "e@icloud.test"})
	require.NoError(t, err)
	require.NoError(t, svc.Disable(ctx, employee, apple.ID))

	t.Run("rejected leave is ignored", func(t *testing.T) {
		n, err := svc.SyncApprovedLeave(ctx, events.LeaveDecidedEvent{EmployeeID: employee, Status: leave.StatusRejected})
		assert.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("approved leave stamps enabled syncing integrations", func(t *testing.T) {
		n, err := svc.SyncApprovedLeave(ctx, events.LeaveDecidedEvent{LeaveID: "l-1", EmployeeID: employee, Status: leave.StatusApproved})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		items, err := svc.List(ctx, employee)
		require.NoError(t, err)
		for _, item := range items {
			if item.Provider == calendar.ProviderGoogle {
				assert.NotNil(t, item.LastSync)
			} else {
				assert.Nil(t, item.LastSync)
			}
		}
	})

	t.Run("malformed employee id", func(t *testing.T) {
		_, err := svc.SyncApprovedLeave(ctx, events.LeaveDecidedEvent{EmployeeID: "x", Status: leave.StatusApproved})
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidUserID)
	})
}
