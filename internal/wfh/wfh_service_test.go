package wfh_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/directory"
	"go-hrms/internal/domain"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/testdb"
	"go-hrms/internal/wfh"
	wfherrors "go-hrms/internal/wfh/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	users         directory.Repository
	notifications notification.Service
	svc           wfh.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t, &directory.User{}, &notification.Notification{}, &wfh.Request{})
	sqlDB, err := db.DB()
	require.NoError(t, err)

	log := zap.NewNop()
	f := &fixture{
		users:         directory.NewRepository(db),
		notifications: notification.NewService(notification.NewRepository(db), log),
	}
	f.svc = wfh.NewService(sqlDB, wfh.NewRepository(db), f.users, f.notifications, log)
	return f
}

func (f *fixture) user(t *testing.T, name, role string, managerID *uuid.UUID) *directory.User {
	t.Helper()
	u := &directory.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     uuid.NewString() + "@acme.test",
		Role:      role,
		ManagerID: managerID,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func TestWFHService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("routes to manager and notifies", func(t *testing.T) {
		f := newFixture(t)
		mgr := f.user(t, "Maya", domain.RoleManager, nil)
		emp := f.user(t, "Eli", domain.RoleEmployee, &mgr.ID)

		resp, err := f.svc.Submit(ctx, emp.ID.String(), wfh.SubmitRequest{Date: "2025-02-14", Reason: "plumber visit"})
		require.NoError(t, err)
		assert.Equal(t, wfh.StatusPending, resp.Status)
		assert.Equal(t, "2025-02-14", resp.Date)
		require.NotNil(t, resp.ManagerID)
		assert.Equal(t, mgr.ID.String(), *resp.ManagerID)

		inbox, err := f.notifications.List(ctx, mgr.ID.String(), false)
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "New WFH request from Eli for 2025-02-14", inbox[0].Message)
		assert.Equal(t, notification.TypeInfo, inbox[0].Type)

		routed, err := f.svc.ListForManager(ctx, mgr.ID.String(), wfh.StatusPending)
		require.NoError(t, err)
		require.Len(t, routed, 1)
		assert.Equal(t, resp.ID, routed[0].ID)
	})

	t.Run("same day twice conflicts until rejected", func(t *testing.T) {
		f := newFixture(t)
		mgr := f.user(t, "Maya", domain.RoleManager, nil)
		emp := f.user(t, "Eli", domain.RoleEmployee, &mgr.ID)
		req := wfh.SubmitRequest{Date: "2025-02-14", Reason: "deliveries"}

		first, err := f.svc.Submit(ctx, emp.ID.String(), req)
		require.NoError(t, err)

		_, err = f.svc.Submit(ctx, emp.ID.String(), req)
		assert.ErrorIs(t, err, wfherrors.ErrAlreadyRequested)

		_, err = f.svc.Decide(ctx, mgr.ID.String(), first.ID, wfh.DecideRequest{Decision: wfh.DecisionReject})
		require.NoError(t, err)

		_, err = f.svc.Submit(ctx, emp.ID.String(), req)
		assert.NoError(t, err)
	})

	t.Run("managers cannot submit", func(t *testing.T) {
		f := newFixture(t)
		mgr := f.user(t, "Maya", domain.RoleManager, nil)

		_, err := f.svc.Submit(ctx, mgr.ID.String(), wfh.SubmitRequest{Date: "2025-02-14", Reason: "x"})
		assert.ErrorIs(t, err, wfherrors.ErrManagerCannotSubmit)

		mine, err := f.svc.ListMine(ctx, mgr.ID.String())
		require.NoError(t, err)
		assert.Empty(t, mine)
	})

	t.Run("bad input", func(t *testing.T) {
		f := newFixture(t)
		emp := f.user(t, "Eli", domain.RoleEmployee, nil)

		_, err := f.svc.Submit(ctx, "nope", wfh.SubmitRequest{Date: "2025-02-14", Reason: "x"})
		assert.ErrorIs(t, err, wfherrors.ErrInvalidEmployeeID)

		_, err = f.svc.Submit(ctx, emp.ID.String(), wfh.SubmitRequest{Date: "14/02/2025", Reason: "x"})
		assert.ErrorIs(t, err, wfherrors.ErrInvalidDate)

		_, err = f.svc.Submit(ctx, uuid.NewString(), wfh.SubmitRequest{Date: "2025-02-14", Reason: "x"})
		assert.ErrorIs(t, err, wfherrors.ErrEmployeeNotFound)
	})
}

func TestWFHService_Decide(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	mgr := f.user(t, "Maya", domain.RoleManager, nil)
	other := f.user(t, "Otto", domain.RoleManager, nil)
	emp := f.user(t, "Eli", domain.RoleEmployee, &mgr.ID)

	req, err := f.svc.Submit(ctx, emp.ID.String(), wfh.SubmitRequest{Date: "2025-03-07", Reason: "focus day"})
	require.NoError(t, err)

	_, err = f.svc.Decide(ctx, other.ID.String(), req.ID, wfh.DecideRequest{Decision: wfh.DecisionApprove})
	assert.ErrorIs(t, err, wfherrors.ErrNotAssignedManager)

	_, err = f.svc.Decide(ctx, mgr.ID.String(), req.ID, wfh.DecideRequest{Decision: "maybe"})
	assert.ErrorIs(t, err, wfherrors.ErrInvalidDecision)

	_, err = f.svc.Decide(ctx, mgr.ID.String(), uuid.NewString(), wfh.DecideRequest{Decision: wfh.DecisionApprove})
	assert.ErrorIs(t, err, wfherrors.ErrRequestNotFound)

	comment := "enjoy"
	decided, err := f.svc.Decide(ctx, mgr.ID.String(), req.ID, wfh.DecideRequest{Decision: wfh.DecisionApprove, Comments: &comment})
	require.NoError(t, err)
	assert.Equal(t, wfh.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, mgr.ID.String(), *decided.DecidedBy)

	_, err = f.svc.Decide(ctx, mgr.ID.String(), req.ID, wfh.DecideRequest{Decision: wfh.DecisionReject})
	assert.ErrorIs(t, err, wfherrors.ErrInvalidStatusTransition)

	inbox, err := f.notifications.List(ctx, emp.ID.String(), false)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Your work from home request for 2025-03-07 has been approved", inbox[0].Message)
	assert.Equal(t, notification.TypeSuccess, inbox[0].Type)

	pending, err := f.svc.ListForManager(ctx, mgr.ID.String(), wfh.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = f.svc.ListForManager(ctx, mgr.ID.String(), "archived")
	assert.ErrorIs(t, err, wfherrors.ErrInvalidStatusFilter)
}
