package leave_test

import (
	"context"
	"sync"
	"testing"

	"go-hrms/internal/directory"
	"go-hrms/internal/domain"
	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/ledger"
	ledgererrors "go-hrms/internal/ledger/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// hrms wires the real repositories and services on an in-memory sqlite store.
type hrms struct {
	db            *gorm.DB
	directory     directory.Service
	ledger        ledger.Service
	leaves        leave.Service
	notifications notification.Service
	outbox        kafka.OutboxRepository
}

func newHRMS(t *testing.T) *hrms {
	t.Helper()
	db := testdb.Open(t,
		&directory.User{},
		&ledger.Balance{},
		&ledger.Entry{},
		&leave.LeaveRequest{},
		&notification.Notification{},
		&kafka.OutboxEvent{},
	)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	log := zap.NewNop()
	users := directory.NewRepository(db)
	ledgerSvc := ledger.NewService(ledger.NewRepository(db), log)
	notifySvc := notification.NewService(notification.NewRepository(db), log)
	outbox := kafka.NewOutboxRepository(db)

	return &hrms{
		db:            db,
		directory:     directory.NewService(sqlDB, users, ledgerSvc, log),
		ledger:        ledgerSvc,
		leaves:        leave.NewService(sqlDB, leave.NewRepository(db), users, ledgerSvc, notifySvc, outbox, log),
		notifications: notifySvc,
		outbox:        outbox,
	}
}

func (h *hrms) register(t *testing.T, name, role, department string) *directory.User {
	t.Helper()
	u, err := h.directory.Register(context.Background(), directory.NewUser{
		Name:       name,
		Email:      uuid.NewString() + "@example.com",
		Role:       role,
		Department: department,
	})
	require.NoError(t, err)
	return u
}

func (h *hrms) balance(t *testing.T, userID uuid.UUID) ledger.BalanceResponse {
	t.Helper()
	b, err := h.ledger.GetBalance(context.Background(), userID.String())
	require.NoError(t, err)
	return b
}

// committed sums days per ledger state for a user and leave type.
func (h *hrms) committed(t *testing.T, userID uuid.UUID, leaveType string) map[string]int {
	t.Helper()
	var entries []ledger.Entry
	require.NoError(t, h.db.Where("user_id = ? AND leave_type = ?", userID, leaveType).Find(&entries).Error)
	sums := map[string]int{}
	for _, e := range entries {
		sums[e.State] += e.Days
	}
	return sums
}

func TestLeaveLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("submit, approve and reject conserve the allocation", func(t *testing.T) {
		h := newHRMS(t)
		mgr := h.register(t, "Maya", domain.RoleManager, "Engineering")
		emp := h.register(t, "Eli", domain.RoleEmployee, "engineering")
		require.NotNil(t, emp.ManagerID)
		assert.Equal(t, mgr.ID, *emp.ManagerID)

		first, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeVacation, StartDate: "2025-02-10", EndDate: "2025-02-14",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, first.Days)

		second, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeVacation, StartDate: "2025-03-03", EndDate: "2025-03-05",
		})
		require.NoError(t, err)
		assert.Equal(t, 12, h.balance(t, emp.ID).Vacation.Available)

		_, err = h.leaves.Decide(ctx, mgr.ID.String(), first.ID, leave.DecideLeaveRequest{Decision: leave.DecisionApprove})
		require.NoError(t, err)
		_, err = h.leaves.Decide(ctx, mgr.ID.String(), second.ID, leave.DecideLeaveRequest{Decision: leave.DecisionReject})
		require.NoError(t, err)

		b := h.balance(t, emp.ID)
		sums := h.committed(t, emp.ID, domain.LeaveTypeVacation)
		assert.Equal(t, 15, b.Vacation.Available)
		assert.Equal(t, 5, sums[ledger.EntryStateSpent])
		assert.Equal(t, 0, sums[ledger.EntryStateHeld])
		assert.Equal(t, b.Vacation.Allocated, b.Vacation.Available+sums[ledger.EntryStateHeld]+sums[ledger.EntryStateSpent])

		mine, err := h.notifications.List(ctx, emp.ID.String(), false)
		require.NoError(t, err)
		if assert.Len(t, mine, 4) {
			assert.Equal(t, "Your leave request for 3 days has been rejected", mine[0].Message)
		}
		forMgr, err := h.notifications.List(ctx, mgr.ID.String(), false)
		require.NoError(t, err)
		assert.Len(t, forMgr, 2)

		pending, err := h.outbox.ListPending(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, pending, 4)
	})

	t.Run("no double spend", func(t *testing.T) {
		h := newHRMS(t)
		h.register(t, "Maya", domain.RoleManager, "")
		emp := h.register(t, "Eli", domain.RoleEmployee, "")

		_, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeCasual, StartDate: "2025-04-01", EndDate: "2025-04-08",
		})
		require.NoError(t, err)

		_, err = h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeCasual, StartDate: "2025-05-01", EndDate: "2025-05-03",
		})
		assert.ErrorIs(t, err, ledgererrors.ErrInsufficientBalance)

		mine, err := h.leaves.ListMine(ctx, emp.ID.String())
		require.NoError(t, err)
		assert.Len(t, mine, 1)
		assert.Equal(t, 2, h.balance(t, emp.ID).Casual.Available)
	})

	t.Run("concurrent submissions never overdraw", func(t *testing.T) {
		h := newHRMS(t)
		h.register(t, "Maya", domain.RoleManager, "")
		emp := h.register(t, "Eli", domain.RoleEmployee, "")

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			granted int
		)
		for i := 0; i < 6; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
					LeaveType: domain.LeaveTypeVacation, StartDate: "2025-06-02", EndDate: "2025-06-06",
				})
				if err == nil {
					mu.Lock()
					granted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 4, granted)
		assert.Equal(t, 0, h.balance(t, emp.ID).Vacation.Available)
	})

	t.Run("no double decision", func(t *testing.T) {
		h := newHRMS(t)
		mgr := h.register(t, "Maya", domain.RoleManager, "")
		emp := h.register(t, "Eli", domain.RoleEmployee, "")

		req, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeSick, StartDate: "2025-02-10", EndDate: "2025-02-11",
		})
		require.NoError(t, err)

		_, err = h.leaves.Decide(ctx, mgr.ID.String(), req.ID, leave.DecideLeaveRequest{Decision: leave.DecisionReject})
		require.NoError(t, err)
		_, err = h.leaves.Decide(ctx, mgr.ID.String(), req.ID, leave.DecideLeaveRequest{Decision: leave.DecisionReject})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		_, err = h.leaves.Decide(ctx, mgr.ID.String(), req.ID, leave.DecideLeaveRequest{Decision: leave.DecisionApprove})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)

		assert.Equal(t, 12, h.balance(t, emp.ID).Sick.Available)
	})

	t.Run("only the snapshotted manager decides", func(t *testing.T) {
		h := newHRMS(t)
		mgr := h.register(t, "Maya", domain.RoleManager, "Sales")
		other := h.register(t, "Otto", domain.RoleManager, "Ops")
		emp := h.register(t, "Eli", domain.RoleEmployee, "Sales")

		req, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeSick, StartDate: "2025-02-10", EndDate: "2025-02-10",
		})
		require.NoError(t, err)
		assert.Equal(t, mgr.ID.String(), *req.ManagerID)

		_, err = h.leaves.Decide(ctx, other.ID.String(), req.ID, leave.DecideLeaveRequest{Decision: leave.DecisionApprove})
		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedManager)

		routed, err := h.leaves.ListForManager(ctx, mgr.ID.String(), leave.StatusPending)
		require.NoError(t, err)
		assert.Len(t, routed, 1)
		routed, err = h.leaves.ListForManager(ctx, other.ID.String(), "")
		require.NoError(t, err)
		assert.Empty(t, routed)
	})

	t.Run("repair routes orphaned requests and is idempotent", func(t *testing.T) {
		h := newHRMS(t)
		emp := h.register(t, "Eli", domain.RoleEmployee, "Support")
		require.Nil(t, emp.ManagerID)

		req, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeSick, StartDate: "2025-02-10", EndDate: "2025-02-12",
		})
		require.NoError(t, err)
		assert.Nil(t, req.ManagerID)

		mgr := h.register(t, "Maya", domain.RoleManager, "Support")

		res, err := h.directory.RepairMissingManagers(ctx)
		require.NoError(t, err)
		assert.Equal(t, directory.RepairResult{UsersRepaired: 1, RequestsRepointed: 1}, res)

		again, err := h.directory.RepairMissingManagers(ctx)
		require.NoError(t, err)
		assert.Equal(t, directory.RepairResult{}, again)

		got, err := h.leaves.GetByID(ctx, mgr.ID.String(), req.ID)
		require.NoError(t, err)
		assert.Equal(t, mgr.ID.String(), *got.ManagerID)

		_, err = h.leaves.Decide(ctx, mgr.ID.String(), req.ID, leave.DecideLeaveRequest{Decision: leave.DecisionApprove})
		assert.NoError(t, err)

		next, err := h.leaves.Submit(ctx, emp.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeCasual, StartDate: "2025-03-03", EndDate: "2025-03-03",
		})
		require.NoError(t, err)
		require.NotNil(t, next.ManagerID)
		assert.Equal(t, mgr.ID.String(), *next.ManagerID)

		routed, err := h.leaves.ListForManager(ctx, mgr.ID.String(), leave.StatusPending)
		require.NoError(t, err)
		require.Len(t, routed, 1)
		assert.Equal(t, next.ID, routed[0].ID)
	})

	t.Run("team calendar filters by month, department and status", func(t *testing.T) {
		h := newHRMS(t)
		mgr := h.register(t, "Maya", domain.RoleManager, "Sales")
		sales := h.register(t, "Eli", domain.RoleEmployee, "Sales")
		support, err := h.directory.Register(ctx, directory.NewUser{
			Name: "Sam", Email: "sam@example.com", Role: domain.RoleEmployee, Department: "Support", ManagerID: &mgr.ID,
		})
		require.NoError(t, err)

		submit := func(u *directory.User, start, end string) leave.LeaveResponse {
			resp, err := h.leaves.Submit(ctx, u.ID.String(), leave.SubmitLeaveRequest{
				LeaveType: domain.LeaveTypeCasual, StartDate: start, EndDate: end,
			})
			require.NoError(t, err)
			return resp
		}
		spansMonths := submit(sales, "2025-01-30", "2025-02-03")
		inFeb := submit(support, "2025-02-10", "2025-02-10")
		submit(sales, "2025-03-05", "2025-03-05")

		_, err = h.leaves.Decide(ctx, mgr.ID.String(), inFeb.ID, leave.DecideLeaveRequest{Decision: leave.DecisionApprove})
		require.NoError(t, err)

		feb, err := h.leaves.TeamCalendar(ctx, mgr.ID.String(), leave.TeamCalendarQuery{Month: "2025-02", Department: "all", Status: "all"})
		require.NoError(t, err)
		assert.Equal(t, "2025-02", feb.Month)
		require.Len(t, feb.Events, 2)
		assert.Equal(t, spansMonths.ID, feb.Events[0].ID)
		assert.Equal(t, inFeb.ID, feb.Events[1].ID)
		assert.Equal(t, "Support", feb.Events[1].Department)
		assert.Equal(t, "sam@example.com", feb.Events[1].EmployeeEmail)

		bySupport, err := h.leaves.TeamCalendar(ctx, mgr.ID.String(), leave.TeamCalendarQuery{Month: "2025-02", Department: "support"})
		require.NoError(t, err)
		require.Len(t, bySupport.Events, 1)
		assert.Equal(t, inFeb.ID, bySupport.Events[0].ID)

		pending, err := h.leaves.TeamCalendar(ctx, mgr.ID.String(), leave.TeamCalendarQuery{Month: "2025-02", Status: leave.StatusPending})
		require.NoError(t, err)
		require.Len(t, pending.Events, 1)
		assert.Equal(t, spansMonths.ID, pending.Events[0].ID)

		_, err = h.leaves.TeamCalendar(ctx, mgr.ID.String(), leave.TeamCalendarQuery{Month: "February"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidMonth)
	})

	t.Run("managers cannot submit and nothing is held", func(t *testing.T) {
		h := newHRMS(t)
		mgr := h.register(t, "Maya", domain.RoleManager, "Sales")
		h.register(t, "Otto", domain.RoleManager, "Sales")

		_, err := h.leaves.Submit(ctx, mgr.ID.String(), leave.SubmitLeaveRequest{
			LeaveType: domain.LeaveTypeVacation, StartDate: "2025-02-10", EndDate: "2025-02-14",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrManagerCannotSubmit)

		assert.Equal(t, 25, h.balance(t, mgr.ID).Vacation.Available)
		assert.Empty(t, h.committed(t, mgr.ID, domain.LeaveTypeVacation))

		mine, err := h.leaves.ListMine(ctx, mgr.ID.String())
		require.NoError(t, err)
		assert.Empty(t, mine)
	})

	t.Run("manager balances use the manager allotment", func(t *testing.T) {
		h := newHRMS(t)
		mgr := h.register(t, "Maya", domain.RoleManager, "")

		b := h.balance(t, mgr.ID)
		assert.Equal(t, 15, b.Sick.Allocated)
		assert.Equal(t, 12, b.Casual.Allocated)
		assert.Equal(t, 25, b.Vacation.Allocated)
	})
}
