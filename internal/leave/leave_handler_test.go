package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	ledgererrors "go-hrms/internal/ledger/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLeaveService struct {
	SubmitFn   func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error)
	DecideFn   func(ctx context.Context, actorID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error)
	GetByIDFn  func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	ListMineFn func(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	ListMgrFn  func(ctx context.Context, managerID, status string) ([]leave.LeaveResponse, error)
	CalendarFn func(ctx context.Context, managerID string, q leave.TeamCalendarQuery) (leave.TeamCalendarResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	return f.SubmitFn(ctx, employeeID, req)
}

func (f *fakeLeaveService) Decide(ctx context.Context, actorID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return f.DecideFn(ctx, actorID, id, req)
}

func (f *fakeLeaveService) GetByID(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.GetByIDFn(ctx, actorID, id)
}

func (f *fakeLeaveService) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	return f.ListMineFn(ctx, employeeID)
}

func (f *fakeLeaveService) ListForManager(ctx context.Context, managerID, status string) ([]leave.LeaveResponse, error) {
	return f.ListMgrFn(ctx, managerID, status)
}

func (f *fakeLeaveService) TeamCalendar(ctx context.Context, managerID string, q leave.TeamCalendarQuery) (leave.TeamCalendarResponse, error) {
	return f.CalendarFn(ctx, managerID, q)
}

func newLeaveContext(method, target, body, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	c.Set("user_id_validated", userID)
	return c, w
}

func TestLeaveHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		c, w := newLeaveContext(http.MethodPost, "/leaves",
			`{"leave_type":"sick","start_date":"2025-02-10","end_date":"2025-02-11","reason":"flu"}`, userID)

		h := leave.NewHandler(&fakeLeaveService{
			SubmitFn: func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, userID, employeeID)
				assert.Equal(t, "flu", req.Reason)
				return leave.LeaveResponse{ID: "l1", Status: leave.StatusPending, Days: 2}, nil
			},
		}, zap.NewNop())
		h.Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("unknown leave type rejected by binding", func(t *testing.T) {
		c, w := newLeaveContext(http.MethodPost, "/leaves",
			`{"leave_type":"annual","start_date":"2025-02-10","end_date":"2025-02-11"}`, userID)

		leave.NewHandler(&fakeLeaveService{}, zap.NewNop()).Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("insufficient balance is 422", func(t *testing.T) {
		c, w := newLeaveContext(http.MethodPost, "/leaves",
			`{"leave_type":"vacation","start_date":"2025-02-10","end_date":"2025-03-20"}`, userID)

		h := leave.NewHandler(&fakeLeaveService{
			SubmitFn: func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, ledgererrors.ErrInsufficientBalance
			},
		}, zap.NewNop())
		h.Submit(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "INSUFFICIENT_BALANCE")
	})
}

func TestLeaveHandler_Decide(t *testing.T) {
	gin.SetMode(gin.TestMode)
	managerID := uuid.NewString()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "approved", status: http.StatusOK},
		{name: "not assigned", err: leaveerrors.ErrNotAssignedManager, status: http.StatusForbidden},
		{name: "already decided", err: leaveerrors.ErrInvalidStatusTransition, status: http.StatusConflict},
		{name: "missing", err: leaveerrors.ErrLeaveNotFound, status: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newLeaveContext(http.MethodPost, "/leaves/l1/decision", `{"decision":"approve","comments":"ok"}`, managerID)
			c.Params = gin.Params{{Key: "id", Value: "l1"}}

			h := leave.NewHandler(&fakeLeaveService{
				DecideFn: func(ctx context.Context, actorID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
					assert.Equal(t, managerID, actorID)
					assert.Equal(t, "l1", id)
					assert.Equal(t, "ok", *req.Comments)
					return leave.LeaveResponse{ID: id, Status: leave.StatusApproved}, tc.err
				},
			}, zap.NewNop())
			h.Decide(c)

			assert.Equal(t, tc.status, w.Code)
		})
	}

	t.Run("bad decision value", func(t *testing.T) {
		c, w := newLeaveContext(http.MethodPost, "/leaves/l1/decision", `{"decision":"later"}`, managerID)

		leave.NewHandler(&fakeLeaveService{}, zap.NewNop()).Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_ListRouted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	managerID := uuid.NewString()

	c, w := newLeaveContext(http.MethodGet, "/leaves/routed?status=pending", "", managerID)
	h := leave.NewHandler(&fakeLeaveService{
		ListMgrFn: func(ctx context.Context, mid, status string) ([]leave.LeaveResponse, error) {
			assert.Equal(t, managerID, mid)
			assert.Equal(t, "pending", status)
			return []leave.LeaveResponse{{ID: "a"}, {ID: "b"}}, nil
		},
	}, zap.NewNop())
	h.ListRouted(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestLeaveHandler_TeamCalendar(t *testing.T) {
	gin.SetMode(gin.TestMode)
	managerID := uuid.NewString()

	t.Run("binds filters from the query", func(t *testing.T) {
		var got leave.TeamCalendarQuery
		h := leave.NewHandler(&fakeLeaveService{
			CalendarFn: func(ctx context.Context, id string, q leave.TeamCalendarQuery) (leave.TeamCalendarResponse, error) {
				assert.Equal(t, managerID, id)
				got = q
				return leave.TeamCalendarResponse{Month: "2025-02", Events: []leave.TeamCalendarEvent{{ID: "l-1", Department: "Sales"}}}, nil
			},
		}, zap.NewNop())

		c, w := newLeaveContext(http.MethodGet, "/leaves/team-calendar?month=2025-02&department=Sales&status=approved", "", managerID)
		h.TeamCalendar(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, leave.TeamCalendarQuery{Month: "2025-02", Department: "Sales", Status: "approved"}, got)
		assert.Contains(t, w.Body.String(), `"month":"2025-02"`)
	})

	t.Run("bad month", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			CalendarFn: func(ctx context.Context, id string, q leave.TeamCalendarQuery) (leave.TeamCalendarResponse, error) {
				return leave.TeamCalendarResponse{}, leaveerrors.ErrInvalidMonth
			},
		}, zap.NewNop())

		c, w := newLeaveContext(http.MethodGet, "/leaves/team-calendar?month=feb", "", managerID)
		h.TeamCalendar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
