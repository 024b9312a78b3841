package returntowork_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go-hrms/internal/returntowork"
	returntoworkerrors "go-hrms/internal/returntowork/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeService struct {
	scans  atomic.Int32
	listFn func(ctx context.Context, managerID string) ([]returntowork.NoticeResponse, error)
}

func (f *fakeService) Scan(context.Context, time.Time) (returntowork.ScanResult, error) {
	f.scans.Add(1)
	return returntowork.ScanResult{}, nil
}

func (f *fakeService) Pending(_ context.Context, managerID string, _ time.Time) ([]returntowork.UpcomingReturn, error) {
	if managerID == "" {
		return nil, returntoworkerrors.ErrInvalidManagerID
	}
	return []returntowork.UpcomingReturn{{LeaveRequestID: "l-7", ReturnDate: "2025-01-23"}}, nil
}

func (f *fakeService) ListForManager(ctx context.Context, managerID string) ([]returntowork.NoticeResponse, error) {
	return f.listFn(ctx, managerID)
}

func TestReturnToWorkHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{listFn: func(_ context.Context, managerID string) ([]returntowork.NoticeResponse, error) {
		if managerID == "" {
			return nil, returntoworkerrors.ErrInvalidManagerID
		}
		return []returntowork.NoticeResponse{{ID: "n-1"}, {ID: "n-2"}}, nil
	}}
	h := returntowork.NewHandler(svc, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/return-to-work", nil)
	c.Set("user_id_validated", "m-1")
	h.ListMine(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"n-2"`)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/return-to-work", nil)
	h.ListMine(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReturnToWorkHandler_ListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := returntowork.NewHandler(&fakeService{}, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/return-to-work/pending", nil)
	c.Set("user_id_validated", "m-1")
	h.ListPending(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"l-7"`)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/return-to-work/pending", nil)
	h.ListPending(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunScanner_StopsOnCancel(t *testing.T) {
	svc := &fakeService{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	returntowork.RunScanner(ctx, svc, time.Hour, zap.NewNop())

	assert.Equal(t, int32(1), svc.scans.Load())
}
