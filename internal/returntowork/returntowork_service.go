package returntowork

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-hrms/internal/directory"
	"go-hrms/internal/leave"
	"go-hrms/internal/notification"
	returntoworkerrors "go-hrms/internal/returntowork/errors"
	"go-hrms/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Settings controls the look-ahead window and who a notice goes to. Only the
// manager receives an in-app notification; the IT and HR addresses are
// recorded on the notice.
type Settings struct {
	DaysInAdvance int
	NotifyManager bool
	NotifyIT      bool
	NotifyHR      bool
	ITAddress     string
	HRAddress     string
}

func DefaultSettings() Settings {
	return Settings{
		DaysInAdvance: 2,
		NotifyManager: true,
		NotifyIT:      true,
		ITAddress:     "it@company.com",
		HRAddress:     "hr@company.com",
	}
}

func (s Settings) recipients(managerName string) []string {
	var to []string
	if s.NotifyManager {
		to = append(to, managerName)
	}
	if s.NotifyIT && s.ITAddress != "" {
		to = append(to, s.ITAddress)
	}
	if s.NotifyHR && s.HRAddress != "" {
		to = append(to, s.HRAddress)
	}
	return to
}

type Service interface {
	// Scan creates notices for approved leave ending within the look-ahead
	// window starting at today.
	Scan(ctx context.Context, today time.Time) (ScanResult, error)
	ListForManager(ctx context.Context, managerID string) ([]NoticeResponse, error)
	// Pending lists returns in the window that the next scan will announce.
	Pending(ctx context.Context, managerID string, today time.Time) ([]UpcomingReturn, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	leaves        leave.Repository
	users         directory.Repository
	notifications notification.Service
	settings      Settings
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	leaves leave.Repository,
	users directory.Repository,
	notifications notification.Service,
	settings Settings,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("returntowork.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("returntowork.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		leaves:        leaves,
		users:         users,
		notifications: notifications,
		settings:      settings,
		logger:        l,
	}
}

func (s *service) Scan(ctx context.Context, today time.Time) (ScanResult, error) {
	from, to := s.window(today)

	requests, err := s.leaves.ListApprovedEndingBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("return-to-work list approved leave failed", zap.Error(err))
		return ScanResult{}, err
	}

	result := ScanResult{Candidates: len(requests)}
	for _, req := range requests {
		created, err := s.notify(ctx, req, from)
		if err != nil {
			s.logger.Error("return-to-work notice failed",
				zap.String("leave_request_id", req.ID.String()),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	s.logger.Info("return-to-work scan finished",
		zap.String("from", from.Format(dateLayout)),
		zap.String("to", to.Format(dateLayout)),
		zap.Int("candidates", result.Candidates),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// notify creates the notice and the manager notification in one transaction.
// It reports false when the request needs no notice.
func (s *service) notify(ctx context.Context, req leave.LeaveRequest, today time.Time) (bool, error) {
	if req.ManagerID == nil {
		s.logger.Warn("return-to-work skipped, request has no manager", zap.String("leave_request_id", req.ID.String()))
		return false, nil
	}

	exists, err := s.repo.ExistsForRequest(ctx, req.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	employee, err := s.findUser(ctx, req.EmployeeID)
	if err != nil || employee == nil {
		return false, err
	}
	manager, err := s.findUser(ctx, *req.ManagerID)
	if err != nil || manager == nil {
		return false, err
	}

	returnDate := startOfDay(req.EndDate).AddDate(0, 0, 1)
	notice := &Notice{
		ID:             uuid.New(),
		LeaveRequestID: req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		EmployeeEmail:  employee.Email,
		ManagerID:      manager.ID,
		ManagerName:    manager.Name,
		LeaveType:      req.LeaveType,
		ReturnDate:     returnDate,
		NotifiedOn:     today,
		Message: fmt.Sprintf("%s is returning to work on %s after %s leave.",
			req.EmployeeName, returnDate.Format(dateLayout), req.LeaveType),
		SentTo:    s.settings.recipients(manager.Name),
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, notice); err != nil {
		if dberr.IsUniqueViolationOn(err, "leave_request_id") || dberr.IsUniqueViolationOn(err, "uq_return_to_work_request") {
			s.logger.Warn("return-to-work notice created concurrently",
				zap.String("leave_request_id", req.ID.String()),
				zap.Error(returntoworkerrors.ErrNoticeAlreadyExists),
			)
			return false, nil
		}
		return false, err
	}

	if s.settings.NotifyManager {
		if _, err := s.notifications.WithTx(tx).Emit(ctx, manager.ID, notice.Message, notification.TypeInfo); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	s.logger.Info("return-to-work notice created",
		zap.String("leave_request_id", req.ID.String()),
		zap.String("manager_id", manager.ID.String()),
		zap.String("return_date", returnDate.Format(dateLayout)),
		zap.Strings("sent_to", notice.SentTo),
	)
	return true, nil
}

// findUser returns nil without error when the user no longer exists.
func (s *service) findUser(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("return-to-work skipped, user not found", zap.String("user_id", id.String()))
		return nil, nil
	}
	return u, err
}

func (s *service) ListForManager(ctx context.Context, managerID string) ([]NoticeResponse, error) {
	id, err := uuid.Parse(managerID)
	if err != nil {
		return nil, returntoworkerrors.ErrInvalidManagerID
	}

	items, err := s.repo.ListByManager(ctx, id)
	if err != nil {
		s.logger.Error("list return-to-work notices failed", zap.Error(err))
		return nil, err
	}

	resp := make([]NoticeResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) Pending(ctx context.Context, managerID string, today time.Time) ([]UpcomingReturn, error) {
	id, err := uuid.Parse(managerID)
	if err != nil {
		return nil, returntoworkerrors.ErrInvalidManagerID
	}

	from, to := s.window(today)
	requests, err := s.leaves.ListApprovedEndingBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("return-to-work list pending failed", zap.Error(err))
		return nil, err
	}

	items := make([]UpcomingReturn, 0)
	for _, req := range requests {
		if req.ManagerID == nil || *req.ManagerID != id {
			continue
		}
		sent, err := s.repo.ExistsForRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if sent {
			continue
		}
		items = append(items, UpcomingReturn{
			LeaveRequestID: req.ID.String(),
			EmployeeID:     req.EmployeeID.String(),
			EmployeeName:   req.EmployeeName,
			LeaveType:      req.LeaveType,
			ReturnDate:     startOfDay(req.EndDate).AddDate(0, 0, 1).Format(dateLayout),
		})
	}
	return items, nil
}

func (s *service) window(today time.Time) (time.Time, time.Time) {
	from := startOfDay(today)
	return from, from.AddDate(0, 0, s.settings.DaysInAdvance)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(n Notice) NoticeResponse {
	return NoticeResponse{
		ID:             n.ID.String(),
		LeaveRequestID: n.LeaveRequestID.String(),
		EmployeeID:     n.EmployeeID.String(),
		EmployeeName:   n.EmployeeName,
		EmployeeEmail:  n.EmployeeEmail,
		ManagerName:    n.ManagerName,
		LeaveType:      n.LeaveType,
		ReturnDate:     n.ReturnDate.Format(dateLayout),
		NotifiedOn:     n.NotifiedOn.Format(dateLayout),
		Message:        n.Message,
		SentTo:         n.SentTo,
	}
}
