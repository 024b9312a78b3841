package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go-hrms/internal/directory"
	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/ledger"
	ledgererrors "go-hrms/internal/ledger/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	filterAll   = "all"
)

type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, actorID, id string) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListForManager(ctx context.Context, managerID, status string) ([]LeaveResponse, error)
	// TeamCalendar lists requests routed to managerID that overlap the
	// queried month.
	TeamCalendar(ctx context.Context, managerID string, q TeamCalendarQuery) (TeamCalendarResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	users         directory.Repository
	ledger        ledger.Service
	notifications notification.Service
	outbox        kafka.OutboxRepository
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users directory.Repository,
	ledgerService ledger.Service,
	notificationService notification.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		users:         users,
		ledger:        ledgerService,
		notifications: notificationService,
		outbox:        outbox,
		now:           time.Now,
		logger:        l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if !domain.IsValidLeaveType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, endDate, days, err := validateDates(req.StartDate, req.EndDate)
	if err != nil {
		log.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Fresh read so the snapshot carries the current manager.
	employee, err := s.users.WithTx(tx).FindByID(ctx, employeeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		log.Error("submit leave load employee failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if employee.Role == domain.RoleManager {
		log.Warn("submit leave by manager rejected", zap.String("employee_id", employeeID))
		return LeaveResponse{}, leaveerrors.ErrManagerCannotSubmit
	}

	now := s.now().UTC()
	l := &LeaveRequest{
		ID:           uuid.New(),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		ManagerID:    employee.ManagerID,
		LeaveType:    req.LeaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Days:         days,
		Reason:       req.Reason,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.ledger.WithTx(tx).Hold(ctx, employee.ID, l.ID, l.LeaveType, l.Days); err != nil {
		if errors.Is(err, ledgererrors.ErrInsufficientBalance) {
			log.Warn("submit leave insufficient balance",
				zap.String("employee_id", employeeID),
				zap.String("leave_type", l.LeaveType),
				zap.Int("days", l.Days),
			)
		}
		return LeaveResponse{}, err
	}

	if err := qtx.Create(ctx, l); err != nil {
		log.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	ntx := s.notifications.WithTx(tx)
	if l.ManagerID != nil {
		msg := fmt.Sprintf("New leave request from %s for %d days", l.EmployeeName, l.Days)
		if _, err := ntx.Emit(ctx, *l.ManagerID, msg, notification.TypeInfo); err != nil {
			return LeaveResponse{}, err
		}
	} else {
		log.Warn("submit leave manager unresolved, manager not notified",
			zap.String("leave_id", l.ID.String()),
			zap.String("employee_id", employeeID),
		)
	}
	msg := fmt.Sprintf("Your leave request for %d days has been submitted successfully", l.Days)
	if _, err := ntx.Emit(ctx, l.EmployeeID, msg, notification.TypeSuccess); err != nil {
		return LeaveResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, l, events.EventLeaveSubmitted, events.LeaveSubmittedEvent{
		EventType:  events.EventLeaveSubmitted,
		RequestID:  contextutil.GetRequestID(ctx),
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		ManagerID:  uuidValue(l.ManagerID),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Days:       l.Days,
		OccurredAt: now,
	}); err != nil {
		log.Error("submit leave queue event failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("days", l.Days),
	)
	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("decision", req.Decision),
	)

	if req.Decision != DecisionApprove && req.Decision != DecisionReject {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	leaveUUID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		log.Error("decide leave load failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if l.ManagerID == nil || *l.ManagerID != actorUUID {
		log.Warn("decide leave by non-assigned manager",
			zap.String("leave_id", id),
			zap.String("actor_id", actorID),
		)
		return LeaveResponse{}, leaveerrors.ErrNotAssignedManager
	}
	if !l.IsPending() {
		log.Warn("decide leave invalid transition",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("decision", req.Decision),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	l.ApprovedAt = &now
	l.DecidedBy = &actorUUID
	l.ManagerComments = req.Comments
	l.UpdatedAt = now

	var (
		msg   string
		ntype string
	)
	ltx := s.ledger.WithTx(tx)
	if req.Decision == DecisionApprove {
		l.Status = StatusApproved
		if _, err := ltx.Commit(ctx, l.ID); err != nil && !s.tolerateMissingHold(log, l, err) {
			return LeaveResponse{}, err
		}
		msg = fmt.Sprintf("Your leave request for %d days has been approved", l.Days)
		ntype = notification.TypeSuccess
	} else {
		l.Status = StatusRejected
		_, restored, err := ltx.Release(ctx, l.ID)
		if err != nil && !s.tolerateMissingHold(log, l, err) {
			return LeaveResponse{}, err
		}
		if err == nil && !restored {
			log.Warn("decide leave reject without balance record, nothing restored",
				zap.String("leave_id", id),
				zap.String("employee_id", l.EmployeeID.String()),
			)
		}
		msg = fmt.Sprintf("Your leave request for %d days has been rejected", l.Days)
		ntype = notification.TypeError
	}

	if err := qtx.SaveDecision(ctx, l); err != nil {
		if errors.Is(err, leaveerrors.ErrInvalidStatusTransition) {
			log.Warn("decide leave lost race", zap.String("leave_id", id))
		} else {
			log.Error("decide leave persist failed", zap.Error(err))
		}
		return LeaveResponse{}, err
	}

	if _, err := s.notifications.WithTx(tx).Emit(ctx, l.EmployeeID, msg, ntype); err != nil {
		return LeaveResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, l, events.EventLeaveDecided, events.LeaveDecidedEvent{
		EventType:  events.EventLeaveDecided,
		RequestID:  contextutil.GetRequestID(ctx),
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		DecidedBy:  actorID,
		Status:     l.Status,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Days:       l.Days,
		OccurredAt: now,
	}); err != nil {
		log.Error("decide leave queue event failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*l), nil
}

// tolerateMissingHold accepts requests that were stored before holds existed.
func (s *service) tolerateMissingHold(log *zap.Logger, l *LeaveRequest, err error) bool {
	if !errors.Is(err, ledgererrors.ErrEntryNotFound) {
		return false
	}
	log.Warn("decide leave without ledger hold",
		zap.String("leave_id", l.ID.String()),
		zap.String("status", l.Status),
	)
	return true
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest, eventType string, payload any) error {
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"leave_request",
		l.ID.String(),
		eventType,
		events.LeaveLifecycleTopic,
		payload,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) GetByID(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	leaveUUID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	l, err := s.repo.FindByID(ctx, leaveUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.EmployeeID != actorUUID && (l.ManagerID == nil || *l.ManagerID != actorUUID) {
		return LeaveResponse{}, leaveerrors.ErrLeaveAccessDenied
	}
	return mapToResponse(*l), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	uid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	items, err := s.repo.ListByEmployee(ctx, uid)
	if err != nil {
		s.logger.Error("list own leave requests failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) ListForManager(ctx context.Context, managerID, status string) ([]LeaveResponse, error) {
	uid, err := uuid.Parse(managerID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}
	if status != "" && !IsValidStatus(status) {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}

	items, err := s.repo.ListByManager(ctx, uid, status)
	if err != nil {
		s.logger.Error("list routed leave requests failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) TeamCalendar(ctx context.Context, managerID string, q TeamCalendarQuery) (TeamCalendarResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := uuid.Parse(managerID)
	if err != nil {
		return TeamCalendarResponse{}, leaveerrors.ErrInvalidActorID
	}
	status := q.Status
	if status == filterAll {
		status = ""
	}
	if status != "" && !IsValidStatus(status) {
		return TeamCalendarResponse{}, leaveerrors.ErrInvalidStatusFilter
	}

	today := s.now().UTC()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	if q.Month != "" {
		monthStart, err = time.Parse(monthLayout, q.Month)
		if err != nil {
			return TeamCalendarResponse{}, leaveerrors.ErrInvalidMonth
		}
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	items, err := s.repo.ListByManager(ctx, uid, status)
	if err != nil {
		log.Error("team calendar list failed", zap.String("manager_id", managerID), zap.Error(err))
		return TeamCalendarResponse{}, err
	}

	team, err := s.users.ListTeam(ctx, uid)
	if err != nil {
		log.Error("team calendar load team failed", zap.String("manager_id", managerID), zap.Error(err))
		return TeamCalendarResponse{}, err
	}
	members := make(map[uuid.UUID]directory.User, len(team))
	for _, u := range team {
		members[u.ID] = u
	}

	events := make([]TeamCalendarEvent, 0, len(items))
	for _, l := range items {
		if l.StartDate.After(monthEnd) || l.EndDate.Before(monthStart) {
			continue
		}
		member, ok := members[l.EmployeeID]
		if !ok {
			// Former team member; the request still routes here.
			u, err := s.users.FindByID(ctx, l.EmployeeID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return TeamCalendarResponse{}, err
			}
			if u != nil {
				member = *u
			}
			members[l.EmployeeID] = member
		}
		if q.Department != "" && q.Department != filterAll && !strings.EqualFold(member.Department, q.Department) {
			continue
		}
		events = append(events, TeamCalendarEvent{
			ID:            l.ID.String(),
			EmployeeID:    l.EmployeeID.String(),
			EmployeeName:  l.EmployeeName,
			EmployeeEmail: member.Email,
			Department:    member.Department,
			LeaveType:     l.LeaveType,
			StartDate:     l.StartDate.Format(dateLayout),
			EndDate:       l.EndDate.Format(dateLayout),
			Days:          l.Days,
			Status:        l.Status,
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate < events[j].StartDate
	})

	return TeamCalendarResponse{Month: monthStart.Format(monthLayout), Events: events}, nil
}

// validateDates parses both dates and counts calendar days inclusively.
func validateDates(start, end string) (time.Time, time.Time, int, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDateRange
	}
	days := CountDays(startDate, endDate)
	if days < 1 {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, days, nil
}

// CountDays is ceil((end-start)/24h)+1. Weekends and holidays count.
func CountDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func uuidValue(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func uuidPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		EmployeeName:    l.EmployeeName,
		ManagerID:       uuidPtr(l.ManagerID),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format(dateLayout),
		EndDate:         l.EndDate.Format(dateLayout),
		Days:            l.Days,
		Reason:          l.Reason,
		Status:          l.Status,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
		DecidedBy:       uuidPtr(l.DecidedBy),
		ManagerComments: l.ManagerComments,
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(items []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(items))
	for i, l := range items {
		resp[i] = mapToResponse(l)
	}
	return resp
}
