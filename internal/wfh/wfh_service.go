package wfh

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/directory"
	"go-hrms/internal/domain"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/contextutil"
	wfherrors "go-hrms/internal/wfh/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitRequest) (Response, error)
	Decide(ctx context.Context, actorID, id string, req DecideRequest) (Response, error)
	ListMine(ctx context.Context, employeeID string) ([]Response, error)
	ListForManager(ctx context.Context, managerID, status string) ([]Response, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	users         directory.Repository
	notifications notification.Service
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users directory.Repository,
	notificationService notification.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("wfh.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wfh.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		users:         users,
		notifications: notificationService,
		now:           time.Now,
		logger:        l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitRequest) (Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit wfh requested",
		zap.String("employee_id", employeeID),
		zap.String("date", req.Date),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return Response{}, wfherrors.ErrInvalidEmployeeID
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return Response{}, wfherrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit wfh begin tx failed", zap.Error(err))
		return Response{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employee, err := s.users.WithTx(tx).FindByID(ctx, employeeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Response{}, wfherrors.ErrEmployeeNotFound
		}
		log.Error("submit wfh load employee failed", zap.Error(err))
		return Response{}, err
	}
	if employee.Role == domain.RoleManager {
		log.Warn("submit wfh by manager rejected", zap.String("employee_id", employeeID))
		return Response{}, wfherrors.ErrManagerCannotSubmit
	}

	exists, err := qtx.ExistsActiveOn(ctx, employee.ID, date)
	if err != nil {
		log.Error("submit wfh duplicate check failed", zap.Error(err))
		return Response{}, err
	}
	if exists {
		log.Warn("submit wfh duplicate date",
			zap.String("employee_id", employeeID),
			zap.String("date", req.Date),
		)
		return Response{}, wfherrors.ErrAlreadyRequested
	}

	now := s.now().UTC()
	r := &Request{
		ID:           uuid.New(),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		ManagerID:    employee.ManagerID,
		Date:         date,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := qtx.Create(ctx, r); err != nil {
		log.Error("submit wfh persist failed", zap.Error(err))
		return Response{}, err
	}

	if r.ManagerID != nil {
		msg := fmt.Sprintf("New WFH request from %s for %s", r.EmployeeName, r.Date.Format(dateLayout))
		if _, err := s.notifications.WithTx(tx).Emit(ctx, *r.ManagerID, msg, notification.TypeInfo); err != nil {
			return Response{}, err
		}
	} else {
		log.Warn("submit wfh manager unresolved, manager not notified",
			zap.String("wfh_id", r.ID.String()),
			zap.String("employee_id", employeeID),
		)
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit wfh commit failed", zap.Error(err))
		return Response{}, err
	}

	log.Info("submit wfh success",
		zap.String("wfh_id", r.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*r), nil
}

func (s *service) Decide(ctx context.Context, actorID, id string, req DecideRequest) (Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("decide wfh requested",
		zap.String("wfh_id", id),
		zap.String("actor_id", actorID),
		zap.String("decision", req.Decision),
	)

	if req.Decision != DecisionApprove && req.Decision != DecisionReject {
		return Response{}, wfherrors.ErrInvalidDecision
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return Response{}, wfherrors.ErrInvalidActorID
	}
	requestUUID, err := uuid.Parse(id)
	if err != nil {
		return Response{}, wfherrors.ErrRequestNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide wfh begin tx failed", zap.Error(err))
		return Response{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindByID(ctx, requestUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Response{}, wfherrors.ErrRequestNotFound
		}
		log.Error("decide wfh load failed", zap.Error(err))
		return Response{}, err
	}
	if r.ManagerID == nil || *r.ManagerID != actorUUID {
		log.Warn("decide wfh by non-assigned manager",
			zap.String("wfh_id", id),
			zap.String("actor_id", actorID),
		)
		return Response{}, wfherrors.ErrNotAssignedManager
	}
	if r.Status != StatusPending {
		return Response{}, wfherrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	r.DecidedAt = &now
	r.DecidedBy = &actorUUID
	r.ManagerComments = req.Comments
	r.UpdatedAt = now

	day := r.Date.Format(dateLayout)
	msg := fmt.Sprintf("Your work from home request for %s has been approved", day)
	ntype := notification.TypeSuccess
	r.Status = StatusApproved
	if req.Decision == DecisionReject {
		msg = fmt.Sprintf("Your work from home request for %s has been rejected", day)
		ntype = notification.TypeError
		r.Status = StatusRejected
	}

	if err := qtx.SaveDecision(ctx, r); err != nil {
		if errors.Is(err, wfherrors.ErrInvalidStatusTransition) {
			log.Warn("decide wfh lost race", zap.String("wfh_id", id))
		} else {
			log.Error("decide wfh persist failed", zap.Error(err))
		}
		return Response{}, err
	}

	if _, err := s.notifications.WithTx(tx).Emit(ctx, r.EmployeeID, msg, ntype); err != nil {
		return Response{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide wfh commit failed", zap.Error(err))
		return Response{}, err
	}

	log.Info("decide wfh success",
		zap.String("wfh_id", id),
		zap.String("status", r.Status),
	)
	return mapToResponse(*r), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]Response, error) {
	uid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, wfherrors.ErrInvalidEmployeeID
	}

	items, err := s.repo.ListByEmployee(ctx, uid)
	if err != nil {
		s.logger.Error("list own wfh requests failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) ListForManager(ctx context.Context, managerID, status string) ([]Response, error) {
	uid, err := uuid.Parse(managerID)
	if err != nil {
		return nil, wfherrors.ErrInvalidActorID
	}
	if status != "" && !IsValidStatus(status) {
		return nil, wfherrors.ErrInvalidStatusFilter
	}

	items, err := s.repo.ListByManager(ctx, uid, status)
	if err != nil {
		s.logger.Error("list routed wfh requests failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

func mapToResponse(r Request) Response {
	resp := Response{
		ID:              r.ID.String(),
		EmployeeID:      r.EmployeeID.String(),
		EmployeeName:    r.EmployeeName,
		Date:            r.Date.Format(dateLayout),
		Reason:          r.Reason,
		Status:          r.Status,
		ManagerComments: r.ManagerComments,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.ManagerID != nil {
		v := r.ManagerID.String()
		resp.ManagerID = &v
	}
	if r.DecidedBy != nil {
		v := r.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(items []Request) []Response {
	resp := make([]Response, len(items))
	for i, r := range items {
		resp[i] = mapToResponse(r)
	}
	return resp
}
