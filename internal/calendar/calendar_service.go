package calendar

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	calendarerrors "go-hrms/internal/calendar/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/leave"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// Connect creates the user's integration for a provider, or re-enables
	// and updates the existing one.
	Connect(ctx context.Context, userID string, req ConnectRequest) (IntegrationResponse, error)
	List(ctx context.Context, userID string) ([]IntegrationResponse, error)
	Disable(ctx context.Context, userID, id string) error
	SyncApprovedLeave(ctx context.Context, event events.LeaveDecidedEvent) (int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) Connect(ctx context.Context, userID string, req ConnectRequest) (IntegrationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return IntegrationResponse{}, calendarerrors.ErrInvalidUserID
	}
	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if !IsValidProvider(provider) {
		return IntegrationResponse{}, calendarerrors.ErrInvalidProvider
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("calendar connect begin tx failed", zap.Error(err))
		return IntegrationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()

	existing, err := qtx.FindByUserProvider(ctx, uid, provider)
	switch {
	case err == nil:
		existing.Email = strings.TrimSpace(req.Email)
		existing.IsEnabled = true
		existing.SyncLeaveRequests = boolOr(req.SyncLeaveRequests, existing.SyncLeaveRequests)
		existing.SyncNotifications = boolOr(req.SyncNotifications, existing.SyncNotifications)
		existing.UpdatedAt = now
		if err := qtx.Update(ctx, existing); err != nil {
			log.Error("calendar connect update failed", zap.Error(err))
			return IntegrationResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = &Integration{
			ID:                uuid.New(),
			UserID:            uid,
			Provider:          provider,
			Email:             strings.TrimSpace(req.Email),
			IsEnabled:         true,
			SyncLeaveRequests: boolOr(req.SyncLeaveRequests, true),
			SyncNotifications: boolOr(req.SyncNotifications, true),
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := qtx.Create(ctx, existing); err != nil {
			log.Error("calendar connect create failed", zap.Error(err))
			return IntegrationResponse{}, err
		}
	default:
		log.Error("calendar connect lookup failed", zap.Error(err))
		return IntegrationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("calendar connect commit failed", zap.Error(err))
		return IntegrationResponse{}, err
	}

	log.Info("calendar integration connected",
		zap.String("user_id", userID),
		zap.String("provider", provider),
	)
	return mapToResponse(*existing), nil
}

func (s *service) List(ctx context.Context, userID string) ([]IntegrationResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, calendarerrors.ErrInvalidUserID
	}

	items, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	resp := make([]IntegrationResponse, len(items))
	for i, item := range items {
		resp[i] = mapToResponse(item)
	}
	return resp, nil
}

func (s *service) Disable(ctx context.Context, userID, id string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return calendarerrors.ErrInvalidUserID
	}
	iid, err := uuid.Parse(id)
	if err != nil {
		return calendarerrors.ErrInvalidIntegrationID
	}

	ok, err := s.repo.Disable(ctx, iid, uid)
	if err != nil {
		s.logger.Error("calendar disable failed", zap.Error(err))
		return err
	}
	if !ok {
		return calendarerrors.ErrIntegrationNotFound
	}
	return nil
}

func (s *service) SyncApprovedLeave(ctx context.Context, event events.LeaveDecidedEvent) (int64, error) {
	if event.Status != leave.StatusApproved {
		s.logger.Debug("calendar sync skipped, leave not approved",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
		return 0, nil
	}

	uid, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return 0, calendarerrors.ErrInvalidUserID
	}

	synced, err := s.repo.MarkLeaveSynced(ctx, uid, s.now().UTC())
	if err != nil {
		s.logger.Error("calendar sync failed", zap.String("leave_id", event.LeaveID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("calendar leave synced",
		zap.String("leave_id", event.LeaveID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("start_date", event.StartDate),
		zap.String("end_date", event.EndDate),
		zap.Int64("integrations", synced),
	)
	return synced, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func mapToResponse(i Integration) IntegrationResponse {
	var lastSync *string
	if i.LastSync != nil {
		v := i.LastSync.UTC().Format(time.RFC3339)
		lastSync = &v
	}
	return IntegrationResponse{
		ID:                i.ID.String(),
		Provider:          i.Provider,
		Email:             i.Email,
		IsEnabled:         i.IsEnabled,
		SyncLeaveRequests: i.SyncLeaveRequests,
		SyncNotifications: i.SyncNotifications,
		LastSync:          lastSync,
	}
}
