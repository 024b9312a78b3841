package notification

import (
	"context"
	"database/sql"
	"strings"
	"time"

	notificationerrors "go-hrms/internal/notification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	WithTx(tx *sql.Tx) Service
	Emit(ctx context.Context, userID uuid.UUID, message, notificationType string) (*Notification, error)
	List(ctx context.Context, userID string, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) WithTx(tx *sql.Tx) Service {
	return &service{repo: s.repo.WithTx(tx), now: s.now, logger: s.logger}
}

func (s *service) Emit(ctx context.Context, userID uuid.UUID, message, notificationType string) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, notificationerrors.ErrInvalidUserID
	}
	if strings.TrimSpace(message) == "" {
		return nil, notificationerrors.ErrEmptyMessage
	}
	if !IsValidType(notificationType) {
		return nil, notificationerrors.ErrInvalidType
	}

	n := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("emit notification failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Debug("notification emitted",
		zap.String("notification_id", n.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("type", notificationType),
	)
	return n, nil
}

func (s *service) List(ctx context.Context, userID string, unreadOnly bool) ([]NotificationResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidUserID
	}

	items, err := s.repo.ListByUser(ctx, uid, unreadOnly)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, userID, id string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return notificationerrors.ErrInvalidUserID
	}
	nid, err := uuid.Parse(id)
	if err != nil {
		return notificationerrors.ErrInvalidID
	}

	found, err := s.repo.MarkRead(ctx, nid, uid)
	if err != nil {
		s.logger.Error("mark notification read failed", zap.String("notification_id", id), zap.Error(err))
		return err
	}
	if !found {
		s.logger.Warn("mark read on missing or foreign notification",
			zap.String("notification_id", id),
			zap.String("user_id", userID),
		)
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, notificationerrors.ErrInvalidUserID
	}

	n, err := s.repo.MarkAllRead(ctx, uid)
	if err != nil {
		s.logger.Error("mark all notifications read failed", zap.String("user_id", userID), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, notificationerrors.ErrInvalidUserID
	}

	n, err := s.repo.CountUnread(ctx, uid)
	if err != nil {
		s.logger.Error("count unread notifications failed", zap.String("user_id", userID), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
