package ledger

import (
	"context"
	"database/sql"
	"errors"

	"go-hrms/internal/domain"
	ledgererrors "go-hrms/internal/ledger/errors"
	"go-hrms/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns every mutation of LeaveBalance. It does not open transactions
// itself: callers bind it to theirs with WithTx so a hold and the request that
// placed it commit or roll back together.
type Service interface {
	WithTx(tx *sql.Tx) Service
	Open(ctx context.Context, userID uuid.UUID, role string) (*Balance, error)
	Hold(ctx context.Context, userID, leaveRequestID uuid.UUID, leaveType string, days int) (*Entry, error)
	Commit(ctx context.Context, leaveRequestID uuid.UUID) (*Entry, error)
	// Release returns the held days to the balance. restored is false when the
	// user has no balance record; the entry is still released.
	Release(ctx context.Context, leaveRequestID uuid.UUID) (entry *Entry, restored bool, err error)
	GetBalance(ctx context.Context, userID string) (BalanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) WithTx(tx *sql.Tx) Service {
	return &service{repo: s.repo.WithTx(tx), logger: s.logger}
}

func (s *service) Open(ctx context.Context, userID uuid.UUID, role string) (*Balance, error) {
	b := newBalance(AllotmentFor(role))
	b.UserID = userID

	if err := s.repo.CreateBalance(ctx, &b); err != nil {
		if _, ok := dberr.UniqueViolation(err); ok {
			return nil, ledgererrors.ErrBalanceAlreadyOpen
		}
		s.logger.Error("open balance persist failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("balance opened",
		zap.String("user_id", userID.String()),
		zap.String("role", role),
		zap.Int("sick", b.Sick),
		zap.Int("casual", b.Casual),
		zap.Int("vacation", b.Vacation),
	)
	return &b, nil
}

func (s *service) Hold(ctx context.Context, userID, leaveRequestID uuid.UUID, leaveType string, days int) (*Entry, error) {
	if !domain.IsValidLeaveType(leaveType) {
		return nil, ledgererrors.ErrInvalidLeaveType
	}
	if days < 1 {
		return nil, ledgererrors.ErrInvalidDays
	}

	b, err := s.repo.FindBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No balance means nothing is available.
			s.logger.Warn("hold rejected, no balance record",
				zap.String("user_id", userID.String()),
				zap.String("leave_type", leaveType),
				zap.Int("days", days),
			)
			return nil, ledgererrors.ErrInsufficientBalance
		}
		s.logger.Error("hold load balance failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	available := b.Available(leaveType)
	if days > available {
		s.logger.Warn("hold rejected, insufficient balance",
			zap.String("user_id", userID.String()),
			zap.String("leave_type", leaveType),
			zap.Int("days", days),
			zap.Int("available", available),
		)
		return nil, ledgererrors.ErrInsufficientBalance
	}

	version := b.Version
	b.setAvailable(leaveType, available-days)
	if err := s.repo.UpdateBalance(ctx, b, version); err != nil {
		return nil, err
	}

	e := &Entry{
		ID:             uuid.New(),
		UserID:         userID,
		LeaveRequestID: leaveRequestID,
		LeaveType:      leaveType,
		Days:           days,
		State:          EntryStateHeld,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		s.logger.Error("hold persist entry failed", zap.String("leave_request_id", leaveRequestID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Debug("hold placed",
		zap.String("user_id", userID.String()),
		zap.String("leave_request_id", leaveRequestID.String()),
		zap.String("leave_type", leaveType),
		zap.Int("days", days),
		zap.Int("remaining", available-days),
	)
	return e, nil
}

func (s *service) Commit(ctx context.Context, leaveRequestID uuid.UUID) (*Entry, error) {
	e, err := s.heldEntry(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.TransitionEntry(ctx, e.ID, EntryStateHeld, EntryStateSpent); err != nil {
		return nil, err
	}
	e.State = EntryStateSpent

	s.logger.Debug("hold committed", zap.String("leave_request_id", leaveRequestID.String()), zap.Int("days", e.Days))
	return e, nil
}

func (s *service) Release(ctx context.Context, leaveRequestID uuid.UUID) (*Entry, bool, error) {
	e, err := s.heldEntry(ctx, leaveRequestID)
	if err != nil {
		return nil, false, err
	}
	if err := s.repo.TransitionEntry(ctx, e.ID, EntryStateHeld, EntryStateReleased); err != nil {
		return nil, false, err
	}
	e.State = EntryStateReleased

	b, err := s.repo.FindBalance(ctx, e.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("release without balance record, restoration skipped",
				zap.String("user_id", e.UserID.String()),
				zap.String("leave_request_id", leaveRequestID.String()),
				zap.Int("days", e.Days),
			)
			return e, false, nil
		}
		return nil, false, err
	}

	restored := b.Available(e.LeaveType) + e.Days
	if restored > b.Allocated(e.LeaveType) {
		s.logger.Error("release would exceed allocation",
			zap.String("user_id", e.UserID.String()),
			zap.String("leave_type", e.LeaveType),
			zap.Int("restored", restored),
			zap.Int("allocated", b.Allocated(e.LeaveType)),
		)
		return nil, false, ledgererrors.ErrAllocationExceeded
	}

	version := b.Version
	b.setAvailable(e.LeaveType, restored)
	if err := s.repo.UpdateBalance(ctx, b, version); err != nil {
		return nil, false, err
	}

	s.logger.Debug("hold released",
		zap.String("leave_request_id", leaveRequestID.String()),
		zap.String("leave_type", e.LeaveType),
		zap.Int("days", e.Days),
		zap.Int("available", restored),
	)
	return e, true, nil
}

func (s *service) heldEntry(ctx context.Context, leaveRequestID uuid.UUID) (*Entry, error) {
	e, err := s.repo.FindEntryByLeaveRequest(ctx, leaveRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledgererrors.ErrEntryNotFound
		}
		return nil, err
	}
	if e.State != EntryStateHeld {
		s.logger.Warn("ledger entry not held",
			zap.String("leave_request_id", leaveRequestID.String()),
			zap.String("state", e.State),
		)
		return nil, ledgererrors.ErrInvalidEntryState
	}
	return e, nil
}

func (s *service) GetBalance(ctx context.Context, userID string) (BalanceResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return BalanceResponse{}, ledgererrors.ErrInvalidUserID
	}

	b, err := s.repo.FindBalance(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, ledgererrors.ErrBalanceNotFound
		}
		return BalanceResponse{}, err
	}
	return MapToBalanceResponse(*b), nil
}

func MapToBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		UserID:   b.UserID.String(),
		Sick:     LeaveTypeBalance{Available: b.Sick, Allocated: b.AllocatedSick},
		Casual:   LeaveTypeBalance{Available: b.Casual, Allocated: b.AllocatedCasual},
		Vacation: LeaveTypeBalance{Available: b.Vacation, Allocated: b.AllocatedVacation},
		Version:  b.Version,
	}
}
