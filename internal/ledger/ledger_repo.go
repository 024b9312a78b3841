package ledger

import (
	"context"
	"database/sql"
	"time"

	ledgererrors "go-hrms/internal/ledger/errors"
	"go-hrms/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBalance(ctx context.Context, b *Balance) error
	FindBalance(ctx context.Context, userID uuid.UUID) (*Balance, error)
	// UpdateBalance writes the available counters only if the stored version
	// still equals expectedVersion, then bumps it.
	UpdateBalance(ctx context.Context, b *Balance, expectedVersion int64) error
	CreateEntry(ctx context.Context, e *Entry) error
	FindEntryByLeaveRequest(ctx context.Context, leaveRequestID uuid.UUID) (*Entry, error)
	// TransitionEntry moves an entry from one state to another and fails with
	// ErrInvalidEntryState if it is no longer in from.
	TransitionEntry(ctx context.Context, id uuid.UUID, from, to string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) CreateBalance(ctx context.Context, b *Balance) error {
	return r.conn(ctx).Create(b).Error
}

func (r *repository) FindBalance(ctx context.Context, userID uuid.UUID) (*Balance, error) {
	var b Balance
	err := r.conn(ctx).First(&b, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) UpdateBalance(ctx context.Context, b *Balance, expectedVersion int64) error {
	res := r.conn(ctx).
		Model(&Balance{}).
		Where("user_id = ? AND version = ?", b.UserID, expectedVersion).
		Updates(map[string]any{
			"sick":       b.Sick,
			"casual":     b.Casual,
			"vacation":   b.Vacation,
			"version":    expectedVersion + 1,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ledgererrors.ErrBalanceConflict
	}
	b.Version = expectedVersion + 1
	return nil
}

func (r *repository) CreateEntry(ctx context.Context, e *Entry) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindEntryByLeaveRequest(ctx context.Context, leaveRequestID uuid.UUID) (*Entry, error) {
	var e Entry
	err := r.conn(ctx).First(&e, "leave_request_id = ?", leaveRequestID).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) TransitionEntry(ctx context.Context, id uuid.UUID, from, to string) error {
	res := r.conn(ctx).
		Model(&Entry{}).
		Where("id = ? AND state = ?", id, from).
		Updates(map[string]any{
			"state":      to,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ledgererrors.ErrInvalidEntryState
	}
	return nil
}
