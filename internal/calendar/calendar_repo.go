package calendar

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, i *Integration) error
	Update(ctx context.Context, i *Integration) error
	FindByUserProvider(ctx context.Context, userID uuid.UUID, provider string) (*Integration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Integration, error)
	// Disable reports false when no integration with id belongs to userID.
	Disable(ctx context.Context, id, userID uuid.UUID) (bool, error)
	// MarkLeaveSynced stamps every enabled integration of userID that syncs
	// leave requests.
	MarkLeaveSynced(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, i *Integration) error {
	return r.conn(ctx).Create(i).Error
}

func (r *repository) Update(ctx context.Context, i *Integration) error {
	return r.conn(ctx).Save(i).Error
}

func (r *repository) FindByUserProvider(ctx context.Context, userID uuid.UUID, provider string) (*Integration, error) {
	var i Integration
	err := r.conn(ctx).Where("user_id = ? AND provider = ?", userID, provider).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Integration, error) {
	var items []Integration
	err := r.conn(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *repository) Disable(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res := r.conn(ctx).Model(&Integration{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_enabled": false, "updated_at": time.Now().UTC()})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkLeaveSynced(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	res := r.conn(ctx).Model(&Integration{}).
		Where("user_id = ? AND is_enabled = ? AND sync_leave_requests = ?", userID, true, true).
		Updates(map[string]any{"last_sync": at, "updated_at": at})
	return res.RowsAffected, res.Error
}
