package returntowork

import (
	"context"
	"database/sql"
	"errors"

	"go-hrms/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, n *Notice) error
	ExistsForRequest(ctx context.Context, leaveRequestID uuid.UUID) (bool, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]Notice, error)
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

func (r *repository) Create(ctx context.Context, n *Notice) error {
	return r.conn(ctx).Create(n).Error
}

func (r *repository) ExistsForRequest(ctx context.Context, leaveRequestID uuid.UUID) (bool, error) {
	var n Notice
	err := r.conn(ctx).Select("id").Where("leave_request_id = ?", leaveRequestID).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repository) ListByManager(ctx context.Context, managerID uuid.UUID) ([]Notice, error) {
	var items []Notice
	err := r.conn(ctx).
		Where("manager_id = ?", managerID).
		Order("return_date ASC, created_at ASC").
		Find(&items).Error
	return items, err
}
