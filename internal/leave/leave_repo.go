package leave

import (
	"context"
	"database/sql"
	"time"

	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error)
	// ListByManager lists requests routed to managerID; an empty status
	// returns every status.
	ListByManager(ctx context.Context, managerID uuid.UUID, status string) ([]LeaveRequest, error)
	// SaveDecision writes a terminal status only while the row is still
	// pending, failing with ErrInvalidStatusTransition otherwise.
	SaveDecision(ctx context.Context, l *LeaveRequest) error
	ListApprovedEndingBetween(ctx context.Context, from, to time.Time) ([]LeaveRequest, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var l LeaveRequest
	if err := r.conn(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) ListByManager(ctx context.Context, managerID uuid.UUID, status string) ([]LeaveRequest, error) {
	q := r.conn(ctx).Where("manager_id = ?", managerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var items []LeaveRequest
	err := q.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (r *repository) SaveDecision(ctx context.Context, l *LeaveRequest) error {
	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", l.ID, StatusPending).
		Updates(map[string]any{
			"status":           l.Status,
			"approved_at":      l.ApprovedAt,
			"decided_by":       l.DecidedBy,
			"manager_comments": l.ManagerComments,
			"updated_at":       time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return leaveerrors.ErrInvalidStatusTransition
	}
	return nil
}

func (r *repository) ListApprovedEndingBetween(ctx context.Context, from, to time.Time) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.conn(ctx).
		Where("status = ?", StatusApproved).
		Where("end_date >= ? AND end_date <= ?", from, to).
		Order("end_date ASC, id ASC").
		Find(&items).Error
	return items, err
}
