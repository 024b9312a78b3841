package wfh

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"
	wfherrors "go-hrms/internal/wfh/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Request, error)
	ListByManager(ctx context.Context, managerID uuid.UUID, status string) ([]Request, error)
	// ExistsActiveOn reports a pending or approved request for the day.
	ExistsActiveOn(ctx context.Context, employeeID uuid.UUID, date time.Time) (bool, error)
	SaveDecision(ctx context.Context, r *Request) error
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.conn(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	var req Request
	if err := r.conn(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Request, error) {
	var items []Request
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) ListByManager(ctx context.Context, managerID uuid.UUID, status string) ([]Request, error) {
	q := r.conn(ctx).Where("manager_id = ?", managerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var items []Request
	err := q.Order("date ASC, created_at ASC").Find(&items).Error
	return items, err
}

func (r *repository) ExistsActiveOn(ctx context.Context, employeeID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Request{}).
		Where("employee_id = ? AND date = ? AND status IN ?", employeeID, date, []string{StatusPending, StatusApproved}).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SaveDecision(ctx context.Context, req *Request) error {
	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ? AND status = ?", req.ID, StatusPending).
		Updates(map[string]any{
			"status":           req.Status,
			"decided_by":       req.DecidedBy,
			"decided_at":       req.DecidedAt,
			"manager_comments": req.ManagerComments,
			"updated_at":       req.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return wfherrors.ErrInvalidStatusTransition
	}
	return nil
}
