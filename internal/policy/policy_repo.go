package policy

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=policy_repo.go -destination=mock/policy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CountPolicies(ctx context.Context) (int64, error)
	CreatePolicies(ctx context.Context, items []Policy) error
	CreateFAQ(ctx context.Context, items []FAQItem) error
	ListPolicies(ctx context.Context) ([]Policy, error)
	ListFAQ(ctx context.Context) ([]FAQItem, error)
	// Vote reports false when the item does not exist.
	Vote(ctx context.Context, id uuid.UUID, helpful bool) (bool, error)
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

func (r *repository) CountPolicies(ctx context.Context) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&Policy{}).Count(&n).Error
	return n, err
}

func (r *repository) CreatePolicies(ctx context.Context, items []Policy) error {
	return r.conn(ctx).Create(&items).Error
}

func (r *repository) CreateFAQ(ctx context.Context, items []FAQItem) error {
	return r.conn(ctx).Create(&items).Error
}

func (r *repository) ListPolicies(ctx context.Context) ([]Policy, error) {
	var items []Policy
	err := r.conn(ctx).Order("title ASC").Find(&items).Error
	return items, err
}

func (r *repository) ListFAQ(ctx context.Context) ([]FAQItem, error) {
	var items []FAQItem
	err := r.conn(ctx).Order("helpful DESC, question ASC").Find(&items).Error
	return items, err
}

func (r *repository) Vote(ctx context.Context, id uuid.UUID, helpful bool) (bool, error) {
	column := "not_helpful"
	if helpful {
		column = "helpful"
	}
	res := r.conn(ctx).Model(&FAQItem{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	return res.RowsAffected > 0, res.Error
}
