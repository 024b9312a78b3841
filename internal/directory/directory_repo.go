package directory

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
	// ListManagers returns managers in directory order (oldest first).
	ListManagers(ctx context.Context) ([]User, error)
	ListTeam(ctx context.Context, managerID uuid.UUID) ([]User, error)
	ListEmployeesWithoutManager(ctx context.Context) ([]User, error)
	UpdateManager(ctx context.Context, id, managerID uuid.UUID) error
	// RepointRequests routes every request of employeeID to managerID.
	RepointRequests(ctx context.Context, employeeID, managerID uuid.UUID) (int64, error)
	// RepointOrphanedRequests fills requests without a manager from the
	// employee's current manager, where one is set.
	RepointOrphanedRequests(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	if err := r.conn(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) ListAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.conn(ctx).Order("created_at ASC, id ASC").Find(&users).Error
	return users, err
}

func (r *repository) ListManagers(ctx context.Context) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Where("role = ?", domain.RoleManager).
		Order("created_at ASC, id ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) ListTeam(ctx context.Context, managerID uuid.UUID) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) ListEmployeesWithoutManager(ctx context.Context) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Where("role = ?", domain.RoleEmployee).
		Where("manager_id IS NULL").
		Order("created_at ASC, id ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) UpdateManager(ctx context.Context, id, managerID uuid.UUID) error {
	return r.conn(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"manager_id": managerID,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *repository) RepointRequests(ctx context.Context, employeeID, managerID uuid.UUID) (int64, error) {
	res := r.conn(ctx).
		Table("leave_requests").
		Where("employee_id = ?", employeeID).
		Where("manager_id IS NULL OR manager_id <> ?", managerID).
		Update("manager_id", managerID)
	return res.RowsAffected, res.Error
}

func (r *repository) RepointOrphanedRequests(ctx context.Context) (int64, error) {
	res := r.conn(ctx).Exec(`
UPDATE leave_requests
SET manager_id = (SELECT u.manager_id FROM users u WHERE u.id = leave_requests.employee_id)
WHERE manager_id IS NULL
	AND EXISTS (
		SELECT 1 FROM users u
		WHERE u.id = leave_requests.employee_id AND u.manager_id IS NOT NULL
	)`)
	return res.RowsAffected, res.Error
}
