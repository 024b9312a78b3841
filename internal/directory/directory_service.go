package directory

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	directoryerrors "go-hrms/internal/directory/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/ledger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// Create is the "add user" action. When actorID is a manager, new
	// employees report to that manager unless ManagerID says otherwise.
	Create(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error)
	Register(ctx context.Context, in NewUser) (*User, error)
	ResolveManager(ctx context.Context, role, department string, explicit *uuid.UUID) (*uuid.UUID, error)
	RepairMissingManagers(ctx context.Context) (RepairResult, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetManagers(ctx context.Context) ([]UserResponse, error)
	GetTeam(ctx context.Context, managerID string) ([]UserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger ledger.Service
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledgerService ledger.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("directory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.service")
	}
	return &service{db: db, repo: repo, ledger: ledgerService, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested",
		zap.String("actor_id", actorID),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	in := NewUser{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
	}

	if req.ManagerID != nil && *req.ManagerID != "" {
		id, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return UserResponse{}, directoryerrors.ErrInvalidManager
		}
		in.ManagerID = &id
	} else if req.Role == domain.RoleEmployee {
		if actor, err := uuid.Parse(actorID); err == nil {
			a, err := s.repo.FindByID(ctx, actor)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("create user load actor failed", zap.Error(err))
				return UserResponse{}, err
			}
			if a != nil && a.IsManager() {
				in.ManagerID = &a.ID
			}
		}
	}

	u, err := s.Register(ctx, in)
	if err != nil {
		return UserResponse{}, err
	}
	return ToResponse(*u), nil
}

func (s *service) Register(ctx context.Context, in NewUser) (*User, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Department = strings.TrimSpace(in.Department)
	if !domain.IsValidRole(in.Role) {
		return nil, directoryerrors.ErrInvalidRole
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register user begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByEmail(ctx, in.Email); err == nil {
		s.logger.Warn("register user email taken", zap.String("email", in.Email))
		return nil, directoryerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("register user email lookup failed", zap.Error(err))
		return nil, err
	}

	managerID, err := resolveManager(ctx, qtx, in.Role, in.Department, in.ManagerID)
	if err != nil {
		s.logger.Warn("register user manager resolution failed", zap.Error(err))
		return nil, err
	}
	if managerID == nil && in.Role == domain.RoleEmployee {
		s.logger.Warn("register user without manager, no manager exists yet", zap.String("email", in.Email))
	}

	now := time.Now().UTC()
	u := &User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		Department:   in.Department,
		ManagerID:    managerID,
		PasswordHash: in.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Error("register user persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if _, err := s.ledger.WithTx(tx).Open(ctx, u.ID, u.Role); err != nil {
		s.logger.Error("register user open balance failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register user commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("register user success",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
		zap.Stringp("manager_id", uuidString(u.ManagerID)),
	)
	return u, nil
}

func (s *service) ResolveManager(ctx context.Context, role, department string, explicit *uuid.UUID) (*uuid.UUID, error) {
	return resolveManager(ctx, s.repo, role, department, explicit)
}

// resolveManager applies the assignment rule: managers report to nobody, an
// explicit manager must be a manager, otherwise the first manager of the same
// department (case-insensitive), otherwise the first manager, otherwise none.
func resolveManager(ctx context.Context, repo Repository, role, department string, explicit *uuid.UUID) (*uuid.UUID, error) {
	if role == domain.RoleManager {
		return nil, nil
	}

	if explicit != nil {
		m, err := repo.FindByID(ctx, *explicit)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, directoryerrors.ErrInvalidManager
			}
			return nil, err
		}
		if !m.IsManager() {
			return nil, directoryerrors.ErrInvalidManager
		}
		return &m.ID, nil
	}

	managers, err := repo.ListManagers(ctx)
	if err != nil {
		return nil, err
	}
	if m := pickManager(managers, department); m != nil {
		return &m.ID, nil
	}
	return nil, nil
}

func pickManager(managers []User, department string) *User {
	department = strings.TrimSpace(department)
	if department != "" {
		for i := range managers {
			if strings.EqualFold(strings.TrimSpace(managers[i].Department), department) {
				return &managers[i]
			}
		}
	}
	if len(managers) > 0 {
		return &managers[0]
	}
	return nil
}

func (s *service) RepairMissingManagers(ctx context.Context) (RepairResult, error) {
	s.logger.Debug("repair missing managers requested")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("repair managers begin tx failed", zap.Error(err))
		return RepairResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employees, err := qtx.ListEmployeesWithoutManager(ctx)
	if err != nil {
		s.logger.Error("repair managers list employees failed", zap.Error(err))
		return RepairResult{}, err
	}
	managers, err := qtx.ListManagers(ctx)
	if err != nil {
		s.logger.Error("repair managers list managers failed", zap.Error(err))
		return RepairResult{}, err
	}

	var result RepairResult
	if len(managers) > 0 {
		for _, e := range employees {
			m := pickManager(managers, e.Department)
			if err := qtx.UpdateManager(ctx, e.ID, m.ID); err != nil {
				s.logger.Error("repair managers update user failed", zap.String("user_id", e.ID.String()), zap.Error(err))
				return RepairResult{}, err
			}
			result.UsersRepaired++

			n, err := qtx.RepointRequests(ctx, e.ID, m.ID)
			if err != nil {
				s.logger.Error("repair managers repoint requests failed", zap.String("user_id", e.ID.String()), zap.Error(err))
				return RepairResult{}, err
			}
			result.RequestsRepointed += n
		}
	} else if len(employees) > 0 {
		s.logger.Warn("repair managers skipped, no manager exists", zap.Int("employees", len(employees)))
	}

	orphans, err := qtx.RepointOrphanedRequests(ctx)
	if err != nil {
		s.logger.Error("repair managers repoint orphans failed", zap.Error(err))
		return RepairResult{}, err
	}
	result.RequestsRepointed += orphans

	if err := tx.Commit(); err != nil {
		s.logger.Error("repair managers commit failed", zap.Error(err))
		return RepairResult{}, err
	}

	s.logger.Info("repair missing managers done",
		zap.Int("users_repaired", result.UsersRepaired),
		zap.Int64("requests_repointed", result.RequestsRepointed),
	)
	return result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, directoryerrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) GetManagers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.ListManagers(ctx)
	if err != nil {
		s.logger.Error("list managers failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) GetTeam(ctx context.Context, managerID string) ([]UserResponse, error) {
	mid, err := uuid.Parse(managerID)
	if err != nil {
		return nil, directoryerrors.ErrInvalidUserID
	}
	users, err := s.repo.ListTeam(ctx, mid)
	if err != nil {
		s.logger.Error("list team failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(users), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		ManagerID:  uuidString(u.ManagerID),
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = ToResponse(u)
	}
	return resp
}
