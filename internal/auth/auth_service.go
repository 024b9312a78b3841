package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/directory"
	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (directory.UserResponse, error)
}

type service struct {
	users     directory.Repository
	directory directory.Service
	tokens    *TokenIssuer
	hashCost  int
	logger    *zap.Logger
}

func NewService(users directory.Repository, directoryService directory.Service, tokens *TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		users:     users,
		directory: directoryService,
		tokens:    tokens,
		hashCost:  bcrypt.DefaultCost,
		logger:    l,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("signup", zap.String("email", req.Email), zap.String("role", req.Role))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		log.Error("signup hash password failed", zap.Error(err))
		return AuthResponse{}, err
	}

	u, err := s.directory.Register(ctx, directory.NewUser{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Department:   req.Department,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return AuthResponse{}, err
	}

	resp, err := s.issue(*u)
	if err != nil {
		log.Error("signup issue token failed", zap.Error(err))
		return AuthResponse{}, err
	}

	log.Info("signup success", zap.String("user_id", u.ID.String()))
	return resp, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login unknown email", zap.String("email", email))
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		log.Error("login lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	if u.PasswordHash == "" {
		log.Warn("login account without password", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrPasswordNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("login wrong password", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	resp, err := s.issue(*u)
	if err != nil {
		log.Error("login issue token failed", zap.Error(err))
		return AuthResponse{}, err
	}

	log.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return resp, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (directory.UserResponse, error) {
	return s.directory.GetByID(ctx, userID)
}

func (s *service) issue(u directory.User) (AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(u.ID.String(), u.Role)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return AuthResponse{
		User:        directory.ToResponse(u),
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	}, nil
}
