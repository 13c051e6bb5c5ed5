package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hallkeeper/hall-service/internal/auth"
	"github.com/hallkeeper/hall-service/internal/config"
	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/repository"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

const msgEmailTaken = "User with this email already exists."

// AuthService coordinates registration and login flows.
type AuthService struct {
	accounts      repository.AccountRepository
	tokenMgr      *auth.TokenManager
	bcryptCost    int
	adminUsername string
	adminPassword string
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
}

// SignupInput describes a new student registration.
type SignupInput struct {
	StudentID string
	DOB       string
	Email     string
	Password  string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Role      domain.Role
	StudentID string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:      deps.AccountRepo,
		tokenMgr:      auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost:    cfg.Auth.BcryptCost,
		adminUsername: cfg.Auth.AdminUsername,
		adminPassword: cfg.Auth.AdminPassword,
	}
}

// Signup creates a new student account in seat state none.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.Account, error) {
	email := strings.TrimSpace(input.Email)
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict(msgEmailTaken, nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		StudentID:    strings.TrimSpace(input.StudentID),
		DOB:          strings.TrimSpace(input.DOB),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		SeatStatus:   domain.SeatStatusNone,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("User with this email or student ID already exists.", nil)
		}
		return nil, err
	}
	return account, nil
}

// Login authenticates either the reserved admin or a stored account.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	if s.isReservedAdmin(identifier, password) {
		token, exp, err := s.tokenMgr.GenerateToken("", domain.RoleAdmin)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token, ExpiresAt: exp, Role: domain.RoleAdmin}, nil
	}

	account, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, Role: account.Role, StudentID: account.StudentID}, nil
}

func (s *AuthService) isReservedAdmin(identifier, password string) bool {
	if s.adminUsername == "" || s.adminPassword == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(identifier), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	return userOK && passOK
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
