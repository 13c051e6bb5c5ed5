package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hallkeeper/hall-service/internal/auth"
	"github.com/hallkeeper/hall-service/internal/config"
	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/repository/mocks"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

func testConfig() config.Config {
	return config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4,
		AdminUsername:         "warden",
		AdminPassword:         "121&123",
	}}
}

func newAuthService(repo *mocks.AccountRepository) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{AccountRepo: repo})
}

func storedAccount(t *testing.T, password string) *domain.Account {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return &domain.Account{
		ID:           "6f1c2f4e-8d55-4f7a-9d43-0f6f8f0d8a11",
		StudentID:    "S-1001",
		Email:        "ana@hall.test",
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		SeatStatus:   domain.SeatStatusNone,
	}
}

func TestSignupHashesPassword(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := newAuthService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ana@hall.test").Return(nil, pgx.ErrNoRows)
	repo.On("Create", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.PasswordHash != "s3cret" &&
			auth.ComparePassword(a.PasswordHash, "s3cret") == nil &&
			a.Role == domain.RoleStudent &&
			a.SeatStatus == domain.SeatStatusNone
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Account).ID = "new-id"
	}).Return(nil)

	account, err := svc.Signup(ctx, SignupInput{StudentID: "S-1001", DOB: "2001-02-03", Email: " ana@hall.test ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", account.ID)
	assert.Equal(t, "ana@hall.test", account.Email)
	repo.AssertExpectations(t)
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := newAuthService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ana@hall.test").Return(storedAccount(t, "x"), nil)

	_, err := svc.Signup(ctx, SignupInput{StudentID: "S-2", DOB: "d", Email: "ana@hall.test", Password: "p"})
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "CONFLICT", de.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupMapsUniqueViolation(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := newAuthService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ana@hall.test").Return(nil, pgx.ErrNoRows)
	repo.On("Create", ctx, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

	_, err := svc.Signup(ctx, SignupInput{StudentID: "S-1001", DOB: "d", Email: "ana@hall.test", Password: "p"})
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestLoginStudent(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := newAuthService(repo)
	ctx := context.Background()
	stored := storedAccount(t, "s3cret")

	repo.On("GetByEmail", ctx, "ana@hall.test").Return(stored, nil)

	result, err := svc.Login(ctx, "ana@hall.test", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, result.Role)
	assert.Equal(t, "S-1001", result.StudentID)

	claims, err := svc.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := newAuthService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ana@hall.test").Return(storedAccount(t, "s3cret"), nil)
	repo.On("GetByEmail", ctx, "ghost@hall.test").Return(nil, pgx.ErrNoRows)

	_, wrongPassword := svc.Login(ctx, "ana@hall.test", "nope")
	_, unknownUser := svc.Login(ctx, "ghost@hall.test", "s3cret")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	a, b := apperrors.ToDomainError(wrongPassword), apperrors.ToDomainError(unknownUser)
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, a.HTTPStatus, b.HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, a.HTTPStatus)
}

func TestLoginStoreFailureIsNotCredentialsError(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := newAuthService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ana@hall.test").Return(nil, errors.New("db down"))

	_, err := svc.Login(ctx, "ana@hall.test", "s3cret")
	assert.Equal(t, http.StatusInternalServerError, apperrors.ToDomainError(err).HTTPStatus)
}

func TestLoginReservedAdminSkipsStore(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := newAuthService(repo)

	result, err := svc.Login(context.Background(), "warden", "121&123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.Role)
	assert.Empty(t, result.StudentID)

	claims, err := svc.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Empty(t, claims.UserID)
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestLoginReservedAdminDisabledWithoutSecret(t *testing.T) {
	repo := new(mocks.AccountRepository)
	cfg := testConfig()
	cfg.Auth.AdminPassword = ""
	svc := NewAuthService(cfg, AuthDependencies{AccountRepo: repo})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "warden").Return(nil, pgx.ErrNoRows)

	_, err := svc.Login(ctx, "warden", "")
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)
}
