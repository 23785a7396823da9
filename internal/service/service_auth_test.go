// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/store"
	"github.com/etorres/go-api-scaffold/internal/utils"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
	}, logger.NewLogger("test"))
}

func TestRegisterUser_Success(t *testing.T) {
	assignedID := uuid.New()
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			require.Empty(t, user.Password, "plaintext password must not reach the repository")
			require.NotEmpty(t, user.PasswordHash)
			user.UserID = assignedID
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "john", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, assignedID, registered.UserID)
	assert.Equal(t, "john", registered.Login)
}

func TestRegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_LoginAlreadyExists(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.RegisterUser(context.Background(), models.User{Login: "john", Password: "s3cret"})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	stored := models.User{UserID: uuid.New(), Login: "john", PasswordHash: hash}
	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			require.Equal(t, "john", login)
			return stored, nil
		},
	}

	svc := newTestAuthService(repo)
	authenticated, err := svc.Login(context.Background(), models.User{Login: "john", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, stored.UserID, authenticated.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{UserID: uuid.New(), Login: "john", PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err = svc.Login(context.Background(), models.User{Login: "john", Password: "wrong"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "s3cret"})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	user := models.User{UserID: uuid.New(), Login: "john"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_ForeignIssuer(t *testing.T) {
	user := models.User{UserID: uuid.New()}

	foreign := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "other-issuer",
		TokenDuration: time.Hour,
	}, logger.NewLogger("test"))
	token, err := foreign.CreateToken(context.Background(), user)
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
