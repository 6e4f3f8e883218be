// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/mock"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "test-issuer",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig(), logger.Nop()), repo
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	address := "Jl. Merdeka 1"

	t.Run("hashes password and persists user", func(t *testing.T) {
		svc, repo := newTestAuthService(t)

		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "Budi", u.Name)
				assert.Equal(t, "budi@example.com", u.Email)
				assert.Equal(t, &address, u.Address)
				assert.NotEqual(t, "rahasia", u.Password)
				assert.True(t, utils.CheckPassword("rahasia", u.Password))

				u.UserID = 1
				return u, nil
			})

		user, err := svc.RegisterUser(ctx, models.RegisterRequest{
			Name: "Budi", Email: "budi@example.com", Password: "rahasia", Address: &address,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
	})

	t.Run("empty password", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Budi", Email: "budi@example.com"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "pw"})
		require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("rahasia", bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 5, Name: "Budi", Email: "budi@example.com", Password: hashed}

	tests := []struct {
		name     string
		password string
		repoUser models.User
		repoErr  error
		wantErr  error
	}{
		{name: "success", password: "rahasia", repoUser: stored},
		{name: "wrong password", password: "salah", repoUser: stored, wantErr: ErrWrongPassword},
		{name: "unknown email", password: "rahasia", repoErr: store.ErrUserNotFound, wantErr: ErrUserNotFound},
		{name: "store failure", password: "rahasia", repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			repo.EXPECT().FindUserByEmail(ctx, "budi@example.com").Return(tt.repoUser, tt.repoErr)

			user, err := svc.Login(ctx, models.LoginRequest{Email: "budi@example.com", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, user)
		})
	}

	t.Run("store failure is not reported as not found", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, errors.New("db down"))

		_, err := svc.Login(ctx, models.LoginRequest{Email: "budi@example.com", Password: "x"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)
	address := "Bandung"
	user := models.User{UserID: 9, Name: "Siti", Email: "siti@example.com", Password: "hash", Address: &address}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.Identity(), parsed.Claims.Identity)
	assert.Equal(t, "test-issuer", parsed.Claims.Issuer)
}

func TestAuthService_CreateToken_Failure(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_CollapsesFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "other-key"
	forged, err := NewAuthService(nil, otherCfg, logger.Nop()).CreateToken(ctx, models.User{UserID: 1})
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		Identity: models.Identity{UserID: 1},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("test-sign-key"))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage": "abc",
		"forged":  forged.SignedString,
		"expired": expired,
		"empty":   "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.Equal(t, ErrTokenIsExpiredOrInvalid, err)
		})
	}
}
