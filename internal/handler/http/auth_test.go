// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeJSON(handlerFunc http.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = injectNopLogger(req)

	rr := httptest.NewRecorder()
	handlerFunc(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRegister_Success(t *testing.T) {
	address := "Main st. 1"
	var received models.RegisterRequest

	h := newHandlerWithServices(&mockAuthService{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			received = req
			return models.User{
				UserID:   1,
				Name:     req.Name,
				Email:    req.Email,
				Password: "$2a$10$hashed",
				Address:  req.Address,
			}, nil
		},
	}, &mockUserService{})

	rr := executeJSON(h.register, http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret","address":"Main st. 1"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	assert.Equal(t, "Alice", received.Name)
	assert.Equal(t, "alice@example.com", received.Email)
	assert.Equal(t, "secret", received.Password)
	require.NotNil(t, received.Address)
	assert.Equal(t, address, *received.Address)

	var body models.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "User created", body.Message)
	assert.Equal(t, int64(1), body.Data.UserID)
	assert.Equal(t, "alice@example.com", body.Data.Email)
	require.NotNil(t, body.Data.Address)
	assert.Equal(t, address, *body.Data.Address)

	assert.NotContains(t, rr.Body.String(), "password")
	assert.NotContains(t, rr.Body.String(), "$2a$10$hashed")
}

func TestRegister_WithoutAddressReturnsNull(t *testing.T) {
	h := newHandlerWithServices(&mockAuthService{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 2, Name: req.Name, Email: req.Email}, nil
		},
	}, &mockUserService{})

	rr := executeJSON(h.register, http.MethodPost, "/register",
		`{"name":"Bob","email":"bob@example.com","password":"pw"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"address":null`)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "invalid JSON was passed",
		},
		{
			name: "validation failure",
			body: `{"email":"a@b.c"}`,
			registerFn: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{}, fmt.Errorf("%w: validation failed: name: is required", service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "name: is required",
		},
		{
			name: "duplicate email",
			body: `{"name":"A","email":"a@b.c","password":"p"}`,
			registerFn: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  store.ErrEmailAlreadyExists.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithServices(&mockAuthService{registerFn: tt.registerFn}, &mockUserService{})

			rr := executeJSON(h.register, http.MethodPost, "/register", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, "Internal server error", body.Message)
			assert.Contains(t, body.Error, tt.wantError)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	address := "Elm st. 5"
	var tokenFor models.User

	h := newHandlerWithServices(&mockAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			assert.Equal(t, "secret", req.Password)
			return models.User{UserID: 7, Name: "Alice", Email: req.Email, Password: "hash", Address: &address}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			tokenFor = user
			return models.Token{SignedString: "jwt-value"}, nil
		},
	}, &mockUserService{})

	rr := executeJSON(h.login, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(7), tokenFor.UserID)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "jwt-value", body.Token)
	assert.Equal(t, int64(7), body.Data.UserID)
	assert.Equal(t, "Alice", body.Data.Name)
	require.NotNil(t, body.Data.Address)
	assert.Equal(t, address, *body.Data.Address)
	assert.NotContains(t, rr.Body.String(), "password")
	assert.NotContains(t, rr.Body.String(), "email")
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
		createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
		wantStatus    int
		wantMessage   string
	}{
		{
			name:        "malformed JSON",
			body:        `not json`,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"x"}`,
			loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrUserNotFound
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name: "wrong password",
			body: `{"email":"alice@example.com","password":"bad"}`,
			loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrWrongPassword
			},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Wrong password",
		},
		{
			name: "validation failure",
			body: `{"email":"alice@example.com"}`,
			loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{}, fmt.Errorf("%w: password: is required", service.ErrInvalidDataProvided)
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name: "token signing fails",
			body: `{"email":"alice@example.com","password":"secret"}`,
			loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{UserID: 1}, nil
			},
			createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
				return models.Token{}, errors.Join(service.ErrTokenCreationFailed, errors.New("boom"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithServices(&mockAuthService{
				loginFn:       tt.loginFn,
				createTokenFn: tt.createTokenFn,
			}, &mockUserService{})

			rr := executeJSON(h.login, http.MethodPost, "/login", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rr).Message)
		})
	}
}
