// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned fields.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns all users ordered by id. An empty table yields an
	// empty, non-nil slice.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the user with the given id or returns [ErrUserNotFound].
	DeleteUser(ctx context.Context, userID int64) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
