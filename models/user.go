// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account stored in the users table.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned by the database on insert.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the lookup key used during login.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password, never plaintext.
	// It is excluded from JSON so it cannot leak into responses or log lines.
	Password string `json:"-"`

	// Address is optional; nil when the user did not provide one.
	Address *string `json:"address"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Info returns the public projection of the user.
func (u User) Info() UserInfo {
	return UserInfo{
		UserID:  u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}
}

// Identity returns the subset of user fields embedded into issued tokens.
func (u User) Identity() Identity {
	return Identity{
		UserID:  u.UserID,
		Name:    u.Name,
		Address: u.Address,
	}
}

// UserInfo is the public representation of a user returned by the API.
// It never carries the password field.
type UserInfo struct {
	UserID  int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address"`
}
