// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterResponse is returned with 201 Created after a successful registration.
type RegisterResponse struct {
	Message string   `json:"message"`
	Data    UserInfo `json:"data"`
}

// LoginResponse carries the identity encoded in the token together with the
// signed token itself.
type LoginResponse struct {
	Data  Identity `json:"data"`
	Token string   `json:"token"`
}

// UserListResponse is returned by GET /users.
type UserListResponse struct {
	Data    []UserInfo `json:"data"`
	Message string     `json:"message"`
}

// MessageResponse is a body that carries only a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for failed requests. Error holds the underlying
// cause and is only set for internal failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
