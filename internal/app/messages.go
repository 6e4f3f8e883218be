// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable strings that go-users-api writes into
// response bodies. Clients match on some of them, so the wording is part of
// the API.
package app

const (
	// MsgTokenRequired is sent with 401 when the Authorization header is absent.
	MsgTokenRequired = "token required"

	// MsgUnauthorized is sent with 401 for a malformed header or a token that
	// fails verification.
	MsgUnauthorized = "unauthorized"

	// MsgUserNotFound is sent with 404 when login finds no user for the email.
	MsgUserNotFound = "User not found"

	// MsgWrongPassword is sent with 403 when the password does not match.
	MsgWrongPassword = "Wrong password"

	MsgInternalServerError = "Internal server error"

	MsgUserCreated = "User created"
	MsgUserList    = "User list"

	// MsgUserDeletedFmt takes the deleted user's id.
	MsgUserDeletedFmt = "User %d deleted"
)
