// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, password hashing,
// HTTP response writing, trace ID generation, JWT token generation
// and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key used to store the authenticated token claims in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, token.Claims)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the authenticated claims from the context.
//
// ok is false when the value is missing, nil, or has an unexpected type.
func GetClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
