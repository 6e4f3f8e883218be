// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated identity asserted by a token.
// It is derived from a [User] at login time and never contains the password.
type Identity struct {
	UserID  int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// Claims is the JWT payload: the [Identity] fields plus the standard
// registered claims (exp, iat, iss).
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted to the client.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload. It is populated both when a token is
	// generated and when one is successfully parsed.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
