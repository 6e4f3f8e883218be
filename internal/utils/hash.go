// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt cost used when the configured one is out of range.
const DefaultPasswordCost = 10

// HashPassword returns the bcrypt hash of plaintext. Every call uses a fresh
// random salt, so two hashes of the same password differ.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [DefaultPasswordCost]. An empty plaintext returns [ErrEmptyPassword].
func HashPassword(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the bcrypt hash.
// A malformed hash is reported as a mismatch.
func CheckPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
