// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	ErrEmptyPassword      = errors.New("password is empty")
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
)
