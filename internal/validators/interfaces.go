// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads before they reach the
// auth service. Rules are declared as `validate` struct tags on the request
// models and evaluated by go-playground/validator.
package validators

import "context"

// Validator checks a request value. When fields are given, only those
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
