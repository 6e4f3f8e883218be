// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of go-users-api.
//
// It owns the listener lifecycle: startup, waiting for SIGINT, SIGTERM or
// SIGQUIT, and graceful shutdown bounded by the configured request timeout.
package server
