// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the service's transport.
type Server interface {
	// RunServer serves requests until a stop signal arrives, then shuts
	// down gracefully. It returns an error only if the listener fails.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
