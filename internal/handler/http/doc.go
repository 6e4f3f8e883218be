// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the users API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging and CORS
// are handled in this package before requests are delegated to the service
// layer. Every error is mapped to a status code and JSON body in one place
// (errors_mapper.go).
package http
