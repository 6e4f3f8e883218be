// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// errorKind is the client-visible category of a failed request.
type errorKind int

const (
	kindInternal errorKind = iota
	kindMissingToken
	kindInvalidToken
	kindNotFound
	kindForbidden
)

// errorKinds is checked in order; anything unmatched is kindInternal.
var errorKinds = []struct {
	target error
	kind   errorKind
}{
	{ErrEmptyAuthorizationHeader, kindMissingToken},
	{ErrInvalidAuthorizationHeader, kindInvalidToken},
	{ErrEmptyToken, kindInvalidToken},
	{service.ErrTokenIsExpiredOrInvalid, kindInvalidToken},
	{service.ErrUserNotFound, kindNotFound},
	{service.ErrWrongPassword, kindForbidden},
}

func kindFromError(err error) errorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return kindInternal
}

func (k errorKind) status() int {
	switch k {
	case kindMissingToken, kindInvalidToken:
		return http.StatusUnauthorized
	case kindNotFound:
		return http.StatusNotFound
	case kindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (k errorKind) body(err error) models.ErrorResponse {
	switch k {
	case kindMissingToken:
		return models.ErrorResponse{Message: app.MsgTokenRequired}
	case kindInvalidToken:
		return models.ErrorResponse{Message: app.MsgUnauthorized}
	case kindNotFound:
		return models.ErrorResponse{Message: app.MsgUserNotFound}
	case kindForbidden:
		return models.ErrorResponse{Message: app.MsgWrongPassword}
	default:
		return models.ErrorResponse{Message: app.MsgInternalServerError, Error: err.Error()}
	}
}

// writeError maps err to its kind and writes the matching status and body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	kind := kindFromError(err)
	if kind == kindInternal {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", kind.status()).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, kind.body(err), kind.status()); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
