// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := make([]models.UserInfo, 0, len(users))
	for _, user := range users {
		data = append(data, user.Info())
	}

	if _, err = utils.WriteJSON(w, models.UserListResponse{
		Data:    data,
		Message: app.MsgUserList,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user list response")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w %q: %w", ErrInvalidUserID, rawID, err))
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf(app.MsgUserDeletedFmt, userID),
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing delete response")
	}
}
