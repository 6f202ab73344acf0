// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standard json error body returned by every endpoint.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// MessageResponse is the standard json body for mutations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}
