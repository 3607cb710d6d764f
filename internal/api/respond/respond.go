// Package respond holds the tiny JSON reply helpers shared by all handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

type successResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successResponse{OK: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, successResponse{OK: true, Data: data})
}

func Fail(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{OK: false, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
