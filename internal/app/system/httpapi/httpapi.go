// internal/app/system/httpapi/httpapi.go

// Package httpapi writes the JSON response envelope used by every API
// endpoint. All bodies carry a "success" boolean; error bodies carry a
// "message" and, for validation failures, an "errors" array of
// {field,message} entries.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/aspirechess/aspirehub/internal/app/system/inputval"
)

// ListEnvelope is the success body for unpaginated list endpoints.
type ListEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// PageEnvelope is the success body for paginated admin list endpoints.
type PageEnvelope struct {
	Success     bool  `json:"success"`
	Count       int   `json:"count"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Data        any   `json:"data"`
}

type dataEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Errors  []inputval.FieldError `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a 200 with data and no message.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, dataEnvelope{Success: true, Data: data})
}

// OKMessage writes a 200 with a message and optional data.
func OKMessage(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusOK, dataEnvelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 with a message and the created record.
func Created(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusCreated, dataEnvelope{Success: true, Message: message, Data: data})
}

// List writes a 200 list envelope. count should be len of the slice in data.
func List(w http.ResponseWriter, count int, data any) {
	write(w, http.StatusOK, ListEnvelope{Success: true, Count: count, Data: data})
}

// Page writes a 200 paginated envelope.
func Page(w http.ResponseWriter, count int, total int64, totalPages, currentPage int, data any) {
	write(w, http.StatusOK, PageEnvelope{
		Success:     true,
		Count:       count,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Data:        data,
	})
}

// BadRequest writes a 400 with a message and no field errors.
func BadRequest(w http.ResponseWriter, message string) {
	write(w, http.StatusBadRequest, errorEnvelope{Message: message})
}

// ValidationFailed writes a 400 carrying every accumulated field error.
func ValidationFailed(w http.ResponseWriter, message string, errs []inputval.FieldError) {
	write(w, http.StatusBadRequest, errorEnvelope{Message: message, Errors: errs})
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	write(w, http.StatusUnauthorized, errorEnvelope{Message: message})
}

// Forbidden writes a 403.
func Forbidden(w http.ResponseWriter, message string) {
	write(w, http.StatusForbidden, errorEnvelope{Message: message})
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, message string) {
	write(w, http.StatusNotFound, errorEnvelope{Message: message})
}

// ServerError writes a 500.
func ServerError(w http.ResponseWriter, message string) {
	write(w, http.StatusInternalServerError, errorEnvelope{Message: message})
}
