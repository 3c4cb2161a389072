// internal/app/features/students/crud.go
package students

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	studentstore "github.com/aspirechess/aspirehub/internal/app/store/students"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// Get returns one student by id, active or not.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := studentstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpapi.NotFound(w, "Student not found")
			return
		}
		h.Log.Error("get student", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching student")
		return
	}
	httpapi.OK(w, st)
}

// Create adds a new featured student.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload studentPayload
	if !decodeJSON(w, r, &payload) {
		return
	}
	payload.normalize()

	if res := payload.validate(); res.HasErrors() {
		httpapi.ValidationFailed(w, "Validation failed", res.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := studentstore.New(h.DB).Create(ctx, payload.toModel())
	if err != nil {
		if errors.Is(err, studentstore.ErrDocumentInvalid) {
			httpapi.BadRequest(w, "Student data failed validation")
			return
		}
		h.Log.Error("create student", zap.Error(err))
		httpapi.ServerError(w, "Server error while creating student")
		return
	}

	httpapi.Created(w, "Student created successfully", created)
}

// Update replaces a student record with the submitted payload.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid student ID")
		return
	}

	var payload studentPayload
	if !decodeJSON(w, r, &payload) {
		return
	}
	payload.normalize()

	if res := payload.validate(); res.HasErrors() {
		httpapi.ValidationFailed(w, "Validation failed", res.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := studentstore.New(h.DB).Replace(ctx, id, payload.toModel())
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			httpapi.NotFound(w, "Student not found")
		case errors.Is(err, studentstore.ErrDocumentInvalid):
			httpapi.BadRequest(w, "Student data failed validation")
		default:
			h.Log.Error("update student", zap.String("id", id.Hex()), zap.Error(err))
			httpapi.ServerError(w, "Server error while updating student")
		}
		return
	}

	httpapi.OKMessage(w, "Student updated successfully", updated)
}

// ToggleStatus flips a student between shown and hidden.
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := studentstore.New(h.DB).ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpapi.NotFound(w, "Student not found")
			return
		}
		h.Log.Error("toggle student status", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while updating student status")
		return
	}

	msg := "Student deactivated successfully"
	if st.IsActive {
		msg = "Student activated successfully"
	}
	httpapi.OKMessage(w, msg, st)
}

// Delete permanently removes a student record.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := studentstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete student", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while deleting student")
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "Student not found")
		return
	}

	httpapi.OKMessage(w, "Student deleted successfully", nil)
}
