// internal/app/features/tournaments/crud.go
package tournaments

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	tournamentstore "github.com/aspirechess/aspirehub/internal/app/store/tournaments"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// Get returns one tournament by id, active or not.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid tournament ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := tournamentstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpapi.NotFound(w, "Tournament not found")
			return
		}
		h.Log.Error("get tournament", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching tournament")
		return
	}
	httpapi.OK(w, t)
}

// Create adds a new tournament listing.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload tournamentPayload
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

	created, err := tournamentstore.New(h.DB).Create(ctx, payload.toModel())
	if err != nil {
		if errors.Is(err, tournamentstore.ErrDocumentInvalid) {
			httpapi.BadRequest(w, "Tournament data failed validation")
			return
		}
		h.Log.Error("create tournament", zap.Error(err))
		httpapi.ServerError(w, "Server error while creating tournament")
		return
	}

	httpapi.Created(w, "Tournament created successfully", created)
}

// Update replaces a tournament with the submitted payload.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid tournament ID")
		return
	}

	var payload tournamentPayload
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

	updated, err := tournamentstore.New(h.DB).Replace(ctx, id, payload.toModel())
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			httpapi.NotFound(w, "Tournament not found")
		case errors.Is(err, tournamentstore.ErrDocumentInvalid):
			httpapi.BadRequest(w, "Tournament data failed validation")
		default:
			h.Log.Error("update tournament", zap.String("id", id.Hex()), zap.Error(err))
			httpapi.ServerError(w, "Server error while updating tournament")
		}
		return
	}

	httpapi.OKMessage(w, "Tournament updated successfully", updated)
}

// ToggleStatus flips a tournament between listed and hidden.
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid tournament ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := tournamentstore.New(h.DB).ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpapi.NotFound(w, "Tournament not found")
			return
		}
		h.Log.Error("toggle tournament status", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while updating tournament status")
		return
	}

	msg := "Tournament deactivated successfully"
	if t.IsActive {
		msg = "Tournament activated successfully"
	}
	httpapi.OKMessage(w, msg, t)
}

// Delete permanently removes a tournament listing.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid tournament ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := tournamentstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete tournament", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while deleting tournament")
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "Tournament not found")
		return
	}

	httpapi.OKMessage(w, "Tournament deleted successfully", nil)
}
