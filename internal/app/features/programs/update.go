// internal/app/features/programs/update.go
package programs

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	programstore "github.com/aspirechess/aspirehub/internal/app/store/programs"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// Update replaces a program with the submitted payload. The payload is
// validated in full, same as create; a partial body is a client error,
// not a merge.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid program ID")
		return
	}

	var payload programPayload
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

	updated, err := programstore.New(h.DB).Replace(ctx, id, payload.toModel())
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			httpapi.NotFound(w, "Program not found")
		case errors.Is(err, programstore.ErrDocumentInvalid):
			httpapi.BadRequest(w, "Program data failed validation")
		default:
			h.Log.Error("update program", zap.String("id", id.Hex()), zap.Error(err))
			httpapi.ServerError(w, "Server error while updating program")
		}
		return
	}

	httpapi.OKMessage(w, "Program updated successfully", updated)
}
