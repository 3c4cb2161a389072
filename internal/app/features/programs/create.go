// internal/app/features/programs/create.go
package programs

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	programstore "github.com/aspirechess/aspirehub/internal/app/store/programs"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// Create adds a new program from an admin payload.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
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

	created, err := programstore.New(h.DB).Create(ctx, payload.toModel())
	if err != nil {
		if errors.Is(err, programstore.ErrDocumentInvalid) {
			httpapi.BadRequest(w, "Program data failed validation")
			return
		}
		h.Log.Error("create program", zap.Error(err))
		httpapi.ServerError(w, "Server error while creating program")
		return
	}

	httpapi.Created(w, "Program created successfully", created)
}
