// internal/app/features/programs/status.go
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

// ToggleStatus flips a program between active and inactive. The record
// stays intact either way; inactive just hides it from the public list.
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid program ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := programstore.New(h.DB).ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpapi.NotFound(w, "Program not found")
			return
		}
		h.Log.Error("toggle program status", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while updating program status")
		return
	}

	msg := "Program deactivated successfully"
	if p.IsActive {
		msg = "Program activated successfully"
	}
	httpapi.OKMessage(w, msg, p)
}
