// internal/app/features/programs/delete.go
package programs

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	programstore "github.com/aspirechess/aspirehub/internal/app/store/programs"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// Delete permanently removes a program and its embedded batches and
// slots. There is no soft-delete here; that's what toggle-status is for.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid program ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := programstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete program", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while deleting program")
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "Program not found")
		return
	}

	httpapi.OKMessage(w, "Program deleted successfully", nil)
}
