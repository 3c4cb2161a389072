// internal/app/features/programs/get.go
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

// Get returns one program by id, active or not.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.BadRequest(w, "Invalid program ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := programstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpapi.NotFound(w, "Program not found")
			return
		}
		h.Log.Error("get program", zap.String("id", id.Hex()), zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching program")
		return
	}
	httpapi.OK(w, p)
}
