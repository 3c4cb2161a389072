// internal/app/features/programs/handler.go

// Package programs is the HTTP surface for the academy's training
// programs: the public listing the site renders, and the admin CRUD the
// dashboard drives.
package programs

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
)

// Handler provides HTTP handlers for program management.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler creates a new programs Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// decodeJSON reads the request body into dst. On failure it writes a 400
// and returns false; handlers just return.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpapi.BadRequest(w, "Invalid request payload")
		return false
	}
	return true
}
