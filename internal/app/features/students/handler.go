// internal/app/features/students/handler.go

// Package students is the HTTP surface for featured students: the public
// success-stories listing and the admin CRUD behind it.
package students

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
)

// Handler provides HTTP handlers for student management.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler creates a new students Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpapi.BadRequest(w, "Invalid request payload")
		return false
	}
	return true
}
