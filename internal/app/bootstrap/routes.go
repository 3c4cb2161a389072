// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	healthfeature "github.com/aspirechess/aspirehub/internal/app/features/health"
	programsfeature "github.com/aspirechess/aspirehub/internal/app/features/programs"
	studentsfeature "github.com/aspirechess/aspirehub/internal/app/features/students"
	tournamentsfeature "github.com/aspirechess/aspirehub/internal/app/features/tournaments"
	"github.com/aspirechess/aspirehub/internal/app/system/auth"
	"github.com/aspirechess/aspirehub/internal/app/system/metrics"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. It mounts the public and admin
// API routers plus the health and metrics endpoints.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier := auth.NewVerifier(appCfg.AuthJWTSecret)

	r := chi.NewRouter()
	r.Use(metrics.Middleware)

	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Mount("/programs", programsfeature.Routes(programsfeature.NewHandler(deps.MongoDatabase, logger), verifier))
		r.Mount("/students", studentsfeature.Routes(studentsfeature.NewHandler(deps.MongoDatabase, logger), verifier))
		r.Mount("/tournaments", tournamentsfeature.Routes(tournamentsfeature.NewHandler(deps.MongoDatabase, logger), verifier))
	})

	return r, nil
}
