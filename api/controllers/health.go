package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/adspend-backend/api/responses"
	"github.com/angelmondragon/adspend-backend/pkg/config"
	"github.com/angelmondragon/adspend-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/adspend-backend/pkg/errors"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
)

const readinessTimeout = 3 * time.Second

const envHeader = "X-Adspend-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, store db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store unavailable").
					WithDetails(map[string]any{"dependency": "store"}))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
