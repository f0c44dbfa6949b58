package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/adspend-backend/api/controllers"
	spendcontrollers "github.com/angelmondragon/adspend-backend/api/controllers/adspend"
	"github.com/angelmondragon/adspend-backend/api/middleware"
	"github.com/angelmondragon/adspend-backend/internal/adspend"
	"github.com/angelmondragon/adspend-backend/pkg/config"
	"github.com/angelmondragon/adspend-backend/pkg/db"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
	"github.com/angelmondragon/adspend-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store db.Pinger,
	spendService adspend.Service,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Instrument(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	r.Post("/ingest", spendcontrollers.Ingest(spendService, cfg.Ingest.MaxUploadBytes(), logg))
	r.Get("/metrics", spendcontrollers.Metrics(spendService, logg))
	r.Get("/bounds", spendcontrollers.Bounds(spendService, logg))
	r.Get("/compare_30d", spendcontrollers.Compare30d(spendService, logg))

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
