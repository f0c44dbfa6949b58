package adspend

import (
	"net/http"

	"github.com/angelmondragon/adspend-backend/api/responses"
	"github.com/angelmondragon/adspend-backend/internal/adspend"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
)

func Metrics(service adspend.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		start, end, err := resolveMetricsRange(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.Metrics(ctx, start, end)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}
