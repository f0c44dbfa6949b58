package adspend

import (
	"net/http"

	"github.com/angelmondragon/adspend-backend/api/responses"
	"github.com/angelmondragon/adspend-backend/internal/adspend"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
)

func Compare30d(service adspend.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.Compare30d(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, rows)
	}
}
