package adspend

import (
	"net/http"

	"github.com/angelmondragon/adspend-backend/api/validators"
	pkgerrors "github.com/angelmondragon/adspend-backend/pkg/errors"
	"github.com/angelmondragon/adspend-backend/pkg/types"
)

type metricsQuery struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

func resolveMetricsRange(r *http.Request) (types.Date, types.Date, error) {
	q := metricsQuery{
		Start: validators.QueryString(r, "start"),
		End:   validators.QueryString(r, "end"),
	}
	if err := validators.ValidateStruct(&q); err != nil {
		return types.Date{}, types.Date{}, err
	}

	start, err := types.ParseDate(q.Start)
	if err != nil {
		return types.Date{}, types.Date{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid start date")
	}
	end, err := types.ParseDate(q.End)
	if err != nil {
		return types.Date{}, types.Date{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid end date")
	}
	return start, end, nil
}
