package validators

import (
	"net/http"
)

const maxQueryValueLen = 64

// QueryString returns the trimmed, length-capped value of a query parameter.
func QueryString(r *http.Request, key string) string {
	return SanitizeString(r.URL.Query().Get(key), maxQueryValueLen)
}
