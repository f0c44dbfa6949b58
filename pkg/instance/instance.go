package instance

import (
	"os"

	"github.com/angelmondragon/adspend-backend/pkg/env"
)

// ID identifies this process in logs: DYNO when set, otherwise the hostname.
func ID() string {
	if id := env.Get("DYNO", ""); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
