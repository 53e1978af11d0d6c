package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	applog "linkshelf/internal/log"
	"linkshelf/internal/theme"
)

type healthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Themes   int       `json:"themes"`
	Time     time.Time `json:"time"`
}

// Health reports readiness. A configured database that fails to answer a ping
// turns the response into a 503.
func Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Database: "unconfigured",
		Themes:   len(theme.Builtin().Keys()),
		Time:     time.Now().UTC(),
	}
	code := http.StatusOK

	if database != nil {
		resp.Database = "ok"
		sqlDB, err := database.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			applog.Error(r.Context(), "database health check failed", "error", err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
	}
}
