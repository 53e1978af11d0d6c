package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "linkshelf/internal/log"
	"linkshelf/internal/theme"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
}

// UpdatePreferences stores the visitor's theme choice in their session. Unknown
// theme keys are stored as the default theme.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := r.FormValue("theme")
	themeConfig := theme.Resolve(themeValue)
	applog.Debug(r.Context(), "visitor theme selected", "value", themeValue, "theme", themeConfig.Key())

	setSessionTheme(r, themeConfig.Key())

	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
	} else if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	response := preferencesResponse{Theme: themeConfig.Key()}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		applog.Error(r.Context(), "failed to encode preferences response", "error", err)
	}
}

// Themes lists the selectable themes as JSON.
func Themes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(theme.Options()); err != nil {
		applog.Error(r.Context(), "failed to encode theme options", "error", err)
	}
}
