package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"linkshelf/internal/db"
	applog "linkshelf/internal/log"
	"linkshelf/internal/theme"
	"linkshelf/internal/views/pages"
)

// Home renders the public profile page under the selected theme.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if database == nil {
		http.Error(w, "profile storage not available", http.StatusServiceUnavailable)
		return
	}

	profile, err := db.LoadProfile(r.Context(), database, site.Handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Debug(r.Context(), "no profile to render", "handle", site.Handle)
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load profile", "error", err)
		http.Error(w, "unable to load profile", http.StatusInternalServerError)
		return
	}

	key, preview := pages.SelectThemeKey(pages.ThemeSources{
		Query:   r.URL.Query().Get("theme"),
		Session: sessionTheme(r),
		Profile: profile.Theme,
		Site:    site.DefaultTheme,
	})
	if _, ok := theme.Builtin().Lookup(key); !ok {
		applog.Debug(r.Context(), "theme key not registered, using default", "key", key)
	}

	data := pages.NewProfileData(site.Title, *profile, key, preview)
	ctx := applog.WithAttrs(r.Context(), "theme", data.Theme.Key())
	applog.Debug(ctx, "rendering profile page", "links", len(data.Links), "preview", preview)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ProfilePage(data).Render(ctx, w); err != nil {
		applog.Error(ctx, "failed to render profile page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
