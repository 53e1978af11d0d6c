package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linkshelf/internal/config"
	"linkshelf/internal/theme"
)

func TestHomeRendersProfileTheme(t *testing.T) {
	db := withTestDatabase(t)
	seedProfile(t, db, "ocean")
	withTestSite(t, config.SiteConfig{Title: "Links", DefaultTheme: "default"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-theme="ocean"`) {
		t.Fatalf("expected ocean theme: %s", body)
	}
	if !strings.Contains(body, theme.Resolve("ocean").Value(theme.RoleLinksButton)) {
		t.Fatalf("expected ocean links button classes: %s", body)
	}
	if !strings.Contains(body, "Portfolio") || strings.Contains(body, "Archive") {
		t.Fatalf("expected only visible links: %s", body)
	}
}

func TestHomeThemeSelection(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		session string
		profile string
		want    string
	}{
		{name: "query preview", query: "?theme=forest", profile: "ocean", want: "forest"},
		{name: "unknown query falls back to default", query: "?theme=non-existent", profile: "ocean", want: "default"},
		{name: "case differs falls back to default", query: "?theme=OCEAN", profile: "paper", want: "default"},
		{name: "whitespace query skipped", query: "?theme=%20", profile: "forest", want: "forest"},
		{name: "padded query falls back to default", query: "?theme=%20ocean", profile: "paper", want: "default"},
		{name: "session preference", session: "midnight", profile: "ocean", want: "midnight"},
		{name: "profile theme", profile: "paper", want: "paper"},
		{name: "unknown profile theme", profile: "retired-theme", want: "default"},
		{name: "site default", profile: "", want: "sunset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := withTestDatabase(t)
			profile := seedProfile(t, db, "ocean")
			if err := db.Model(profile).Update("theme", tt.profile).Error; err != nil {
				t.Fatalf("update theme: %v", err)
			}
			withTestSite(t, config.SiteConfig{DefaultTheme: "sunset"})
			sm := withTestSessionManager(t)

			req := sessionRequest(t, sm, http.MethodGet, "/"+tt.query, nil)
			if tt.session != "" {
				sm.Put(req.Context(), sessionVisitorThemeKey, tt.session)
			}
			w := httptest.NewRecorder()
			Home(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), `data-theme="`+tt.want+`"`) {
				t.Fatalf("expected theme %q: %s", tt.want, w.Body.String())
			}
		})
	}
}

func TestHomeNotFound(t *testing.T) {
	withTestDatabase(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without profile, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	w = httptest.NewRecorder()
	Home(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", w.Code)
	}
}

func TestHomeWithoutDatabase(t *testing.T) {
	original := database
	database = nil
	t.Cleanup(func() { database = original })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without database, got %d", w.Code)
	}
}
