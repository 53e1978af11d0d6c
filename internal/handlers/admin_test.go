package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"linkshelf/models"
)

func TestAdminRendersDashboard(t *testing.T) {
	db := withTestDatabase(t)
	profile := seedProfile(t, db, "paper")
	sm := withTestSessionManager(t)

	req := sessionRequest(t, sm, http.MethodGet, "/admin", nil)
	signIn(t, sm, req, profile)
	w := httptest.NewRecorder()
	Admin(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Archive") || !strings.Contains(body, `<option value="paper" selected>`) {
		t.Fatalf("expected all links and active theme: %s", body)
	}
}

func TestUpdateProfileThemePersistsResolvedKey(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"forest", "forest"},
		{"unknown", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			db := withTestDatabase(t)
			profile := seedProfile(t, db, "paper")
			sm := withTestSessionManager(t)

			req := sessionRequest(t, sm, http.MethodPost, "/admin/theme", url.Values{"theme": {tt.value}})
			signIn(t, sm, req, profile)
			w := httptest.NewRecorder()
			UpdateProfileTheme(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", w.Code)
			}
			var stored models.Profile
			if err := db.First(&stored, profile.ID).Error; err != nil {
				t.Fatalf("reload profile: %v", err)
			}
			if stored.Theme != tt.want {
				t.Fatalf("stored theme = %q, want %q", stored.Theme, tt.want)
			}
		})
	}
}

func TestAddLinkAppendsAtEnd(t *testing.T) {
	db := withTestDatabase(t)
	profile := seedProfile(t, db, "ocean")
	sm := withTestSessionManager(t)

	form := url.Values{"title": {"Newsletter"}, "url": {"https://letters.example.com"}}
	req := sessionRequest(t, sm, http.MethodPost, "/admin/links", form)
	signIn(t, sm, req, profile)
	w := httptest.NewRecorder()
	AddLink(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	var link models.Link
	if err := db.Where("title = ?", "Newsletter").First(&link).Error; err != nil {
		t.Fatalf("expected link to be stored: %v", err)
	}
	if link.Position != 2 || link.ProfileID != profile.ID {
		t.Fatalf("unexpected stored link: %+v", link)
	}
}

func TestAddLinkRejectsUnsafeURL(t *testing.T) {
	db := withTestDatabase(t)
	profile := seedProfile(t, db, "ocean")
	sm := withTestSessionManager(t)

	form := url.Values{"title": {"Bad"}, "url": {"javascript:alert(1)"}}
	req := sessionRequest(t, sm, http.MethodPost, "/admin/links", form)
	signIn(t, sm, req, profile)
	w := httptest.NewRecorder()
	AddLink(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteLinkOnlyTouchesOwnLinks(t *testing.T) {
	db := withTestDatabase(t)
	profile := seedProfile(t, db, "ocean")
	sm := withTestSessionManager(t)

	target := profile.Links[0].ID
	req := sessionRequest(t, sm, http.MethodPost, "/admin/links/delete", url.Values{"id": {strconv.FormatUint(uint64(target), 10)}})
	signIn(t, sm, req, profile)
	w := httptest.NewRecorder()
	DeleteLink(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	var remaining int64
	db.Model(&models.Link{}).Where("profile_id = ?", profile.ID).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("expected one remaining link, got %d", remaining)
	}

	req = sessionRequest(t, sm, http.MethodPost, "/admin/links/delete", url.Values{"id": {"9999"}})
	signIn(t, sm, req, profile)
	w = httptest.NewRecorder()
	DeleteLink(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown link, got %d", w.Code)
	}
}

func TestAdminRequiresProfileInSession(t *testing.T) {
	withTestDatabase(t)
	sm := withTestSessionManager(t)

	req := sessionRequest(t, sm, http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	Admin(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
