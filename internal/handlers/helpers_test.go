package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkshelf/internal/config"
	"linkshelf/models"
)

const (
	testEmail    = "owner@example.com"
	testPassword = "password123"
)

func withTestSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	original := sessionManager
	sm := scs.New()
	sessionManager = sm
	t.Cleanup(func() {
		sessionManager = original
	})
	return sm
}

func withTestSite(t *testing.T, cfg config.SiteConfig) {
	t.Helper()
	original := site
	site = cfg
	t.Cleanup(func() {
		site = original
	})
}

func withTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	original := database
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&models.Profile{}, &models.Link{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	database = db
	t.Cleanup(func() {
		database = original
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, themeKey string) *models.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	profile := &models.Profile{
		Handle:       "owner",
		DisplayName:  "Owner Name",
		Theme:        themeKey,
		Email:        testEmail,
		PasswordHash: string(hash),
		Links: []models.Link{
			{Title: "Portfolio", URL: "https://portfolio.example.com", Position: 0},
			{Title: "Archive", URL: "https://archive.example.com", Position: 1, Hidden: true},
		},
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return profile
}

// sessionRequest builds a request whose context carries a loaded scs session.
func sessionRequest(t *testing.T, sm *scs.SessionManager, method, target string, form url.Values) *http.Request {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	return req.WithContext(ctx)
}

func signIn(t *testing.T, sm *scs.SessionManager, req *http.Request, profile *models.Profile) {
	t.Helper()
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	sm.Put(req.Context(), sessionProfileIDKey, int(profile.ID))
}
