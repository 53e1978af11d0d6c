package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"linkshelf/internal/config"
	applog "linkshelf/internal/log"
	"linkshelf/models"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionLoginMessageKey  = "auth:message"
	sessionProfileIDKey     = "auth:profile:id"
	sessionReturnPathKey    = "auth:return"
	sessionAdminMessageKey  = "admin:message"
	sessionVisitorThemeKey  = "visitor:theme"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	site           config.SiteConfig
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB, siteCfg config.SiteConfig) {
	sessionManager = sm
	database = db
	site = siteCfg
}

func findProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	profile := &models.Profile{}
	err := database.WithContext(ctx).Where("lower(email) = ?", strings.ToLower(email)).First(profile).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}

var errInvalidCredentials = errors.New("invalid email or password")

// authenticate returns the owner profile matching email and password.
// Unknown emails and wrong passwords both yield errInvalidCredentials.
func authenticate(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := findProfileByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	return profile, nil
}

func establishSession(ctx context.Context, profile *models.Profile) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}
	if err := sessionManager.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session token: %w", err)
	}
	sessionManager.Put(ctx, sessionAuthenticatedKey, true)
	sessionManager.Put(ctx, sessionProfileIDKey, int(profile.ID))
	return nil
}

// RequireAuthentication sends visitors without an owner session to the
// sign-in page and remembers where they were headed.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			rememberReturnPath(r)
			redirectTo(w, r, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func rememberReturnPath(r *http.Request) {
	if sessionManager == nil || r.Method != http.MethodGet || isHTMX(r) {
		return
	}
	sessionManager.Put(r.Context(), sessionReturnPathKey, r.URL.RequestURI())
	sessionManager.Put(r.Context(), sessionLoginMessageKey, "Sign in to manage your page.")
}

// returnPath pops the remembered destination, falling back to /admin for
// anything that is not a local path.
func returnPath(r *http.Request) string {
	const fallback = "/admin"
	if sessionManager == nil {
		return fallback
	}
	target := sessionManager.PopString(r.Context(), sessionReturnPathKey)
	if !localPath(target) || strings.HasPrefix(target, "/login") {
		return fallback
	}
	return target
}

func localPath(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}
	u, err := url.Parse(target)
	return err == nil && u.Scheme == "" && u.Host == ""
}

// Logout destroys the current session and redirects to the public page.
func Logout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sessionManager != nil {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}

	redirectTo(w, r, "/")
}

func redirectTo(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// ActiveSession returns true when the current request has an authenticated owner session.
func ActiveSession(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionAuthenticatedKey) && sessionManager.GetInt(r.Context(), sessionProfileIDKey) > 0
}

func sessionTheme(r *http.Request) string {
	if sessionManager == nil {
		return ""
	}
	return sessionManager.GetString(r.Context(), sessionVisitorThemeKey)
}

func setSessionTheme(r *http.Request, key string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionVisitorThemeKey, key)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}
