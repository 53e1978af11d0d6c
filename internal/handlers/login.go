package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	applog "linkshelf/internal/log"
	"linkshelf/internal/views/pages"
)

const (
	msgMissingCredentials = "Email and password are required."
	msgInvalidCredentials = "Invalid email or password. Please try again."
	msgSignInFailed       = "We were unable to sign you in. Please try again."
)

type credentials struct {
	email    string
	password string
}

func readCredentials(r *http.Request) (credentials, error) {
	if err := r.ParseForm(); err != nil {
		return credentials{}, err
	}
	return credentials{
		email:    strings.TrimSpace(r.PostFormValue("email")),
		password: r.PostFormValue("password"),
	}, nil
}

// Login serves the owner sign-in page.
func Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		showLogin(w, r)
	case http.MethodPost:
		submitLogin(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func showLogin(w http.ResponseWriter, r *http.Request) {
	if ActiveSession(r) {
		redirectTo(w, r, returnPath(r))
		return
	}
	var message string
	if sessionManager != nil {
		message = sessionManager.PopString(r.Context(), sessionLoginMessageKey)
	}
	renderLogin(w, r, message, "")
}

func submitLogin(w http.ResponseWriter, r *http.Request) {
	if sessionManager == nil || database == nil {
		http.Error(w, "authentication not available", http.StatusServiceUnavailable)
		return
	}

	creds, err := readCredentials(r)
	if err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	if creds.email == "" || creds.password == "" {
		renderLogin(w, r, msgMissingCredentials, creds.email)
		return
	}

	ctx := r.Context()
	profile, err := authenticate(ctx, creds.email, creds.password)
	switch {
	case errors.Is(err, errInvalidCredentials):
		applog.Info(ctx, "owner sign-in rejected", "email", strings.ToLower(creds.email))
		renderLogin(w, r, msgInvalidCredentials, creds.email)
		return
	case err != nil:
		applog.Error(ctx, "owner sign-in failed", "error", err)
		renderLogin(w, r, msgSignInFailed, creds.email)
		return
	}

	if err := establishSession(ctx, profile); err != nil {
		applog.Error(ctx, "failed to establish session", "error", err)
		renderLogin(w, r, msgSignInFailed, creds.email)
		return
	}

	applog.Info(ctx, "owner signed in", "handle", profile.Handle)
	redirectTo(w, r, returnPath(r))
}

func renderLogin(w http.ResponseWriter, r *http.Request, message, email string) {
	var component templ.Component = pages.LoginPage(message, email)
	if isHTMX(r) {
		component = pages.LoginPartial(message, email)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render login page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}
