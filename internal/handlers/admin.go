package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	applog "linkshelf/internal/log"
	"linkshelf/internal/theme"
	"linkshelf/internal/views/pages"
	"linkshelf/models"
)

func loadCurrentProfile(r *http.Request) (*models.Profile, error) {
	if sessionManager == nil || database == nil {
		return nil, errors.New("admin dependencies not configured")
	}
	id := sessionManager.GetInt(r.Context(), sessionProfileIDKey)
	if id <= 0 {
		return nil, errors.New("no profile in session")
	}

	profile := &models.Profile{}
	err := database.WithContext(r.Context()).
		Preload("Links", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC").Order("id ASC") }).
		First(profile, id).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func flashAdmin(r *http.Request, message string) {
	if sessionManager != nil {
		sessionManager.Put(r.Context(), sessionAdminMessageKey, message)
	}
}

// Admin renders the owner dashboard.
func Admin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	profile, err := loadCurrentProfile(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current profile", "error", err)
		http.Error(w, "unable to load profile", http.StatusUnauthorized)
		return
	}

	data := pages.AdminData{
		Profile: *profile,
		Theme:   theme.Resolve(profile.Theme),
		Options: theme.Options(),
		Message: sessionManager.PopString(r.Context(), sessionAdminMessageKey),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.AdminPage(data).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render admin page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateProfileTheme persists the page theme for the signed-in owner.
func UpdateProfileTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	profile, err := loadCurrentProfile(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current profile for theme update", "error", err)
		http.Error(w, "unable to load profile", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeConfig := theme.Resolve(r.FormValue("theme"))
	applog.Debug(r.Context(), "updating profile theme", "profileID", profile.ID, "theme", themeConfig.Key())
	if err := database.WithContext(r.Context()).Model(profile).Update("theme", themeConfig.Key()).Error; err != nil {
		applog.Error(r.Context(), "failed to persist profile theme", "error", err)
		http.Error(w, "failed to save theme", http.StatusInternalServerError)
		return
	}

	flashAdmin(r, "Theme set to "+themeConfig.Label()+".")
	redirectTo(w, r, "/admin")
}

// AddLink appends a link to the owner's profile.
func AddLink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	profile, err := loadCurrentProfile(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current profile for new link", "error", err)
		http.Error(w, "unable to load profile", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	rawURL := strings.TrimSpace(r.PostFormValue("url"))
	if title == "" || !models.ValidLinkURL(rawURL) {
		applog.Debug(r.Context(), "rejected link submission", "titlePresent", title != "", "url", rawURL)
		http.Error(w, "a title and an http(s) URL are required", http.StatusBadRequest)
		return
	}

	link := &models.Link{
		ProfileID: profile.ID,
		Title:     title,
		URL:       rawURL,
		Position:  profile.NextPosition(),
	}
	if err := database.WithContext(r.Context()).Create(link).Error; err != nil {
		applog.Error(r.Context(), "failed to create link", "error", err)
		http.Error(w, "failed to save link", http.StatusInternalServerError)
		return
	}

	applog.Info(r.Context(), "link added", "profileID", profile.ID, "linkID", link.ID)
	flashAdmin(r, "Added "+title+".")
	redirectTo(w, r, "/admin")
}

// DeleteLink removes one of the owner's links.
func DeleteLink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	profile, err := loadCurrentProfile(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current profile for link removal", "error", err)
		http.Error(w, "unable to load profile", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseUint(r.PostFormValue("id"), 10, 64)
	if err != nil || id == 0 {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}

	result := database.WithContext(r.Context()).
		Where("id = ? AND profile_id = ?", id, profile.ID).
		Delete(&models.Link{})
	if result.Error != nil {
		applog.Error(r.Context(), "failed to delete link", "error", result.Error)
		http.Error(w, "failed to delete link", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.NotFound(w, r)
		return
	}

	flashAdmin(r, "Link removed.")
	redirectTo(w, r, "/admin")
}
