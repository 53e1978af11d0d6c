package pages

import (
	"strings"

	"linkshelf/internal/theme"
	"linkshelf/models"
)

// ProfileData is everything the public profile page needs.
type ProfileData struct {
	Title   string
	Profile models.Profile
	Links   []models.Link
	Theme   *theme.Record
	Options []theme.Option
	// Preview is set when the theme came from a query override.
	Preview bool
	// Static pages omit the theme picker form.
	Static bool
}

// ThemeSources are the places a page theme key can come from, in priority order.
type ThemeSources struct {
	Query   string
	Session string
	Profile string
	Site    string
}

// SelectThemeKey returns the first non-blank source key and whether it came
// from the query. The key itself is returned unmodified so resolution stays exact.
// A whitespace-only source, such as ?theme=%20, counts as unset and is skipped.
func SelectThemeKey(sources ThemeSources) (string, bool) {
	if strings.TrimSpace(sources.Query) != "" {
		return sources.Query, true
	}
	for _, candidate := range []string{sources.Session, sources.Profile, sources.Site} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, false
		}
	}
	return "", false
}

// NewProfileData resolves the theme for key and collects the visible links.
func NewProfileData(title string, profile models.Profile, key string, preview bool) ProfileData {
	if strings.TrimSpace(title) == "" {
		title = profile.DisplayName
	}
	return ProfileData{
		Title:   title,
		Profile: profile,
		Links:   profile.VisibleLinks(),
		Theme:   theme.Resolve(key),
		Options: theme.Options(),
		Preview: preview,
	}
}
