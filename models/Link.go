package models

import (
	"net/url"
	"strings"

	"gorm.io/gorm"
)

// Link is a single button on a profile page.
type Link struct {
	gorm.Model
	ProfileID uint   `gorm:"index;not null" json:"profile_id"`
	Title     string `gorm:"not null" json:"title"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `gorm:"not null;default:0" json:"position"`
	Hidden    bool   `gorm:"not null;default:false" json:"hidden"`
}

// ValidLinkURL reports whether raw is an absolute http or https URL with a host.
func ValidLinkURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return false
	}
	return parsed.Host != ""
}
