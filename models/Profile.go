package models

import (
	"sort"

	"gorm.io/gorm"
)

// Profile is the owner of a link page. The owner signs in with Email and
// PasswordHash to manage links and the page theme.
type Profile struct {
	gorm.Model
	Handle       string `gorm:"uniqueIndex;not null" json:"handle"`
	DisplayName  string `json:"display_name"`
	Bio          string `gorm:"type:text" json:"bio"`
	AvatarURL    string `json:"avatar_url"`
	Theme        string `gorm:"type:varchar(32);default:default" json:"theme"`
	Email        string `gorm:"uniqueIndex;not null" json:"-"`
	PasswordHash string `gorm:"not null" json:"-"`
	Links        []Link `gorm:"foreignKey:ProfileID" json:"links"`
}

// VisibleLinks returns the links shown on the public page ordered by position.
func (p Profile) VisibleLinks() []Link {
	visible := make([]Link, 0, len(p.Links))
	for _, link := range p.Links {
		if !link.Hidden {
			visible = append(visible, link)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Position < visible[j].Position
	})
	return visible
}

// NextPosition returns the position a newly appended link should take.
func (p Profile) NextPosition() int {
	next := 0
	for _, link := range p.Links {
		if link.Position >= next {
			next = link.Position + 1
		}
	}
	return next
}
