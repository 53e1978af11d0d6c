// Package theme resolves immutable visual themes for the public profile page.
//
// A theme is a Record holding CSS class lists for a fixed set of roles. Records
// live in a Registry that always carries a "default" entry; resolving an
// unknown key returns that entry instead of failing.
//
//	record := theme.Resolve(profile.Theme)
//	button := record.Value(theme.RoleLinksButton)
package theme
