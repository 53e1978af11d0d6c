package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"linkshelf/internal/theme"
	"linkshelf/models"
)

func write(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

func class(record *theme.Record, role theme.Role) string {
	return templ.EscapeString(record.Value(role))
}

// ProfileHeader renders the avatar, display name and bio.
func ProfileHeader(profile models.Profile, record *theme.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := profile.DisplayName
		if name == "" {
			name = "@" + profile.Handle
		}
		if err := write(w, `<header class="flex flex-col items-center gap-3 text-center">`); err != nil {
			return err
		}
		if profile.AvatarURL != "" {
			if err := write(w,
				`<img src="`, templ.EscapeString(string(templ.URL(profile.AvatarURL))),
				`" alt="`, templ.EscapeString(name), `" class="`, class(record, theme.RoleAvatar), `">`,
			); err != nil {
				return err
			}
		}
		if err := write(w, `<h1 class="`, class(record, theme.RoleName), `">`, templ.EscapeString(name), `</h1>`); err != nil {
			return err
		}
		if profile.Bio != "" {
			if err := write(w, `<p class="`, class(record, theme.RoleBio), `">`, templ.EscapeString(profile.Bio), `</p>`); err != nil {
				return err
			}
		}
		return write(w, `</header>`)
	})
}

// LinkButton renders a single outbound link styled with the links_button role.
func LinkButton(link models.Link, record *theme.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<a href="`, templ.EscapeString(string(templ.URL(link.URL))),
			`" class="`, class(record, theme.RoleLinksButton),
			`" data-link-id="`, strconv.FormatUint(uint64(link.ID), 10),
			`" rel="noopener" target="_blank">`, templ.EscapeString(link.Title), `</a>`,
		)
	})
}

// LinkList renders links in the given order.
func LinkList(links []models.Link, record *theme.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<nav class="mt-8 flex flex-col gap-3" aria-label="Links">`); err != nil {
			return err
		}
		for _, link := range links {
			if err := LinkButton(link, record).Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</nav>`)
	})
}

// ThemePicker renders a select that posts the chosen theme to action.
func ThemePicker(action string, options []theme.Option, active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<form method="post" action="`, templ.EscapeString(action), `" hx-post="`, templ.EscapeString(action),
			`" hx-swap="none" class="mt-8 flex items-center justify-center gap-2">`,
			`<label for="theme" class="text-xs opacity-70">Theme</label>`,
			`<select id="theme" name="theme" class="rounded bg-transparent text-xs" onchange="this.form.requestSubmit()">`,
		); err != nil {
			return err
		}
		for _, option := range options {
			selected := ""
			if option.Value == active {
				selected = ` selected`
			}
			if err := write(w,
				`<option value="`, templ.EscapeString(option.Value), `"`, selected, `>`,
				templ.EscapeString(option.Label), `</option>`,
			); err != nil {
				return err
			}
		}
		return write(w, `</select><noscript><button type="submit" class="text-xs underline">Apply</button></noscript></form>`)
	})
}

// Footer renders the page footer.
func Footer(text string, record *theme.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w, `<footer class="mt-10 text-center `, class(record, theme.RoleFooter), `">`, templ.EscapeString(text), `</footer>`)
	})
}
