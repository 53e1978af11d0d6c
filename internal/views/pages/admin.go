package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"linkshelf/internal/theme"
	"linkshelf/internal/views/components"
	"linkshelf/internal/views/layout"
	"linkshelf/models"
)

// AdminData feeds the owner dashboard.
type AdminData struct {
	Profile models.Profile
	Theme   *theme.Record
	Options []theme.Option
	Message string
}

// AdminPage renders the owner dashboard: theme selection and link management.
func AdminPage(data AdminData) templ.Component {
	record := data.Theme
	if record == nil {
		record = theme.Default()
	}
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<main class="mx-auto max-w-2xl px-4 py-12"><h1 class="text-2xl font-semibold">Manage @` +
			templ.EscapeString(data.Profile.Handle) + `</h1>`
		if data.Message != "" {
			head += `<p role="status" class="mt-2 text-sm">` + templ.EscapeString(data.Message) + `</p>`
		}
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := components.ThemePicker("/admin/theme", data.Options, record.Key()).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<ul class="mt-8 flex flex-col gap-2">`); err != nil {
			return err
		}
		for _, link := range data.Profile.Links {
			id := strconv.FormatUint(uint64(link.ID), 10)
			hidden := ""
			if link.Hidden {
				hidden = ` <span class="text-xs opacity-60">(hidden)</span>`
			}
			row := `<li class="flex items-center justify-between gap-4"><span>` + templ.EscapeString(link.Title) + hidden +
				` <span class="text-xs opacity-60">` + templ.EscapeString(link.URL) + `</span></span>` +
				`<form method="post" action="/admin/links/delete"><input type="hidden" name="id" value="` + id + `">` +
				`<button type="submit" class="text-xs underline">Remove</button></form></li>`
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`+
			`<form method="post" action="/admin/links" class="mt-8 flex flex-col gap-2">`+
			`<input name="title" placeholder="Title" required class="rounded px-3 py-2 text-black">`+
			`<input name="url" type="url" placeholder="https://" required class="rounded px-3 py-2 text-black">`+
			`<button type="submit" class="`+templ.EscapeString(record.Value(theme.RoleLinksButton))+`">Add link</button></form>`+
			`<form method="post" action="/logout" class="mt-8"><button type="submit" class="text-xs underline">Sign out</button></form></main>`)
		return err
	})
	return layout.Layout("Manage links", record, content)
}
