package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"linkshelf/internal/theme"
	"linkshelf/internal/views/components"
	"linkshelf/internal/views/layout"
)

// ProfilePage renders the public link page.
func ProfilePage(data ProfileData) templ.Component {
	record := data.Theme
	if record == nil {
		record = theme.Default()
	}
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="px-4 py-12"><section class="`+
			templ.EscapeString(record.Value(theme.RoleCard))+`">`); err != nil {
			return err
		}
		if data.Preview {
			if _, err := io.WriteString(w, `<p class="mb-4 text-center text-xs uppercase tracking-widest opacity-70">Previewing `+
				templ.EscapeString(record.Label())+`</p>`); err != nil {
				return err
			}
		}
		if err := components.ProfileHeader(data.Profile, record).Render(ctx, w); err != nil {
			return err
		}
		if err := components.LinkList(data.Links, record).Render(ctx, w); err != nil {
			return err
		}
		if !data.Static {
			if err := components.ThemePicker("/preferences/theme", data.Options, record.Key()).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := components.Footer(data.Title, record).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section></main>`)
		return err
	})
	return layout.Layout(data.Title, record, content)
}
