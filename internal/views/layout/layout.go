package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"linkshelf/internal/theme"
)

// Layout renders the HTML document shell. The body carries the page role
// classes of record and a data-theme attribute with its key.
func Layout(title string, record *theme.Record, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if record == nil {
			record = theme.Default()
		}
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<script src="https://cdn.tailwindcss.com"></script>`+
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
			`<link rel="stylesheet" href="/assets/site.css">`+
			`</head><body class="`+templ.EscapeString(record.Value(theme.RolePage))+
			`" data-theme="`+templ.EscapeString(record.Key())+`">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
