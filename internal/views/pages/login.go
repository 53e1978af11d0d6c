package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"linkshelf/internal/theme"
	"linkshelf/internal/views/layout"
)

// LoginPartial renders the owner sign-in form without the document shell.
func LoginPartial(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := `<main class="px-4 py-12"><form id="login" method="post" action="/login" hx-post="/login" hx-target="#login" hx-swap="outerHTML" class="mx-auto flex max-w-sm flex-col gap-3">` +
			`<h1 class="text-xl font-semibold">Sign in</h1>`
		if message != "" {
			out += `<p role="alert" class="text-sm text-rose-300">` + templ.EscapeString(message) + `</p>`
		}
		out += `<input type="email" name="email" placeholder="Email" required class="rounded px-3 py-2 text-black" value="` + templ.EscapeString(email) + `">` +
			`<input type="password" name="password" placeholder="Password" required class="rounded px-3 py-2 text-black">` +
			`<button type="submit" class="rounded bg-white/20 px-3 py-2">Sign in</button></form></main>`
		_, err := io.WriteString(w, out)
		return err
	})
}

// LoginPage renders the full sign-in document.
func LoginPage(message, email string) templ.Component {
	return layout.Layout("Sign in", theme.Default(), LoginPartial(message, email))
}
