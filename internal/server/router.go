package server

import (
	"context"
	"net/http"

	"linkshelf/internal/handlers"
	applog "linkshelf/internal/log"
	"linkshelf/web"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	routes := []struct {
		path      string
		handler   http.Handler
		protected bool
	}{
		{path: "/healthz", handler: http.HandlerFunc(handlers.Health)},
		{path: "/themes", handler: http.HandlerFunc(handlers.Themes)},
		{path: "/preferences/theme", handler: http.HandlerFunc(handlers.UpdatePreferences)},
		{path: "/login", handler: http.HandlerFunc(handlers.Login)},
		{path: "/logout", handler: http.HandlerFunc(handlers.Logout)},
		{path: "/admin", handler: http.HandlerFunc(handlers.Admin), protected: true},
		{path: "/admin/theme", handler: http.HandlerFunc(handlers.UpdateProfileTheme), protected: true},
		{path: "/admin/links", handler: http.HandlerFunc(handlers.AddLink), protected: true},
		{path: "/admin/links/delete", handler: http.HandlerFunc(handlers.DeleteLink), protected: true},
		{path: "/", handler: http.HandlerFunc(handlers.Home)},
	}
	for _, route := range routes {
		handler := route.handler
		if route.protected {
			handler = handlers.RequireAuthentication(handler)
		}
		mux.Handle(route.path, handler)
		applog.Debug(context.Background(), "route registered", "path", route.path, "protected", route.protected)
	}

	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(web.Assets()))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
