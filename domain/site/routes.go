package site

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// NewRouter builds the chi router for the HTML site.
func NewRouter(h *Handler) (chi.Router, error) {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.CleanPath)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)

		r.Get("/", h.Page)
		r.Post("/screen/next", h.ScreenNext)
		r.Post("/screen/home", h.ScreenHome)

		r.Route("/demo", func(r chi.Router) {
			r.Post("/next", h.DemoNext)
			r.Post("/prev", h.DemoPrev)
			r.Post("/restart", h.DemoRestart)
			r.Get("/share/{platform}", h.Share)
			r.Get("/share-link", h.ShareLink)
		})
	})

	r.NotFound(h.NotFound)
	return r, nil
}

// RegisterRoutes mounts the site on echo as the catch-all. Echo's own routes
// (API, probes) match first.
func RegisterRoutes(e *echo.Echo, router chi.Router) {
	wrapped := echo.WrapHandler(router)
	e.Any("/", wrapped)
	e.Any("/*", wrapped)
}
