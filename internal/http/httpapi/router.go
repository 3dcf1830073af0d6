package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dravidKumar007/hair-Cut-Model/internal/http/handlers"
	"github.com/dravidKumar007/hair-Cut-Model/internal/middleware"
)

// NewRouter assembles the API surface and middleware chain.
func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, middleware.RequestID, middleware.Logger(app.Logger), chimw.Recoverer)
	if len(app.Config.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(app.Config.CORSAllowedOrigins))
	}
	if app.Config.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/callback", app.AuthCallback)
		r.Get("/error", app.AuthError)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session)

		r.Get("/v1/styles", app.Styles)
		r.Get("/v1/state", app.State)
		r.Put("/v1/selection", app.UpdateSelection)
		r.Post("/v1/reset", app.Reset)

		r.Post("/v1/photo", app.PhotoUpload)
		r.Delete("/v1/photo", app.PhotoClear)

		r.Route("/v1/camera", func(r chi.Router) {
			r.Post("/open", app.CameraOpen)
			r.Post("/frame", app.CameraFrame)
			r.Post("/capture", app.CameraCapture)
			r.Post("/fail", app.CameraFail)
			r.Post("/close", app.CameraClose)
		})

		r.Post("/v1/transform", app.Transform)
		r.Get("/v1/result/download", app.ResultDownload)
	})

	if app.Config.WebDir != "" {
		r.Handle("/*", stdhttp.FileServer(stdhttp.Dir(app.Config.WebDir)))
	}

	return r
}
