package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mgarridov/wraps-backend/internal/api/handlers"
	"github.com/mgarridov/wraps-backend/internal/auth"
	"github.com/mgarridov/wraps-backend/internal/config"
	"github.com/mgarridov/wraps-backend/internal/metrics"
	"github.com/mgarridov/wraps-backend/internal/middleware"
	"github.com/mgarridov/wraps-backend/internal/services"
)

func NewRouter(cfg config.Config, tm *auth.TokenManager, us *services.UserService, ws *services.WrapService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true, // cookies cross the origin boundary
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ah := handlers.NewAuthHandler(us, tm, cfg.IsProd())
	wh := handlers.NewWrapsHandler(ws)
	sess := middleware.NewSessionAuth(tm)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)
		r.Post("/auth/logout", ah.Logout)

		r.Group(func(r chi.Router) {
			r.Use(sess.Auth)
			r.Get("/me", ah.Me)
			r.Get("/wraps", wh.List)
			r.Post("/wraps", wh.Create)
			r.Post("/wraps/{id}/items", wh.AddItem)
			r.Delete("/wraps/{id}", wh.Delete)
		})
	})

	if cfg.IsProd() {
		serveClient(r, cfg.StaticDir)
	}
	return r
}

// serveClient serves the built client bundle; any path that is not a file on
// disk falls back to index.html so client-side routing works.
func serveClient(r chi.Router, dir string) {
	fileServer := http.FileServer(http.Dir(dir))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		p := filepath.Join(dir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			http.ServeFile(w, req, filepath.Join(dir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, req)
	})
}
