package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/cover_client/internal/config"
)

type Server struct {
	httpServer *http.Server
	handler    http.Handler
}

func NewServer(log *slog.Logger, cfg config.HTTP, q Queue) *Server {
	// Hijacked websocket connections are not tracked by Shutdown.
	feedCtx, stopFeeds := context.WithCancel(context.Background())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	h := NewFilesHandler(log, q, cfg.MaxUploadSize)
	f := NewFeedHandler(feedCtx, log, q)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Get("/files", h.ListFiles)
		r.Post("/files", h.AddFiles)
		r.Delete("/files", h.ClearFiles)
		r.Delete("/files/{id}", h.RemoveFile)
		r.Post("/files/{id}/upload", h.UploadFile)
		r.Get("/files/{id}/result", h.GetResult)
		r.Post("/files/{id}/download", h.DownloadFile)

		r.Post("/upload", h.UploadAll)
		r.Post("/download", h.DownloadAll)

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.UpdateSettings)

		r.Get("/ws", f.Serve)
	})

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}
	httpServer.RegisterOnShutdown(stopFeeds)

	return &Server{
		httpServer: httpServer,
		handler:    r,
	}
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
