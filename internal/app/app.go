package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/cover_client/internal/config"
	v1 "github.com/kurochkinivan/cover_client/internal/controller/http/v1"
	"github.com/kurochkinivan/cover_client/internal/queue"
	"github.com/kurochkinivan/cover_client/internal/results"
	"github.com/kurochkinivan/cover_client/internal/saver"
	"github.com/kurochkinivan/cover_client/internal/transport"
	"github.com/kurochkinivan/cover_client/internal/watch"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// components are shared by the serve and process commands.
type components struct {
	log        *slog.Logger
	client     *transport.Client
	store      *results.Store
	queue      *queue.Queue
	tempResult string
}

func (a *App) newComponents() (*components, error) {
	c := &components{
		log:    a.log,
		client: transport.New(a.cfg.Transport.RequestTimeout, a.cfg.Transport.UserAgent),
	}

	resultsDir := a.cfg.App.ResultsDirectory
	if resultsDir == "" {
		dir, err := os.MkdirTemp("", "cover_client-results-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create results directory: %w", err)
		}
		resultsDir, c.tempResult = dir, dir
	}

	store, err := results.New(a.log, resultsDir)
	if err != nil {
		c.removeTemp()
		return nil, fmt.Errorf("failed to create results store: %w", err)
	}
	c.store = store

	q, err := queue.New(
		a.log,
		queue.Config{
			Endpoint:             a.cfg.App.Endpoint,
			MaxConcurrentUploads: a.cfg.App.MaxConcurrentUploads,
		},
		c.client,
		store,
		saver.New(a.cfg.App.DownloadsDirectory),
	)
	if err != nil {
		c.removeTemp()
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}
	c.queue = q

	return c, nil
}

// Close stops the queue first so every result is released before the
// store is closed.
func (c *components) Close() {
	c.queue.Close()

	if err := c.store.Close(); err != nil {
		c.log.Error("failed to close results store", slog.String("err", err.Error()))
	}

	stats := c.store.Stats()
	c.log.Debug("results store closed",
		slog.Int("created", stats.Created),
		slog.Int("released", stats.Released),
	)

	c.removeTemp()
}

func (c *components) removeTemp() {
	if c.tempResult == "" {
		return
	}

	if err := os.RemoveAll(c.tempResult); err != nil {
		c.log.Warn("failed to remove results directory", slog.String("err", err.Error()))
	}
}

// checkService pings the cover service. An unreachable service is only
// reported; uploads will surface the error per file.
func (c *components) checkService(ctx context.Context, retries int, delay time.Duration) {
	ping := transport.Retry(c.log, func(ctx context.Context) error {
		return c.client.Ping(ctx, c.queue.Endpoint())
	}, retries, delay)

	if err := ping(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}

		c.log.WarnContext(ctx, "cover service is not reachable",
			slog.String("endpoint", c.queue.Endpoint()),
			slog.String("err", err.Error()),
		)
		return
	}

	c.log.InfoContext(ctx, "cover service is reachable", slog.String("endpoint", c.queue.Endpoint()))
}

// Run serves the HTTP control surface until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("endpoint", a.cfg.App.Endpoint),
		slog.String("downloads_dir", a.cfg.App.DownloadsDirectory),
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.Int("max_concurrent_uploads", a.cfg.App.MaxConcurrentUploads),
	)

	c, err := a.newComponents()
	if err != nil {
		return err
	}
	defer c.Close()

	return a.serve(ctx, c)
}

func (a *App) serve(ctx context.Context, c *components) error {
	server := v1.NewServer(a.log, a.cfg.HTTP, c.queue)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		c.checkService(ctx, a.cfg.Transport.PingRetries, a.cfg.Transport.PingDelay)
		return nil
	})

	if a.cfg.App.WatchDirectory != "" {
		var uploader watch.Uploader
		if a.cfg.App.AutoUpload {
			uploader = c.queue
		}

		scanner := watch.NewScanner(
			a.log,
			a.cfg.App.WatchDirectory,
			a.cfg.App.DirectoryScanInterval,
			c.queue,
			uploader,
		)

		erg.Go(func() error {
			a.log.InfoContext(ctx, "scanner started")
			return scanner.Run(ctx)
		})
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
