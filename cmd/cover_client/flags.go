package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/cover_client/internal/app"
	"github.com/kurochkinivan/cover_client/internal/config"
	"github.com/kurochkinivan/cover_client/internal/queue"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	var configFile string

	return &cli.Command{
		Name:    "cover_client",
		Usage:   "Generate PDF covers with the cover service",
		Version: version,
		Flags:   commonFlags(&configFile),
		Before:  setLogLevel,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Serve the upload queue over HTTP",
				Flags: serveFlags(&configFile),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, err := logger(ctx)
					if err != nil {
						return err
					}

					return app.New(log, config.Load(cmd)).Run(ctx)
				},
			},
			{
				Name:      "process",
				Usage:     "Upload files, wait for their covers and save them",
				ArgsUsage: "FILE...",
				Flags:     processFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, err := logger(ctx)
					if err != nil {
						return err
					}

					if cmd.Args().Len() == 0 {
						return errors.New("at least one file is required")
					}

					return app.New(log, config.Load(cmd)).Process(ctx, cmd.Args().Slice(), cmd.String("report"), os.Stdout)
				},
			},
		},
	}
}

func logger(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	return log, nil
}

func setLogLevel(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, ok := ctx.Value(levelKey{}).(*slog.LevelVar)
	if !ok {
		return ctx, errors.New("failed to get log level from context")
	}

	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return ctx, fmt.Errorf("invalid log level: %w", err)
	}

	return ctx, nil
}

func commonFlags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: configFile,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level (debug, info, warn, error)",
			Value:   "info",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.log_level", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:      "endpoint",
			Aliases:   []string{"e"},
			Usage:     "Set cover service base `URL`",
			Value:     queue.DefaultEndpoint,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.endpoint", altsrc.NewStringPtrSourcer(configFile))),
			Validator: queue.ValidateEndpoint,
		},
		&cli.StringFlag{
			Name:    "downloads-dir",
			Aliases: []string{"d"},
			Usage:   "Set directory to save covers to",
			Value:   "covers",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.downloads_dir", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "results-dir",
			Usage:   "Set directory to keep received covers in until they are removed, a temporary one by default",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.results_dir", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.IntFlag{
			Name:      "max-concurrent-uploads",
			Usage:     "Limit uploads in flight, 0 means no limit",
			Value:     0,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.max_concurrent_uploads", altsrc.NewStringPtrSourcer(configFile))),
			Validator: validateNonNegative,
		},
		&cli.DurationFlag{
			Name:    "request-timeout",
			Usage:   "Set timeout of a single upload",
			Value:   2 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("transport.request_timeout", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "user-agent",
			Usage:   "Set User-Agent sent to the cover service",
			Value:   "cover_client/" + version,
			Sources: cli.NewValueSourceChain(yaml.YAML("transport.user_agent", altsrc.NewStringPtrSourcer(configFile))),
		},
	}
}

func serveFlags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Add files dropped into this directory to the queue",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.watch_dir", altsrc.NewStringPtrSourcer(configFile))),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set watch directory scan interval",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.scan_interval", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.BoolFlag{
			Name:    "auto-upload",
			Usage:   "Upload files from the watch directory as soon as they are added",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.auto_upload", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.IntFlag{
			Name:      "ping-retries",
			Usage:     "Set how many times to retry the startup health check",
			Value:     5,
			Sources:   cli.NewValueSourceChain(yaml.YAML("transport.ping_retries", altsrc.NewStringPtrSourcer(configFile))),
			Validator: validateNonNegative,
		},
		&cli.DurationFlag{
			Name:    "ping-delay",
			Usage:   "Set delay between startup health checks",
			Value:   10 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("transport.ping_delay", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.Int64Flag{
			Name:    "http-max-upload-size",
			Usage:   "Limit the size of a multipart request adding files, in bytes",
			Value:   50 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.max_upload_size", altsrc.NewStringPtrSourcer(configFile))),
		},
	}
}

func processFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "report",
			Aliases:   []string{"r"},
			Usage:     "Write a summary report to `FILE` (.csv or .pdf)",
			Validator: validateReport,
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

func validateReport(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".pdf":
		return nil
	default:
		return fmt.Errorf("invalid report extension %q, must be .csv or .pdf", path)
	}
}

func validateNonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}

	return nil
}
