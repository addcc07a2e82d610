package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Transport
	HTTP
}

type App struct {
	Endpoint             string
	DownloadsDirectory   string
	ResultsDirectory     string
	MaxConcurrentUploads int
	// WatchDirectory is optional; the watcher is off when it is empty.
	WatchDirectory        string
	DirectoryScanInterval time.Duration
	AutoUpload            bool
}

type Transport struct {
	RequestTimeout time.Duration
	UserAgent      string
	PingRetries    int
	PingDelay      time.Duration
}

type HTTP struct {
	Host          string
	Port          string
	IdleTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxUploadSize int64
}

// Load reads the flags shared by every command. Flags a command does not
// define load as zero values.
func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Endpoint:              cmd.String("endpoint"),
			DownloadsDirectory:    cmd.String("downloads-dir"),
			ResultsDirectory:      cmd.String("results-dir"),
			MaxConcurrentUploads:  int(cmd.Int("max-concurrent-uploads")),
			WatchDirectory:        cmd.String("watch-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
			AutoUpload:            cmd.Bool("auto-upload"),
		},
		Transport: Transport{
			RequestTimeout: cmd.Duration("request-timeout"),
			UserAgent:      cmd.String("user-agent"),
			PingRetries:    int(cmd.Int("ping-retries")),
			PingDelay:      cmd.Duration("ping-delay"),
		},
		HTTP: HTTP{
			Host:          cmd.String("http-host"),
			Port:          cmd.String("http-port"),
			IdleTimeout:   cmd.Duration("http-idle-timeout"),
			ReadTimeout:   cmd.Duration("http-read-timeout"),
			WriteTimeout:  cmd.Duration("http-write-timeout"),
			MaxUploadSize: cmd.Int64("http-max-upload-size"),
		},
	}
}
