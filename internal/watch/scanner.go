// Package watch feeds files dropped into a directory into the upload queue.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/cover_client/internal/source"
)

type Scanner struct {
	log          *slog.Logger
	watchDir     string
	scanInterval time.Duration
	adder        FilesAdder
	uploader     Uploader

	// seen is only touched by the Run goroutine.
	seen map[string]struct{}
}

// NewScanner returns a scanner that adds new files from watchDir on every
// tick. When uploader is set, every scan that queued files starts uploading
// all pending entries; otherwise they stay pending.
func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	adder FilesAdder,
	uploader Uploader,
) *Scanner {
	return &Scanner{
		log:          log,
		watchDir:     watchDir,
		scanInterval: scanInterval,
		adder:        adder,
		uploader:     uploader,
		seen:         make(map[string]struct{}),
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "watching directory",
		slog.String("dir", s.watchDir),
		slog.Duration("interval", s.scanInterval),
		slog.Bool("auto_upload", s.uploader != nil),
	)

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	queued := 0
	for _, entry := range entries {
		added, err := s.processEntry(ctx, entry)
		queued += added
		if err != nil {
			s.log.ErrorContext(ctx, "failed process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}
	}

	if queued > 0 && s.uploader != nil {
		started := s.uploader.UploadAll()
		s.log.DebugContext(ctx, "auto upload triggered", slog.Int("started", started))
	}

	return nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry) (int, error) {
	if entry.IsDir() {
		return 0, nil
	}

	if _, ok := s.seen[entry.Name()]; ok {
		return 0, nil
	}

	src, err := source.FromPath(filepath.Join(s.watchDir, entry.Name()))
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}

	s.seen[entry.Name()] = struct{}{}

	added := s.adder.AddFiles(src)
	if len(added) == 0 {
		s.log.DebugContext(ctx, "file is not a pdf, ignoring", slog.String("filename", entry.Name()))
		return 0, nil
	}

	s.log.InfoContext(ctx, "file queued", slog.String("filename", entry.Name()), slog.String("id", added[0].ID))

	return len(added), nil
}
