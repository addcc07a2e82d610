package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kurochkinivan/cover_client/internal/domain"
	"github.com/kurochkinivan/cover_client/internal/queue"
	"github.com/kurochkinivan/cover_client/internal/report"
	"github.com/kurochkinivan/cover_client/internal/source"
)

var (
	ErrNoFiles     = errors.New("no pdf files to process")
	ErrFilesFailed = errors.New("some files failed")
)

const reportTitle = "Cover generation report"

// Process runs one batch: add the files, upload them all, wait, save the
// covers and print a summary to out. It fails when any file failed.
func (a *App) Process(ctx context.Context, paths []string, reportPath string, out io.Writer) error {
	c, err := a.newComponents()
	if err != nil {
		return err
	}
	defer c.Close()

	sources := make([]domain.Source, 0, len(paths))
	for _, path := range paths {
		src, err := source.FromPath(path)
		if err != nil {
			a.log.WarnContext(ctx, "skipping file", slog.String("path", path), slog.String("err", err.Error()))
			continue
		}
		sources = append(sources, src)
	}

	added := c.queue.AddFiles(sources...)
	if len(added) == 0 {
		return ErrNoFiles
	}

	a.log.InfoContext(ctx, "processing files",
		slog.Int("files", len(added)),
		slog.String("endpoint", c.queue.Endpoint()),
	)

	c.queue.UploadAll()
	if err := wait(ctx, c.queue); err != nil {
		return err
	}

	saved, downloadErr := c.queue.DownloadAll(ctx)
	if downloadErr != nil {
		a.log.ErrorContext(ctx, "failed to save some covers", slog.String("err", downloadErr.Error()))
	}

	view := c.queue.View()

	if _, err := fmt.Fprintln(out, renderSummary(view)); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	for _, path := range saved {
		fmt.Fprintf(out, "saved %s\n", path)
	}

	if reportPath != "" {
		if err := report.Save(reportPath, reportTitle, view); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		a.log.InfoContext(ctx, "report saved", slog.String("path", reportPath))
	}

	if view.Counts.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, view.Counts.Failed, view.Counts.Total)
	}

	return downloadErr
}

// wait blocks until every upload settled. Cancelling ctx aborts the
// uploads in flight.
func wait(ctx context.Context, q *queue.Queue) error {
	done := make(chan struct{})
	go func() {
		q.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		q.Close()
		<-done
		return ctx.Err()
	}
}
