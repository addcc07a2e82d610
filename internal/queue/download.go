package queue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kurochkinivan/cover_client/internal/domain"
)

// DownloadOne saves the entry's result under its output name and returns
// the saved path. The result stays attached to the entry.
func (q *Queue) DownloadOne(ctx context.Context, id string) (string, error) {
	entry, ok := q.Get(id)
	if !ok {
		return "", ErrNotFound
	}

	if entry.Status != domain.StatusSucceeded || entry.Result == nil {
		return "", ErrNotSucceeded
	}

	return q.save(ctx, entry)
}

// DownloadAll saves every succeeded entry in queue order. It continues past
// individual failures and returns them joined.
func (q *Queue) DownloadAll(ctx context.Context) ([]string, error) {
	var (
		paths []string
		errs  []error
	)

	for _, entry := range q.Entries() {
		if entry.Status != domain.StatusSucceeded || entry.Result == nil {
			continue
		}

		path, err := q.save(ctx, entry)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}

// OpenResult returns the entry's result and a reader over its content.
func (q *Queue) OpenResult(id string) (domain.Result, io.ReadCloser, error) {
	entry, ok := q.Get(id)
	if !ok {
		return domain.Result{}, nil, ErrNotFound
	}

	if entry.Status != domain.StatusSucceeded || entry.Result == nil {
		return domain.Result{}, nil, ErrNotSucceeded
	}

	rc, err := q.openResult(entry)
	if err != nil {
		return domain.Result{}, nil, err
	}

	return *entry.Result, rc, nil
}

func (q *Queue) save(ctx context.Context, entry domain.Entry) (_ string, err error) {
	rc, err := q.openResult(entry)
	if err != nil {
		return "", err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	path, err := q.saver.Save(ctx, entry.Result.OutputName, rc)
	if err != nil {
		return "", fmt.Errorf("failed to save result of %q: %w", entry.SourceName, err)
	}

	q.log.InfoContext(ctx, "result saved", slog.String("id", entry.ID), slog.String("path", path))

	return path, nil
}

// openResult opens the entry's result. The entry may be removed after it was
// read, releasing the handle; that case is reported as ErrNotFound.
func (q *Queue) openResult(entry domain.Entry) (io.ReadCloser, error) {
	rc, err := q.results.Open(entry.Result.Handle)
	if err != nil {
		if _, ok := q.Get(entry.ID); !ok {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to open result of %q: %w", entry.SourceName, err)
	}

	return rc, nil
}
