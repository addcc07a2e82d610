package queue

import (
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/cover_client/internal/domain"
)

// UploadOne starts the upload of a pending entry. The entry is uploading by
// the time UploadOne returns, so a second call is a no-op. It reports
// whether an upload was started.
func (q *Queue) UploadOne(id string) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}

	i := q.indexLocked(id)
	if i < 0 || q.entries[i].Status != domain.StatusPending {
		q.mu.Unlock()
		return false
	}

	entry := q.entries[i].Uploading()
	q.replaceLocked(entry)
	endpoint := q.endpoint
	q.inflight.Add(1)
	q.mu.Unlock()

	go q.upload(entry, endpoint)

	return true
}

// UploadAll starts every entry that is pending at the moment of the call
// and returns how many were started.
func (q *Queue) UploadAll() int {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0
	}

	var started []domain.Entry
	next := make([]domain.Entry, len(q.entries))
	for i, e := range q.entries {
		if e.Status == domain.StatusPending {
			e = e.Uploading()
			started = append(started, e)
		}
		next[i] = e
	}

	if len(started) == 0 {
		q.mu.Unlock()
		return 0
	}

	q.entries = next
	q.notifyLocked()
	endpoint := q.endpoint
	q.inflight.Add(len(started))
	q.mu.Unlock()

	q.log.Info("uploading pending files", slog.Int("count", len(started)))

	for _, e := range started {
		go q.upload(e, endpoint)
	}

	return len(started)
}

func (q *Queue) upload(entry domain.Entry, endpoint string) {
	defer q.inflight.Done()

	log := q.log.With(
		slog.String("id", entry.ID),
		slog.String("filename", entry.SourceName),
	)

	if q.slots != nil {
		if err := q.slots.Acquire(q.ctx, 1); err != nil {
			q.fail(log, entry.ID, err.Error())
			return
		}
		defer q.slots.Release(1)
	}

	log.DebugContext(q.ctx, "submitting file", slog.String("endpoint", endpoint))

	blob, err := q.transport.Submit(q.ctx, entry.Source, endpoint)
	if err != nil {
		q.fail(log, entry.ID, err.Error())
		return
	}

	result, err := q.results.Create(OutputName(entry.SourceName), blob)
	if err != nil {
		q.fail(log, entry.ID, fmt.Sprintf("failed to store result: %s", err))
		return
	}

	q.mu.Lock()
	applied := q.replaceLocked(entry.Succeeded(result))
	q.mu.Unlock()

	if !applied {
		log.Info("entry removed during upload, discarding result")
		q.release(entry.ID, result.Handle)
		return
	}

	log.Info("upload succeeded",
		slog.String("output_name", result.OutputName),
		slog.Int64("output_size", result.Size),
	)
}

func (q *Queue) fail(log *slog.Logger, id, message string) {
	log.Warn("upload failed", slog.String("err", message))

	q.mu.Lock()
	applied := false
	if i := q.indexLocked(id); i >= 0 {
		applied = q.replaceLocked(q.entries[i].Failed(message))
	}
	q.mu.Unlock()

	if !applied {
		log.Debug("entry removed during upload, discarding failure")
	}
}
