package queue

import (
	"log/slog"
	"mime"
	"slices"

	"github.com/google/uuid"
	"github.com/kurochkinivan/cover_client/internal/domain"
)

// AddFiles appends a pending entry for every PDF among sources. Other
// content types are skipped without an error. The new entries are returned
// in the order they were appended.
func (q *Queue) AddFiles(sources ...domain.Source) []domain.Entry {
	added := make([]domain.Entry, 0, len(sources))

	for _, src := range sources {
		if src == nil {
			continue
		}

		if !isPDF(src.ContentType()) {
			q.log.Debug("skipping file with unsupported content type",
				slog.String("filename", src.Name()),
				slog.String("content_type", src.ContentType()),
			)
			continue
		}

		added = append(added, domain.Entry{
			ID:         uuid.NewString(),
			SourceName: src.Name(),
			SourceSize: src.Size(),
			Status:     domain.StatusPending,
			Source:     src,
		})
	}

	if len(added) == 0 {
		return added
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.entries = slices.Concat(q.entries, added)
	q.notifyLocked()
	q.mu.Unlock()

	q.log.Info("files added", slog.Int("added", len(added)), slog.Int("skipped", len(sources)-len(added)))

	return added
}

func isPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == domain.ContentTypePDF
}
