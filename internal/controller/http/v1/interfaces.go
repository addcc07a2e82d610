package v1

import (
	"context"
	"io"

	"github.com/kurochkinivan/cover_client/internal/domain"
	"github.com/kurochkinivan/cover_client/internal/queue"
)

type Queue interface {
	AddFiles(sources ...domain.Source) []domain.Entry
	Get(id string) (domain.Entry, bool)
	View() queue.View
	UploadOne(id string) bool
	UploadAll() int
	RemoveOne(id string) bool
	ClearAll() int
	DownloadOne(ctx context.Context, id string) (string, error)
	DownloadAll(ctx context.Context) ([]string, error)
	OpenResult(id string) (domain.Result, io.ReadCloser, error)
	Endpoint() string
	SetEndpoint(raw string) error
	Subscribe() (<-chan struct{}, func())
}
