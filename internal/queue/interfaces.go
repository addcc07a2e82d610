package queue

import (
	"context"
	"io"

	"github.com/kurochkinivan/cover_client/internal/domain"
)

type Transport interface {
	Submit(ctx context.Context, src domain.Source, endpoint string) ([]byte, error)
}

type ResultStore interface {
	Create(outputName string, blob []byte) (*domain.Result, error)
	Open(handle string) (io.ReadCloser, error)
	Release(handle string) error
}

type Saver interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
