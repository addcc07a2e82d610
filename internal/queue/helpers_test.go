package queue_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/kurochkinivan/cover_client/internal/domain"
	"github.com/kurochkinivan/cover_client/internal/queue"
	"github.com/kurochkinivan/cover_client/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "http://cover.test"

var errUnknownHandle = errors.New("unknown handle")

// trackingStore records every create and release so tests can check that
// handles are released exactly once.
type trackingStore struct {
	mu         sync.Mutex
	next       int
	live       map[string][]byte
	created    int
	released   int
	bad        int
	failCreate error
}

func newTrackingStore() *trackingStore {
	return &trackingStore{live: make(map[string][]byte)}
}

func (s *trackingStore) Create(outputName string, blob []byte) (*domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failCreate != nil {
		return nil, s.failCreate
	}

	s.next++
	handle := fmt.Sprintf("handle-%d", s.next)
	s.live[handle] = blob
	s.created++

	return &domain.Result{Handle: handle, OutputName: outputName, Size: int64(len(blob))}, nil
}

func (s *trackingStore) Open(handle string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.live[handle]
	if !ok {
		return nil, errUnknownHandle
	}

	return io.NopCloser(bytes.NewReader(blob)), nil
}

func (s *trackingStore) Release(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live[handle]; !ok {
		s.bad++
		return errUnknownHandle
	}

	delete(s.live, handle)
	s.released++

	return nil
}

func (s *trackingStore) counts() (created, released, live, bad int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.created, s.released, len(s.live), s.bad
}

func newQueue(t *testing.T, transport queue.Transport, store queue.ResultStore, saver queue.Saver) *queue.Queue {
	t.Helper()

	return newQueueWithConfig(t, queue.Config{Endpoint: testEndpoint}, transport, store, saver)
}

func newQueueWithConfig(t *testing.T, cfg queue.Config, transport queue.Transport, store queue.ResultStore, saver queue.Saver) *queue.Queue {
	t.Helper()

	q, err := queue.New(slog.New(slog.DiscardHandler), cfg, transport, store, saver)
	require.NoError(t, err)

	return q
}

func pdf(name string) domain.Source {
	return source.FromBytes(name, domain.ContentTypePDF, []byte("%PDF-1.4 "+name))
}

func png(name string) domain.Source {
	return source.FromBytes(name, "image/png", []byte{0x89, 'P', 'N', 'G'})
}

func typed(name, contentType string) domain.Source {
	return source.FromBytes(name, contentType, []byte("%PDF-1.4 "+name))
}

func named(name string) any {
	return mock.MatchedBy(func(src domain.Source) bool {
		return src.Name() == name
	})
}

func requireValid(t *testing.T, entries []domain.Entry) {
	t.Helper()

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		require.NoError(t, e.Validate(), "entry %s", e.ID)

		_, dup := seen[e.ID]
		require.False(t, dup, "duplicate id %s", e.ID)
		seen[e.ID] = struct{}{}
	}
}

// assertValid is requireValid for use outside the test goroutine.
func assertValid(t *testing.T, entries []domain.Entry) bool {
	t.Helper()

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if !assert.NoError(t, e.Validate(), "entry %s", e.ID) {
			return false
		}

		if _, dup := seen[e.ID]; !assert.False(t, dup, "duplicate id %s", e.ID) {
			return false
		}
		seen[e.ID] = struct{}{}
	}

	return true
}
