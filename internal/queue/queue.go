// Package queue owns the ordered collection of upload entries and drives
// each entry through pending -> uploading -> succeeded | failed.
//
// The entry slice is never modified in place: every mutation builds a new
// slice under the lock and swaps it in, so snapshots handed to readers stay
// valid. Asynchronous upload outcomes locate their entry by id because the
// collection may have changed while the request was in flight.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/kurochkinivan/cover_client/internal/domain"
	"golang.org/x/sync/semaphore"
)

var (
	ErrNotFound     = errors.New("entry not found")
	ErrNotSucceeded = errors.New("entry has no result")
)

type Config struct {
	Endpoint string
	// MaxConcurrentUploads caps in-flight transport calls. Zero means no cap.
	MaxConcurrentUploads int
}

type Queue struct {
	log       *slog.Logger
	transport Transport
	results   ResultStore
	saver     Saver
	slots     *semaphore.Weighted

	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup

	mu       sync.Mutex
	entries  []domain.Entry
	endpoint string
	closed   bool
	subs     map[int]chan struct{}
	nextSub  int
}

func New(log *slog.Logger, cfg Config, transport Transport, results ResultStore, saver Saver) (*Queue, error) {
	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &Queue{
		log:       log,
		transport: transport,
		results:   results,
		saver:     saver,
		ctx:       ctx,
		cancel:    cancel,
		endpoint:  endpoint,
		subs:      make(map[int]chan struct{}),
	}

	if cfg.MaxConcurrentUploads > 0 {
		q.slots = semaphore.NewWeighted(int64(cfg.MaxConcurrentUploads))
	}

	return q, nil
}

// Entries returns a copy of the current entries in insertion order.
func (q *Queue) Entries() []domain.Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Clone(q.entries)
}

func (q *Queue) Get(id string) (domain.Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexLocked(id)
	if i < 0 {
		return domain.Entry{}, false
	}

	return q.entries[i], true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

func (q *Queue) View() View {
	return Project(q.Entries())
}

// RemoveOne drops the entry and releases its result. An upload still in
// flight for the entry is not cancelled; its outcome is discarded.
func (q *Queue) RemoveOne(id string) bool {
	q.mu.Lock()
	i := q.indexLocked(id)
	if i < 0 {
		q.mu.Unlock()
		return false
	}

	removed := q.entries[i]
	q.entries = slices.Delete(slices.Clone(q.entries), i, i+1)
	q.notifyLocked()
	q.mu.Unlock()

	q.log.Debug("entry removed", slog.String("id", id), slog.String("status", string(removed.Status)))

	q.releaseEntry(removed)

	return true
}

// ClearAll removes every entry in one step and releases all held results.
func (q *Queue) ClearAll() int {
	q.mu.Lock()
	removed := q.entries
	q.entries = nil
	q.notifyLocked()
	q.mu.Unlock()

	for _, e := range removed {
		q.releaseEntry(e)
	}

	if len(removed) > 0 {
		q.log.Debug("queue cleared", slog.Int("removed", len(removed)))
	}

	return len(removed)
}

// Wait blocks until every triggered upload has settled.
func (q *Queue) Wait() {
	q.inflight.Wait()
}

// Close aborts in-flight uploads, waits for them and clears the queue.
// The queue accepts no new work afterwards.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.cancel()
	q.inflight.Wait()
	q.ClearAll()
}

func (q *Queue) Endpoint() string {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.endpoint
}

// SetEndpoint changes the service base URL for uploads triggered from now on.
func (q *Queue) SetEndpoint(raw string) error {
	endpoint, err := normalizeEndpoint(raw)
	if err != nil {
		return err
	}

	q.mu.Lock()
	q.endpoint = endpoint
	q.notifyLocked()
	q.mu.Unlock()

	q.log.Info("endpoint changed", slog.String("endpoint", endpoint))

	return nil
}

// Subscribe returns a channel that receives a signal after every mutation.
// Signals are coalesced; the receiver should read the current state.
func (q *Queue) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	q.mu.Lock()
	id := q.nextSub
	q.nextSub++
	q.subs[id] = ch
	q.mu.Unlock()

	return ch, func() {
		q.mu.Lock()
		delete(q.subs, id)
		q.mu.Unlock()
	}
}

func (q *Queue) notifyLocked() {
	for _, ch := range q.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (q *Queue) indexLocked(id string) int {
	return slices.IndexFunc(q.entries, func(e domain.Entry) bool {
		return e.ID == id
	})
}

// replaceLocked swaps in a copy of the entries with entry updated by id.
// It reports false when the entry is gone.
func (q *Queue) replaceLocked(entry domain.Entry) bool {
	i := q.indexLocked(entry.ID)
	if i < 0 {
		return false
	}

	next := slices.Clone(q.entries)
	next[i] = entry
	q.entries = next
	q.notifyLocked()

	return true
}

func (q *Queue) releaseEntry(e domain.Entry) {
	if e.Result == nil {
		return
	}

	q.release(e.ID, e.Result.Handle)
}

func (q *Queue) release(id, handle string) {
	if err := q.results.Release(handle); err != nil {
		q.log.Error("failed to release result",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
	}
}
