// Package results keeps produced cover documents as revocable handles.
// Every handle returned by Create must be released exactly once.
package results

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/kurochkinivan/cover_client/internal/domain"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var ErrUnknownHandle = errors.New("unknown or already released handle")

type Stats struct {
	Created  int `json:"created"`
	Released int `json:"released"`
	Live     int `json:"live"`
}

// disableConfigDir keeps pdfcpu from reading or creating its user config
// directory, which it otherwise does lazily and without synchronisation.
var disableConfigDir sync.Once

type Store struct {
	log *slog.Logger
	dir string
	// pdfConf is copied for every page count since pdfcpu writes to it.
	pdfConf model.Configuration

	mu       sync.Mutex
	handles  map[string]string
	created  int
	released int
}

// New creates dir if needed. Handles live only for the lifetime of the
// process, so files are written with owner-only permissions.
func New(log *slog.Logger, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create results directory %q: %w", dir, err)
	}

	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Store{
		log:     log,
		dir:     dir,
		pdfConf: *conf,
		handles: make(map[string]string),
	}, nil
}

func (s *Store) Create(outputName string, blob []byte) (*domain.Result, error) {
	handle := uuid.NewString()
	path := filepath.Join(s.dir, handle+".pdf")

	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write result file: %w", err)
	}

	s.mu.Lock()
	s.handles[handle] = path
	s.created++
	s.mu.Unlock()

	return &domain.Result{
		Handle:     handle,
		OutputName: outputName,
		Size:       int64(len(blob)),
		Pages:      s.pageCount(blob),
	}, nil
}

func (s *Store) Open(handle string) (io.ReadCloser, error) {
	s.mu.Lock()
	path, ok := s.handles[handle]
	s.mu.Unlock()

	if !ok {
		return nil, ErrUnknownHandle
	}

	return os.Open(path)
}

func (s *Store) Release(handle string) error {
	s.mu.Lock()
	path, ok := s.handles[handle]
	if ok {
		delete(s.handles, handle)
		s.released++
	}
	s.mu.Unlock()

	if !ok {
		return ErrUnknownHandle
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove result file: %w", err)
	}

	return nil
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Created:  s.created,
		Released: s.released,
		Live:     len(s.handles),
	}
}

// Close releases every handle that is still live.
func (s *Store) Close() error {
	s.mu.Lock()
	handles := make([]string, 0, len(s.handles))
	for h := range s.handles {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	if len(handles) > 0 {
		s.log.Warn("releasing live result handles on close", slog.Int("count", len(handles)))
	}

	var errs []error
	for _, h := range handles {
		if err := s.Release(h); err != nil && !errors.Is(err, ErrUnknownHandle) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Store) pageCount(blob []byte) int {
	conf := s.pdfConf

	pages, err := api.PageCount(bytes.NewReader(blob), &conf)
	if err != nil {
		s.log.Debug("could not count result pages", slog.String("err", err.Error()))
		return 0
	}

	return pages
}
