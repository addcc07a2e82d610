// Package saver writes downloaded results into a local directory.
package saver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const maxSuffix = 1000

type Dir struct {
	dir string
}

func New(dir string) *Dir {
	return &Dir{dir: dir}
}

// Save copies r into the directory under name. An existing file is never
// overwritten: "a.pdf" becomes "a (1).pdf", "a (2).pdf" and so on.
func (d *Dir) Save(ctx context.Context, name string, r io.Reader) (_ string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create downloads directory %q: %w", d.dir, err)
	}

	f, path, err := d.create(filepath.Base(name))
	if err != nil {
		return "", err
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}

	return path, nil
}

func (d *Dir) create(name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxSuffix; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}

		path := filepath.Join(d.dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create %q: %w", path, err)
		}

		return f, path, nil
	}

	return nil, "", fmt.Errorf("too many files named %q", name)
}
