// Package source provides file handles that can be added to the upload queue.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

const sniffLen = 512

type File struct {
	path        string
	name        string
	size        int64
	contentType string
}

// FromPath opens the file once to sniff its content type. The extension is
// only consulted when sniffing is inconclusive.
func FromPath(path string) (_ *File, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	return &File{
		path:        path,
		name:        info.Name(),
		size:        info.Size(),
		contentType: detectContentType(info.Name(), head[:n]),
	}, nil
}

func (f *File) Name() string        { return f.name }
func (f *File) Size() int64         { return f.size }
func (f *File) ContentType() string { return f.contentType }
func (f *File) Path() string        { return f.path }

func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

func detectContentType(name string, head []byte) string {
	sniffed := http.DetectContentType(head)
	if sniffed != "application/octet-stream" && sniffed != "text/plain; charset=utf-8" {
		return sniffed
	}

	if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
		return byExt
	}

	return sniffed
}

// Memory is an in-memory handle, used for multipart uploads.
type Memory struct {
	name        string
	contentType string
	data        []byte
}

func FromBytes(name, contentType string, data []byte) *Memory {
	return &Memory{
		name:        name,
		contentType: contentType,
		data:        data,
	}
}

func (m *Memory) Name() string        { return m.name }
func (m *Memory) Size() int64         { return int64(len(m.data)) }
func (m *Memory) ContentType() string { return m.contentType }

func (m *Memory) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.data)), nil
}
