package domain

import "io"

// ContentTypePDF is the only content type accepted into the queue.
const ContentTypePDF = "application/pdf"

// Source is a selected file handle. Open may be called more than once.
type Source interface {
	Name() string
	Size() int64
	ContentType() string
	Open() (io.ReadCloser, error)
}
