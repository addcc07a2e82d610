package watch

import "github.com/kurochkinivan/cover_client/internal/domain"

type FilesAdder interface {
	AddFiles(sources ...domain.Source) []domain.Entry
}

type Uploader interface {
	UploadAll() int
}
