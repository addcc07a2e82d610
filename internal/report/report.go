// Package report writes a batch summary of the queue as CSV or PDF.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/cover_client/internal/queue"
)

var ErrUnsupportedFormat = errors.New("unsupported report format, use .csv or .pdf")

// Save writes the view to path. The format follows the file extension.
func Save(path, title string, view queue.View) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return saveCSV(path, view)
	case ".pdf":
		return NewGenerator().GenerateReport(path, title, view)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func saveCSV(path string, view queue.View) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return WriteCSV(f, view.Entries)
}
