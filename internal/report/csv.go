package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/cover_client/internal/queue"
)

// WriteCSV writes a header and one row per entry.
func WriteCSV(w io.Writer, entries []queue.EntryView) error {
	writer := csv.NewWriter(w)

	enc := csvutil.NewEncoder(writer)
	if err := enc.EncodeHeader(queue.EntryView{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	for i, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode entry #%d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}
