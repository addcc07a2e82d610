package domain

import (
	"errors"
	"fmt"
)

// Result is the output produced for a succeeded entry. Handle is an opaque
// reference into the results store and must be released exactly once.
type Result struct {
	Handle     string `json:"-"`
	OutputName string `json:"output_name"`
	Size       int64  `json:"size"`
	Pages      int    `json:"pages,omitempty"`
}

// Entry is one tracked file submission. Entries are treated as immutable
// values: a transition produces a new Entry.
type Entry struct {
	ID           string  `json:"id"`
	SourceName   string  `json:"source_name"`
	SourceSize   int64   `json:"source_size"`
	Status       Status  `json:"status"`
	Result       *Result `json:"result,omitempty"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Source       Source  `json:"-"`
}

func (e Entry) Uploading() Entry {
	e.Status = StatusUploading
	e.Result = nil
	e.ErrorMessage = ""
	return e
}

func (e Entry) Succeeded(result *Result) Entry {
	e.Status = StatusSucceeded
	e.Result = result
	e.ErrorMessage = ""
	return e
}

func (e Entry) Failed(message string) Entry {
	if message == "" {
		message = "unknown error"
	}

	e.Status = StatusFailed
	e.Result = nil
	e.ErrorMessage = message
	return e
}

// Validate checks that the payload matches the status.
func (e Entry) Validate() error {
	if e.ID == "" {
		return errors.New("id is required")
	}

	switch e.Status {
	case StatusPending, StatusUploading:
		if e.Result != nil || e.ErrorMessage != "" {
			return fmt.Errorf("%s entry must not carry a result or an error", e.Status)
		}
	case StatusSucceeded:
		if e.Result == nil {
			return errors.New("succeeded entry must carry a result")
		}
		if e.ErrorMessage != "" {
			return errors.New("succeeded entry must not carry an error")
		}
	case StatusFailed:
		if e.ErrorMessage == "" {
			return errors.New("failed entry must carry an error message")
		}
		if e.Result != nil {
			return errors.New("failed entry must not carry a result")
		}
	default:
		return fmt.Errorf("unknown status %q", e.Status)
	}

	return nil
}
