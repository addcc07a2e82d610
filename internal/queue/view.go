package queue

import (
	"fmt"

	"github.com/kurochkinivan/cover_client/internal/domain"
)

type Counts struct {
	Pending   int `json:"pending"`
	Uploading int `json:"uploading"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}

type EntryView struct {
	ID         string        `json:"id"         csv:"id"`
	Name       string        `json:"name"       csv:"name"`
	Size       string        `json:"size"       csv:"size"`
	SizeBytes  int64         `json:"size_bytes" csv:"size_bytes"`
	Status     domain.Status `json:"status"     csv:"status"`
	Error      string        `json:"error"      csv:"error,omitempty"`
	OutputName string        `json:"output_name,omitempty" csv:"output_name,omitempty"`
	Pages      int           `json:"pages,omitempty"       csv:"pages,omitempty"`
}

type View struct {
	Counts         Counts      `json:"counts"`
	Entries        []EntryView `json:"entries"`
	CanUploadAll   bool        `json:"can_upload_all"`
	CanDownloadAll bool        `json:"can_download_all"`
}

func Count(entries []domain.Entry) Counts {
	c := Counts{Total: len(entries)}

	for _, e := range entries {
		switch e.Status {
		case domain.StatusPending:
			c.Pending++
		case domain.StatusUploading:
			c.Uploading++
		case domain.StatusSucceeded:
			c.Succeeded++
		case domain.StatusFailed:
			c.Failed++
		}
	}

	return c
}

func Project(entries []domain.Entry) View {
	counts := Count(entries)

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, ProjectEntry(e))
	}

	return View{
		Counts:         counts,
		Entries:        views,
		CanUploadAll:   counts.Pending > 0 && counts.Uploading == 0,
		CanDownloadAll: counts.Succeeded > 0,
	}
}

func ProjectEntry(e domain.Entry) EntryView {
	v := EntryView{
		ID:        e.ID,
		Name:      e.SourceName,
		Size:      FormatSize(e.SourceSize),
		SizeBytes: e.SourceSize,
		Status:    e.Status,
		Error:     e.ErrorMessage,
	}

	if e.Result != nil {
		v.OutputName = e.Result.OutputName
		v.Pages = e.Result.Pages
	}

	return v
}

func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
