package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/cover_client/internal/domain"
	"github.com/kurochkinivan/cover_client/internal/queue"
	"github.com/kurochkinivan/cover_client/internal/source"
)

const (
	filesField           = "files"
	defaultMaxUploadSize = 50 << 20
	multipartMemory      = 32 << 20
)

type FilesHandler struct {
	log           *slog.Logger
	queue         Queue
	maxUploadSize int64
}

func NewFilesHandler(log *slog.Logger, q Queue, maxUploadSize int64) *FilesHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	return &FilesHandler{
		log:           log,
		queue:         q,
		maxUploadSize: maxUploadSize,
	}
}

type ListFilesResponse struct {
	Counts         queue.Counts      `json:"counts"`
	Entries        []queue.EntryView `json:"entries"`
	CanUploadAll   bool              `json:"can_upload_all"`
	CanDownloadAll bool              `json:"can_download_all"`
	Pagination     Pagination        `json:"pagination"`
}

type AddFilesResponse struct {
	Added   []queue.EntryView `json:"added"`
	Skipped int               `json:"skipped"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type DownloadResponse struct {
	Paths []string `json:"paths"`
	Error string   `json:"error,omitempty"`
}

type Settings struct {
	Endpoint string `json:"endpoint"`
}

func (h *FilesHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *FilesHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := h.queue.View()
	entries, pagination := paginate(view.Entries, page, limit)

	writeJSON(w, http.StatusOK, ListFilesResponse{
		Counts:         view.Counts,
		Entries:        entries,
		CanUploadAll:   view.CanUploadAll,
		CanDownloadAll: view.CanDownloadAll,
		Pagination:     pagination,
	})
}

func (h *FilesHandler) AddFiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("request is larger than %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}

		http.Error(w, fmt.Sprintf("invalid multipart form: %s", err), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[filesField]
	if len(headers) == 0 {
		http.Error(w, fmt.Sprintf("no files in field %q", filesField), http.StatusBadRequest)
		return
	}

	sources := make([]domain.Source, 0, len(headers))
	for _, fh := range headers {
		src, err := readPart(fh)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sources = append(sources, src)
	}

	added := h.queue.AddFiles(sources...)

	views := make([]queue.EntryView, 0, len(added))
	for _, e := range added {
		views = append(views, queue.ProjectEntry(e))
	}

	writeJSON(w, http.StatusCreated, AddFilesResponse{
		Added:   views,
		Skipped: len(sources) - len(added),
	})
}

func (h *FilesHandler) ClearFiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CountResponse{Count: h.queue.ClearAll()})
}

func (h *FilesHandler) RemoveFile(w http.ResponseWriter, r *http.Request) {
	if !h.queue.RemoveOne(chi.URLParam(r, "id")) {
		http.Error(w, queue.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FilesHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.queue.UploadOne(id) {
		if _, ok := h.queue.Get(id); !ok {
			http.Error(w, queue.ErrNotFound.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, "entry is not pending", http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *FilesHandler) UploadAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusAccepted, CountResponse{Count: h.queue.UploadAll()})
}

func (h *FilesHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	result, rc, err := h.queue.OpenResult(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", domain.ContentTypePDF)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.OutputName))
	if result.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(result.Size, 10))
	}

	if _, err := io.Copy(w, rc); err != nil {
		h.log.ErrorContext(r.Context(), "failed to stream result", slog.String("err", err.Error()))
	}
}

func (h *FilesHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	path, err := h.queue.DownloadOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DownloadResponse{Paths: []string{path}})
}

func (h *FilesHandler) DownloadAll(w http.ResponseWriter, r *http.Request) {
	paths, err := h.queue.DownloadAll(r.Context())
	if paths == nil {
		paths = []string{}
	}

	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to save some results", slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, DownloadResponse{Paths: paths, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, DownloadResponse{Paths: paths})
}

func (h *FilesHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Settings{Endpoint: h.queue.Endpoint()})
}

func (h *FilesHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, fmt.Sprintf("invalid settings: %s", err), http.StatusBadRequest)
		return
	}

	if err := h.queue.SetEndpoint(settings.Endpoint); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, Settings{Endpoint: h.queue.Endpoint()})
}

func (h *FilesHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, queue.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, queue.ErrNotSucceeded):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.log.ErrorContext(r.Context(), "request failed", slog.String("err", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// readPart loads one uploaded file into memory. The declared part type
// decides admission, as with a browser file picker.
func readPart(fh *multipart.FileHeader) (domain.Source, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", fh.Filename, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return source.FromBytes(fh.Filename, contentType, data), nil
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}
