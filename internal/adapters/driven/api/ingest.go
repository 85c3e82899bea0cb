package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/logger"
)

// processResponse is the tagged ingest answer. Project-aware backends
// return {project_id}; the legacy backend returns {message, filename}.
type processResponse struct {
	ProjectID string `json:"project_id"`
	Message   string `json:"message"`
	Filename  string `json:"filename"`
}

func (r processResponse) receipt() domain.IngestReceipt {
	return domain.IngestReceipt{
		ProjectID: r.ProjectID,
		Message:   r.Message,
		Filename:  r.Filename,
	}
}

// ProcessURL submits a remote video URL for download, analysis and
// indexing. Blocks until the backend pipeline completes.
func (c *Client) ProcessURL(ctx context.Context, videoURL string) (domain.IngestReceipt, error) {
	logger.Debug("POST /process url=%s", videoURL)

	var resp processResponse
	request := map[string]string{"url": videoURL}
	if err := c.call(ctx, http.MethodPost, "/process", request, &resp); err != nil {
		return domain.IngestReceipt{}, fmt.Errorf("process url: %w", err)
	}
	return resp.receipt(), nil
}

// UploadFile streams a local video file to the backend as a multipart
// form with field name "file". Blocks until indexing completes.
func (c *Client) UploadFile(ctx context.Context, path string) (domain.IngestReceipt, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.IngestReceipt{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	logger.Debug("POST /upload file=%s", filepath.Base(path))

	// Stream the body so large videos never sit in memory.
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile("file", filepath.Base(path))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		if cerr := form.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/upload"), pr)
	if err != nil {
		return domain.IngestReceipt{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var resp processResponse
	if err := c.do(req, &resp); err != nil {
		return domain.IngestReceipt{}, fmt.Errorf("upload file: %w", err)
	}
	return resp.receipt(), nil
}
