package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// BackendError is a well-formed error answer from the backend.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true for server errors (5xx). Client errors (4xx)
// are considered permanent.
func (e *BackendError) IsRetryable() bool {
	return e.StatusCode >= 500
}

// errorPayload covers both backend generations: the current server
// answers {"error": ...}, the FastAPI one {"detail": ...}.
type errorPayload struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// decodeError turns a non-2xx response into an error. 404 maps to
// domain.ErrNotFound so callers can match it with errors.Is.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	message := strings.TrimSpace(string(body))
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			message = payload.Error
		case payload.Detail != "":
			message = payload.Detail
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", message, domain.ErrNotFound)
	}
	return &BackendError{StatusCode: resp.StatusCode, Message: message}
}
