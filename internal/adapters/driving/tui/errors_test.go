package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingIngestService,
		ErrMissingProjectService,
		ErrMissingQueryService,
		ErrMissingClipService,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMessages(t *testing.T) {
	assert.Contains(t, ErrMissingIngestService.Error(), "ingest service")
	assert.Contains(t, ErrMissingProjectService.Error(), "project service")
	assert.Contains(t, ErrMissingQueryService.Error(), "query service")
	assert.Contains(t, ErrMissingClipService.Error(), "clip service")
}
