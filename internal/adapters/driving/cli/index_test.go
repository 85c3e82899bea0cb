package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

func TestIndexCmd_Use(t *testing.T) {
	assert.Equal(t, "index [url|file]", indexCmd.Use)
}

func TestIndexCmd_SubmitsURL(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "https://youtube.com/watch?v=abc"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed as project proj-1")

	mock := ingestService.(*mockIngestService)
	assert.Equal(t, "https://youtube.com/watch?v=abc", mock.last.URL)
	assert.Empty(t, mock.last.FilePath)
}

func TestIndexCmd_SubmitsFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "holiday.mp4"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	mock := ingestService.(*mockIngestService)
	assert.Equal(t, "holiday.mp4", mock.last.FilePath)
}

func TestIndexCmd_RejectsNonVideoInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"index", "notes.txt"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "neither a video URL nor a video file")
}

func TestIndexCmd_LegacyReceipt(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ingestService.(*mockIngestService).receipt = domain.IngestReceipt{
		Message:  "Video processed and indexed successfully",
		Filename: "surf.mp4",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "https://youtu.be/abc"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed surf.mp4")
}
