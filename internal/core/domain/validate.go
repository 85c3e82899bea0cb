package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// videoURLPattern matches YouTube-style video URLs. The scheme is optional,
// matching what the backend's downloader accepts.
var videoURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+$`)

// videoExtensions are the recognised local video file extensions.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".avi":  true,
	".m4v":  true,
}

// IsVideoURL reports whether raw is a recognised video URL. Empty or
// whitespace-only input is always invalid.
func IsVideoURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	return videoURLPattern.MatchString(raw)
}

// IsVideoFile reports whether raw names a file with a recognised video
// extension.
func IsVideoFile(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	return videoExtensions[strings.ToLower(filepath.Ext(raw))]
}

// IsVideoSource reports whether raw is a submittable video source: a
// recognised URL or a recognised local file path. This is the predicate
// gating submission; it is pure and re-evaluated on every input change.
func IsVideoSource(raw string) bool {
	return IsVideoURL(raw) || IsVideoFile(raw)
}
