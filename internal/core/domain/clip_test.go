package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipScope(t *testing.T) {
	project := ClipScope{ProjectID: "proj-1"}
	assert.False(t, project.Legacy())
	assert.False(t, project.Empty())
	assert.Equal(t, "proj-1", project.String())

	legacy := ClipScope{Filename: "talk.mp4"}
	assert.True(t, legacy.Legacy())
	assert.Equal(t, "talk.mp4", legacy.String())

	assert.True(t, ClipScope{}.Empty())
}

func TestClipKey_DownloadFilename(t *testing.T) {
	key := ClipKey{
		Scope: ClipScope{ProjectID: "proj-1"},
		Start: "00:01:10",
		End:   "00:01:25",
	}
	assert.Equal(t, "clip_00:01:10_00:01:25.mp4", key.DownloadFilename())
}

func TestClipKey_Comparable(t *testing.T) {
	a := ClipKey{Scope: ClipScope{ProjectID: "p"}, Start: "1", End: "2"}
	b := ClipKey{Scope: ClipScope{ProjectID: "p"}, Start: "1", End: "2"}
	c := ClipKey{Scope: ClipScope{Filename: "p"}, Start: "1", End: "2"}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// Keys are used as cache map keys.
	m := map[ClipKey]string{a: "url"}
	assert.Equal(t, "url", m[b])
}

func TestClipState_String(t *testing.T) {
	assert.Equal(t, "pending", ClipPending.String())
	assert.Equal(t, "ready", ClipReady.String())
	assert.Equal(t, "failed", ClipFailed.String())
	assert.Equal(t, "unknown", ClipState(42).String())
}

func TestSegment_Scope(t *testing.T) {
	multi := Segment{ProjectID: "proj-1", Filename: "talk.mp4"}
	assert.Equal(t, ClipScope{ProjectID: "proj-1"}, multi.Scope())

	legacy := Segment{Filename: "talk.mp4"}
	assert.Equal(t, ClipScope{Filename: "talk.mp4"}, legacy.Scope())
}

func TestSegment_PrimaryKeyword(t *testing.T) {
	assert.Equal(t, "Cat", Segment{Keywords: []string{" ", "Cat", "Dog"}}.PrimaryKeyword())
	assert.Equal(t, "Clip Segment", Segment{}.PrimaryKeyword())
}

func TestSegment_ClipKey(t *testing.T) {
	seg := Segment{ProjectID: "proj-1", Start: "00:00:05", End: "00:00:12"}
	key := seg.ClipKey()
	assert.Equal(t, "proj-1", key.Scope.ProjectID)
	assert.Equal(t, "00:00:05", key.Start)
	assert.Equal(t, "00:00:12", key.End)
}
