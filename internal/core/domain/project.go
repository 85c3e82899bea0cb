package domain

// ProjectStatus is the lifecycle status of an indexed video.
type ProjectStatus string

const (
	// ProjectProcessing means the backend is still indexing the video.
	ProjectProcessing ProjectStatus = "processing"

	// ProjectReady means the project can be queried.
	ProjectReady ProjectStatus = "ready"

	// ProjectError means indexing failed.
	ProjectError ProjectStatus = "error"
)

// Project is the persistent unit of one indexed video and its search index.
// It is owned by the backend; the client only reads it and requests deletion.
type Project struct {
	// ID is the opaque backend identifier.
	ID string `json:"id"`

	// Name is the display name, typically derived from the video title.
	Name string `json:"name"`

	// Status is the indexing lifecycle status.
	Status ProjectStatus `json:"status"`

	// CreatedAt is the backend creation timestamp. The format is
	// backend-defined, so it is carried as an opaque string.
	CreatedAt string `json:"created_at"`

	// Source is the original URL or uploaded filename, when known.
	Source string `json:"source,omitempty"`
}

// Ready reports whether the project can be queried.
func (p Project) Ready() bool {
	return p.Status == ProjectReady
}

// Scope returns the clip scope for segments of this project.
func (p Project) Scope() ClipScope {
	return ClipScope{ProjectID: p.ID}
}
