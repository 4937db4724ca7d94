package jobs

import (
	"time"

	"podblog/internal/content"
)

// Status tracks a job's lifecycle. Transitions are monotonic:
// processing -> completed or processing -> failed, never back.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Job is one end-to-end request to turn one audio input into artifacts.
type Job struct {
	ID         string                  `json:"id"`
	Status     Status                  `json:"status"`
	Kinds      []content.Kind          `json:"content_types"`
	AudioPath  string                  `json:"-"`
	SourceName string                  `json:"filename"`
	Files      map[string]string       `json:"files,omitempty"`
	Error      string                  `json:"error,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
}

func (j Job) terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}
